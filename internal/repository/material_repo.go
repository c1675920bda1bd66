package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/util"
)

// MaterialRepository handles material data access.
type MaterialRepository struct {
	db *sql.DB
}

// NewMaterialRepository creates a new material repository.
func NewMaterialRepository(db *sql.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create inserts a new material. The material gets an id when it has none.
func (r *MaterialRepository) Create(ctx context.Context, tx *sql.Tx, material *models.Material) error {
	if err := material.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if material.ID == "" {
		material.ID = util.NewID()
	}

	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now

	query := `
		INSERT INTO materials (id, name, price_per_sqm, surface, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := pickExecer(r.db, tx).ExecContext(ctx, query,
		material.ID,
		material.Name,
		material.PricePerSqm,
		string(material.Surface),
		formatTime(material.CreatedAt),
		formatTime(material.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}

	return nil
}

// GetByID retrieves a material by id.
func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*models.Material, error) {
	query := `
		SELECT id, name, price_per_sqm, surface, created_at, updated_at
		FROM materials
		WHERE id = ?`

	return scanMaterial(r.db.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a material by name and surface kind.
func (r *MaterialRepository) GetByName(ctx context.Context, name string, surface models.Surface) (*models.Material, error) {
	query := `
		SELECT id, name, price_per_sqm, surface, created_at, updated_at
		FROM materials
		WHERE name = ? AND surface = ?`

	return scanMaterial(r.db.QueryRowContext(ctx, query, name, string(surface)))
}

// List returns all materials for a surface kind ordered by name.
func (r *MaterialRepository) List(ctx context.Context, surface models.Surface) ([]*models.Material, error) {
	query := `
		SELECT id, name, price_per_sqm, surface, created_at, updated_at
		FROM materials
		WHERE surface = ?
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, string(surface))
	if err != nil {
		return nil, fmt.Errorf("querying materials: %w", err)
	}
	defer rows.Close()

	var materials []*models.Material
	for rows.Next() {
		m, err := scanMaterialRow(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// Update modifies an existing material. A price change here is the "live
// edit" path: every saved room referencing this material reprices on load.
func (r *MaterialRepository) Update(ctx context.Context, tx *sql.Tx, material *models.Material) error {
	if err := material.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	material.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE materials SET name = ?, price_per_sqm = ?, surface = ?, updated_at = ?
		WHERE id = ?`

	result, err := pickExecer(r.db, tx).ExecContext(ctx, query,
		material.Name,
		material.PricePerSqm,
		string(material.Surface),
		formatTime(material.UpdatedAt),
		material.ID,
	)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("material %s: %w", material.ID, ErrNotFound)
	}
	return nil
}

// UpsertByName resolves a material row by (name, surface), inserting it
// when absent, and fills in the model's id either way.
func (r *MaterialRepository) UpsertByName(ctx context.Context, tx *sql.Tx, material *models.Material) error {
	query := `SELECT id FROM materials WHERE name = ? AND surface = ?`

	var id string
	err := pickExecer(r.db, tx).QueryRowContext(ctx, query, material.Name, string(material.Surface)).Scan(&id)
	switch {
	case err == nil:
		material.ID = id
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return r.Create(ctx, tx, material)
	default:
		return fmt.Errorf("resolving material by name: %w", err)
	}
}

func scanMaterial(row *sql.Row) (*models.Material, error) {
	var m models.Material
	var surface, createdAt, updatedAt string

	err := row.Scan(&m.ID, &m.Name, &m.PricePerSqm, &surface, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning material: %w", err)
	}

	m.Surface = models.Surface(surface)
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}

func scanMaterialRow(rows *sql.Rows) (*models.Material, error) {
	var m models.Material
	var surface, createdAt, updatedAt string

	if err := rows.Scan(&m.ID, &m.Name, &m.PricePerSqm, &surface, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning material: %w", err)
	}

	m.Surface = models.Surface(surface)
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}
