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

// SystemRepository handles construction system data access.
type SystemRepository struct {
	db *sql.DB
}

// NewSystemRepository creates a new construction system repository.
func NewSystemRepository(db *sql.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// Create inserts a new construction system.
func (r *SystemRepository) Create(ctx context.Context, tx *sql.Tx, system *models.ConstructionSystem) error {
	if err := system.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if system.ID == "" {
		system.ID = util.NewID()
	}

	now := time.Now().UTC()
	system.CreatedAt = now
	system.UpdatedAt = now

	query := `
		INSERT INTO construction_systems (id, name, cost_factor, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := pickExecer(r.db, tx).ExecContext(ctx, query,
		system.ID,
		system.Name,
		system.CostFactor,
		system.Description,
		formatTime(system.CreatedAt),
		formatTime(system.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting construction system: %w", err)
	}

	return nil
}

// GetByID retrieves a construction system by id.
func (r *SystemRepository) GetByID(ctx context.Context, id string) (*models.ConstructionSystem, error) {
	query := `
		SELECT id, name, cost_factor, description, created_at, updated_at
		FROM construction_systems
		WHERE id = ?`

	return scanSystem(r.db.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a construction system by name.
func (r *SystemRepository) GetByName(ctx context.Context, name string) (*models.ConstructionSystem, error) {
	query := `
		SELECT id, name, cost_factor, description, created_at, updated_at
		FROM construction_systems
		WHERE name = ?`

	return scanSystem(r.db.QueryRowContext(ctx, query, name))
}

// List returns all construction systems ordered by name.
func (r *SystemRepository) List(ctx context.Context) ([]*models.ConstructionSystem, error) {
	query := `
		SELECT id, name, cost_factor, description, created_at, updated_at
		FROM construction_systems
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying construction systems: %w", err)
	}
	defer rows.Close()

	var systems []*models.ConstructionSystem
	for rows.Next() {
		var s models.ConstructionSystem
		var createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.CostFactor, &s.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning construction system: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		s.UpdatedAt = parseTime(updatedAt)
		systems = append(systems, &s)
	}
	return systems, rows.Err()
}

// Update modifies an existing construction system.
func (r *SystemRepository) Update(ctx context.Context, tx *sql.Tx, system *models.ConstructionSystem) error {
	if err := system.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	system.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE construction_systems SET name = ?, cost_factor = ?, description = ?, updated_at = ?
		WHERE id = ?`

	result, err := pickExecer(r.db, tx).ExecContext(ctx, query,
		system.Name,
		system.CostFactor,
		system.Description,
		formatTime(system.UpdatedAt),
		system.ID,
	)
	if err != nil {
		return fmt.Errorf("updating construction system: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("construction system %s: %w", system.ID, ErrNotFound)
	}
	return nil
}

// UpsertByName resolves a construction system row by name, inserting it
// when absent, and fills in the model's id.
func (r *SystemRepository) UpsertByName(ctx context.Context, tx *sql.Tx, system *models.ConstructionSystem) error {
	var id string
	err := pickExecer(r.db, tx).QueryRowContext(ctx,
		"SELECT id FROM construction_systems WHERE name = ?", system.Name).Scan(&id)
	switch {
	case err == nil:
		system.ID = id
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return r.Create(ctx, tx, system)
	default:
		return fmt.Errorf("resolving construction system by name: %w", err)
	}
}

func scanSystem(row *sql.Row) (*models.ConstructionSystem, error) {
	var s models.ConstructionSystem
	var createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.Name, &s.CostFactor, &s.Description, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning construction system: %w", err)
	}

	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
