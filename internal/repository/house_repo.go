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

// HouseRepository handles house persistence. A house saves as one house
// row, one row per room, and one finishes linkage row per room with three
// nullable references resolved against the material and system tables.
type HouseRepository struct {
	db        *sql.DB
	materials *MaterialRepository
	systems   *SystemRepository
}

// NewHouseRepository creates a new house repository.
func NewHouseRepository(db *sql.DB) *HouseRepository {
	return &HouseRepository{
		db:        db,
		materials: NewMaterialRepository(db),
		systems:   NewSystemRepository(db),
	}
}

// Save persists the house and all of its rooms in a single transaction.
// Material and system rows are resolved by name and inserted when missing.
// Rooms removed from the house since the last save are deleted.
func (r *HouseRepository) Save(ctx context.Context, house *models.House) error {
	if house.Name == "" {
		return fmt.Errorf("%w: house name is required", models.ErrInvalidInput)
	}
	for _, room := range house.Rooms {
		if err := room.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", room.Name, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.upsertHouse(ctx, tx, house); err != nil {
		return err
	}

	// Drop rooms that are no longer part of the house. The finishes row
	// follows via ON DELETE CASCADE.
	keep := make([]any, 0, len(house.Rooms)+1)
	keep = append(keep, house.ID)
	placeholders := ""
	for _, room := range house.Rooms {
		if room.ID == "" {
			room.ID = util.NewID()
		}
		keep = append(keep, room.ID)
		if placeholders != "" {
			placeholders += ", "
		}
		placeholders += "?"
	}
	deleteQuery := "DELETE FROM rooms WHERE house_id = ?"
	if placeholders != "" {
		deleteQuery += " AND id NOT IN (" + placeholders + ")"
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, keep...); err != nil {
		return fmt.Errorf("pruning removed rooms: %w", err)
	}

	for position, room := range house.Rooms {
		if err := r.upsertRoom(ctx, tx, house.ID, position, room); err != nil {
			return fmt.Errorf("saving room %q: %w", room.Name, err)
		}
		if err := r.upsertFinishes(ctx, tx, room); err != nil {
			return fmt.Errorf("saving finishes for room %q: %w", room.Name, err)
		}
	}

	return tx.Commit()
}

func (r *HouseRepository) upsertHouse(ctx context.Context, tx *sql.Tx, house *models.House) error {
	now := time.Now().UTC()
	if house.ID == "" {
		house.ID = util.NewID()
		house.CreatedAt = now
	}
	house.UpdatedAt = now

	query := `
		INSERT INTO houses (id, name, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			updated_at = excluded.updated_at`

	_, err := tx.ExecContext(ctx, query,
		house.ID,
		house.Name,
		house.Notes,
		formatTime(house.CreatedAt),
		formatTime(house.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting house: %w", err)
	}
	return nil
}

func (r *HouseRepository) upsertRoom(ctx context.Context, tx *sql.Tx, houseID string, position int, room *models.Room) error {
	now := time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = now
	}
	room.UpdatedAt = now

	query := `
		INSERT INTO rooms (id, house_id, name, width, length, height, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			width = excluded.width,
			length = excluded.length,
			height = excluded.height,
			position = excluded.position,
			updated_at = excluded.updated_at`

	_, err := tx.ExecContext(ctx, query,
		room.ID,
		houseID,
		room.Name,
		room.Width,
		room.Length,
		room.Height,
		position,
		formatTime(room.CreatedAt),
		formatTime(room.UpdatedAt),
	)
	return err
}

func (r *HouseRepository) upsertFinishes(ctx context.Context, tx *sql.Tx, room *models.Room) error {
	var floorID, wallID, systemID *string

	if room.FloorMaterial != nil {
		if err := r.materials.UpsertByName(ctx, tx, room.FloorMaterial); err != nil {
			return err
		}
		floorID = &room.FloorMaterial.ID
	}
	if room.WallMaterial != nil {
		if err := r.materials.UpsertByName(ctx, tx, room.WallMaterial); err != nil {
			return err
		}
		wallID = &room.WallMaterial.ID
	}
	if room.System != nil {
		if err := r.systems.UpsertByName(ctx, tx, room.System); err != nil {
			return err
		}
		systemID = &room.System.ID
	}

	query := `
		INSERT INTO room_finishes (room_id, floor_material_id, wall_material_id, system_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(room_id) DO UPDATE SET
			floor_material_id = excluded.floor_material_id,
			wall_material_id = excluded.wall_material_id,
			system_id = excluded.system_id`

	_, err := tx.ExecContext(ctx, query,
		room.ID,
		nullableID(floorID),
		nullableID(wallID),
		nullableID(systemID),
	)
	return err
}

// GetByID reconstructs a full house: house row, rooms in saved order, and
// each room's finishes resolved against the material and system tables.
func (r *HouseRepository) GetByID(ctx context.Context, id string) (*models.House, error) {
	return r.load(ctx, "id = ?", id)
}

// GetByName reconstructs a house by its unique name.
func (r *HouseRepository) GetByName(ctx context.Context, name string) (*models.House, error) {
	return r.load(ctx, "name = ?", name)
}

func (r *HouseRepository) load(ctx context.Context, where string, arg any) (*models.House, error) {
	query := `
		SELECT id, name, notes, created_at, updated_at
		FROM houses
		WHERE ` + where

	var house models.House
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&house.ID, &house.Name, &house.Notes, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning house: %w", err)
	}
	house.CreatedAt = parseTime(createdAt)
	house.UpdatedAt = parseTime(updatedAt)

	if err := r.loadRooms(ctx, &house); err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *HouseRepository) loadRooms(ctx context.Context, house *models.House) error {
	query := `
		SELECT id, name, width, length, height, created_at, updated_at
		FROM rooms
		WHERE house_id = ?
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, house.ID)
	if err != nil {
		return fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var room models.Room
		var createdAt, updatedAt string
		if err := rows.Scan(&room.ID, &room.Name, &room.Width, &room.Length, &room.Height,
			&createdAt, &updatedAt); err != nil {
			return fmt.Errorf("scanning room: %w", err)
		}
		room.CreatedAt = parseTime(createdAt)
		room.UpdatedAt = parseTime(updatedAt)
		house.Rooms = append(house.Rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Resolve finishes after the room scan so materials referenced by
	// multiple rooms come back as a single shared pointer.
	materialCache := make(map[string]*models.Material)
	systemCache := make(map[string]*models.ConstructionSystem)

	for _, room := range house.Rooms {
		if err := r.assignFinishes(ctx, room, materialCache, systemCache); err != nil {
			return fmt.Errorf("resolving finishes for room %q: %w", room.Name, err)
		}
	}
	return nil
}

func (r *HouseRepository) assignFinishes(ctx context.Context, room *models.Room,
	materials map[string]*models.Material, systems map[string]*models.ConstructionSystem) error {

	query := `
		SELECT floor_material_id, wall_material_id, system_id
		FROM room_finishes
		WHERE room_id = ?`

	var floorID, wallID, systemID sql.NullString
	err := r.db.QueryRowContext(ctx, query, room.ID).Scan(&floorID, &wallID, &systemID)
	if errors.Is(err, sql.ErrNoRows) {
		// No linkage row: room has no finishes assigned.
		return nil
	}
	if err != nil {
		return fmt.Errorf("scanning finishes: %w", err)
	}

	if floorID.Valid {
		m, err := r.cachedMaterial(ctx, floorID.String, materials)
		if err != nil {
			return err
		}
		room.AssignFloorMaterial(m)
	}
	if wallID.Valid {
		m, err := r.cachedMaterial(ctx, wallID.String, materials)
		if err != nil {
			return err
		}
		room.AssignWallMaterial(m)
	}
	if systemID.Valid {
		s, err := r.cachedSystem(ctx, systemID.String, systems)
		if err != nil {
			return err
		}
		room.AssignSystem(s)
	}
	return nil
}

func (r *HouseRepository) cachedMaterial(ctx context.Context, id string, cache map[string]*models.Material) (*models.Material, error) {
	if m, ok := cache[id]; ok {
		return m, nil
	}
	m, err := r.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = m
	return m, nil
}

func (r *HouseRepository) cachedSystem(ctx context.Context, id string, cache map[string]*models.ConstructionSystem) (*models.ConstructionSystem, error) {
	if s, ok := cache[id]; ok {
		return s, nil
	}
	s, err := r.systems.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = s
	return s, nil
}

// ListNames returns the names of all saved houses ordered by name.
func (r *HouseRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM houses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying houses: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning house name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a house and, via cascade, its rooms and finishes.
// Materials and systems are shared catalog rows and stay untouched.
func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM houses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting house: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("house %s: %w", id, ErrNotFound)
	}
	return nil
}
