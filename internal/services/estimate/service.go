// Package estimate provides the orchestration layer between the cost
// model, the catalog, the markup policy, and persistence.
package estimate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/costwise/costwise/internal/catalog"
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/repository"
)

// Service wires house estimation operations together.
type Service struct {
	db        *sql.DB
	catalog   *catalog.Catalog
	markup    pricing.Markup
	houses    *repository.HouseRepository
	materials *repository.MaterialRepository
	systems   *repository.SystemRepository
}

// NewService creates an estimate service over the given database and
// catalog.
func NewService(db *sql.DB, cat *catalog.Catalog, markup pricing.Markup) *Service {
	return &Service{
		db:        db,
		catalog:   cat,
		markup:    markup,
		houses:    repository.NewHouseRepository(db),
		materials: repository.NewMaterialRepository(db),
		systems:   repository.NewSystemRepository(db),
	}
}

// Catalog returns the injected catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// NewHouse creates an empty in-memory house.
func (s *Service) NewHouse(name string) *models.House {
	return models.NewHouse(name)
}

// AddRoomInput contains data for adding a room to a house.
type AddRoomInput struct {
	Name   string
	Preset string // room preset label; used when dimensions are zero
	Width  float64
	Length float64
	Height float64

	FloorMaterial string // catalog names; empty leaves the surface unassigned
	WallMaterial  string
	System        string
}

// AddRoom adds a room to the house. Explicit dimensions win; otherwise the
// preset's dimensions apply, falling back to the default room size for
// unknown preset labels.
func (s *Service) AddRoom(house *models.House, input AddRoomInput) (*models.Room, error) {
	width, length, height := input.Width, input.Length, input.Height
	if width == 0 && length == 0 && height == 0 {
		preset := s.catalog.PresetOrDefault(input.Preset)
		width, length, height = preset.Width, preset.Length, preset.Height
	}

	room := models.NewRoom(input.Name, width, length, height)
	s.AssignFinishes(room, input.FloorMaterial, input.WallMaterial, input.System)

	if err := house.AddRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// AssignFinishes resolves the named catalog entries onto the room. Unknown
// names leave the corresponding reference unassigned; an empty name clears
// it.
func (s *Service) AssignFinishes(room *models.Room, floorName, wallName, systemName string) {
	if floorName == "" {
		room.AssignFloorMaterial(nil)
	} else if m, ok := s.catalog.FloorMaterial(floorName); ok {
		room.AssignFloorMaterial(m)
	}

	if wallName == "" {
		room.AssignWallMaterial(nil)
	} else if m, ok := s.catalog.WallMaterial(wallName); ok {
		room.AssignWallMaterial(m)
	}

	if systemName == "" {
		room.AssignSystem(nil)
	} else if sys, ok := s.catalog.System(systemName); ok {
		room.AssignSystem(sys)
	}
}

// Quote is a house summary extended with the marked-up final price.
type Quote struct {
	Summary models.HouseSummary `json:"summary"`
	Markup  pricing.Breakdown   `json:"markup"`
	Final   float64             `json:"final"`
}

// Quote computes the house's full summary plus the markup breakdown over
// its base cost.
func (s *Service) Quote(house *models.House) Quote {
	summary := house.FullSummary()
	result := s.markup.Apply(summary.Statistics.TotalCost)
	return Quote{
		Summary: summary,
		Markup:  result.Breakdown,
		Final:   result.Final,
	}
}

// SaveHouse persists the house with all rooms and finishes.
func (s *Service) SaveHouse(ctx context.Context, house *models.House) error {
	if err := s.houses.Save(ctx, house); err != nil {
		return fmt.Errorf("saving house %q: %w", house.Name, err)
	}
	return nil
}

// LoadHouse reconstructs a saved house by name.
func (s *Service) LoadHouse(ctx context.Context, name string) (*models.House, error) {
	house, err := s.houses.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading house %q: %w", name, err)
	}
	return house, nil
}

// ListHouses lists the names of all saved houses.
func (s *Service) ListHouses(ctx context.Context) ([]string, error) {
	return s.houses.ListNames(ctx)
}

// DeleteHouse removes a saved house; its catalog rows stay.
func (s *Service) DeleteHouse(ctx context.Context, house *models.House) error {
	return s.houses.Delete(ctx, house.ID)
}

// SeedCatalog persists every catalog material and system, resolving rows
// by name so reseeding is idempotent.
func (s *Service) SeedCatalog(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range s.catalog.FloorMaterials() {
		if err := s.materials.UpsertByName(ctx, tx, m); err != nil {
			return fmt.Errorf("seeding material %q: %w", m.Name, err)
		}
	}
	for _, m := range s.catalog.WallMaterials() {
		if err := s.materials.UpsertByName(ctx, tx, m); err != nil {
			return fmt.Errorf("seeding material %q: %w", m.Name, err)
		}
	}
	for _, sys := range s.catalog.Systems() {
		if err := s.systems.UpsertByName(ctx, tx, sys); err != nil {
			return fmt.Errorf("seeding system %q: %w", sys.Name, err)
		}
	}

	return tx.Commit()
}
