// Package models contains the core cost aggregation entities: materials,
// construction systems, rooms, and houses. All derived quantities are
// recomputed on demand; nothing is cached.
package models

import (
	"fmt"
	"time"
)

// Surface identifies which surface of a room a material covers.
type Surface string

const (
	SurfaceFloor Surface = "FLOOR"
	SurfaceWall  Surface = "WALL"
	SurfaceOther Surface = "OTHER"
)

// Valid returns true if the surface kind is valid.
func (s Surface) Valid() bool {
	switch s {
	case SurfaceFloor, SurfaceWall, SurfaceOther:
		return true
	default:
		return false
	}
}

// Material is a priced covering for a floor or wall surface, priced per
// square meter. Materials are shared catalog entries: rooms hold a pointer,
// so editing PricePerSqm propagates to every room referencing the material.
type Material struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	PricePerSqm float64   `json:"price_per_sqm"`
	Surface     Surface   `json:"surface"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMaterial creates a material for the given surface kind.
func NewMaterial(name string, pricePerSqm float64, surface Surface) *Material {
	return &Material{Name: name, PricePerSqm: pricePerSqm, Surface: surface}
}

// Validate checks if the material data is valid.
func (m *Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: material name is required", ErrInvalidInput)
	}
	if m.PricePerSqm < 0 {
		return fmt.Errorf("%w: price per m² must not be negative", ErrInvalidInput)
	}
	if !m.Surface.Valid() {
		return fmt.Errorf("%w: invalid surface kind %q", ErrInvalidInput, m.Surface)
	}
	return nil
}

// CostForArea returns the cost of covering the given area with this
// material. The area must not be negative.
func (m *Material) CostForArea(area float64) (float64, error) {
	if area < 0 {
		return 0, fmt.Errorf("%w: area must not be negative, got %v", ErrInvalidInput, area)
	}
	return m.PricePerSqm * area, nil
}

// String renders the material as "Name - 85000.00/m²". Currency formatting
// is the presentation layer's concern.
func (m *Material) String() string {
	return fmt.Sprintf("%s - %.2f/m²", m.Name, m.PricePerSqm)
}
