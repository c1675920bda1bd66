package models

import (
	"fmt"
	"time"
)

// Unassigned is the sentinel rendered for a surface with no material or a
// room with no construction system. Report and chart consumers key on it.
const Unassigned = "unassigned"

// Room is a rectangular space, the unit of cost computation. Dimensions are
// meters. Material and system references are non-owning pointers into the
// catalog; a nil reference means the surface contributes zero cost.
type Room struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`

	FloorMaterial *Material           `json:"-"`
	WallMaterial  *Material           `json:"-"`
	System        *ConstructionSystem `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultRoomHeight is used when a room is created without an explicit
// ceiling height.
const DefaultRoomHeight = 2.5

// NewRoom creates a room with the given dimensions in meters.
func NewRoom(name string, width, length, height float64) *Room {
	if height == 0 {
		height = DefaultRoomHeight
	}
	return &Room{Name: name, Width: width, Length: length, Height: height}
}

// Validate checks if the room data is valid.
func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if r.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidInput, r.Width)
	}
	if r.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %v", ErrInvalidInput, r.Length)
	}
	if r.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, r.Height)
	}
	return nil
}

// FloorArea returns width × length in m².
func (r *Room) FloorArea() float64 {
	return r.Width * r.Length
}

// WallArea returns perimeter × height in m². Openings (doors, windows) are
// ignored.
func (r *Room) WallArea() float64 {
	perimeter := 2 * (r.Width + r.Length)
	return perimeter * r.Height
}

// Volume returns width × length × height in m³.
func (r *Room) Volume() float64 {
	return r.Width * r.Length * r.Height
}

// AssignFloorMaterial replaces the floor material reference. A nil material
// clears the assignment and the floor cost falls back to zero.
func (r *Room) AssignFloorMaterial(m *Material) {
	r.FloorMaterial = m
}

// AssignWallMaterial replaces the wall material reference; nil clears it.
func (r *Room) AssignWallMaterial(m *Material) {
	r.WallMaterial = m
}

// AssignSystem replaces the construction system reference; nil clears it.
func (r *Room) AssignSystem(s *ConstructionSystem) {
	r.System = s
}

// FloorCost returns the cost of the floor surface, or 0 when no floor
// material is assigned.
func (r *Room) FloorCost() float64 {
	if r.FloorMaterial == nil {
		return 0
	}
	return r.FloorMaterial.PricePerSqm * r.FloorArea()
}

// WallCost returns the cost of the wall surfaces, or 0 when no wall
// material is assigned.
func (r *Room) WallCost() float64 {
	if r.WallMaterial == nil {
		return 0
	}
	return r.WallMaterial.PricePerSqm * r.WallArea()
}

// TotalCost returns floor cost plus wall cost, scaled by the construction
// system's factor when one is assigned. A room with no materials and no
// system costs exactly zero.
func (r *Room) TotalCost() float64 {
	base := r.FloorCost() + r.WallCost()
	if r.System != nil {
		return base * r.System.CostFactor
	}
	return base
}

// Dimensions renders the room dimensions as "3m x 4m x 2.7m".
func (r *Room) Dimensions() string {
	return fmt.Sprintf("%gm x %gm x %gm", r.Width, r.Length, r.Height)
}

// RoomSummary is the stable data shape handed to the presentation and chart
// layers for a single room. Field names are a contract; consumers address
// them structurally.
type RoomSummary struct {
	Name          string  `json:"name"`
	Dimensions    string  `json:"dimensions"`
	FloorArea     float64 `json:"floor_area"`
	WallArea      float64 `json:"wall_area"`
	Volume        float64 `json:"volume"`
	FloorMaterial string  `json:"floor_material"`
	WallMaterial  string  `json:"wall_material"`
	System        string  `json:"system"`
	FloorCost     float64 `json:"floor_cost"`
	WallCost      float64 `json:"wall_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// Summary bundles the room's derived quantities into a RoomSummary.
func (r *Room) Summary() RoomSummary {
	s := RoomSummary{
		Name:          r.Name,
		Dimensions:    r.Dimensions(),
		FloorArea:     r.FloorArea(),
		WallArea:      r.WallArea(),
		Volume:        r.Volume(),
		FloorMaterial: Unassigned,
		WallMaterial:  Unassigned,
		System:        Unassigned,
		FloorCost:     r.FloorCost(),
		WallCost:      r.WallCost(),
		TotalCost:     r.TotalCost(),
	}
	if r.FloorMaterial != nil {
		s.FloorMaterial = r.FloorMaterial.Name
	}
	if r.WallMaterial != nil {
		s.WallMaterial = r.WallMaterial.Name
	}
	if r.System != nil {
		s.System = r.System.Name
	}
	return s
}

// String renders the room as "Kitchen (3x4m) - 1965000.00".
func (r *Room) String() string {
	return fmt.Sprintf("%s (%gx%gm) - %.2f", r.Name, r.Width, r.Length, r.TotalCost())
}
