package models

import (
	"fmt"
	"time"
)

// House is an ordered aggregate of rooms. Insertion order is preserved and
// room names are unique within a house; AddRoom enforces this atomically.
// Houses own their rooms; materials and systems stay owned by the catalog.
type House struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Rooms []*Room `json:"rooms"`
	Notes string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHouse creates an empty house.
func NewHouse(name string) *House {
	return &House{Name: name}
}

// AddRoom appends a room to the house. It rejects invalid rooms and rooms
// whose name is already taken, leaving the house unchanged.
func (h *House) AddRoom(r *Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if h.FindRoom(r.Name) != nil {
		return fmt.Errorf("%w: room %q already exists in house %q", ErrDuplicateName, r.Name, h.Name)
	}
	h.Rooms = append(h.Rooms, r)
	return nil
}

// RemoveRoom removes every room with the given name. It is a no-op when no
// room matches.
func (h *House) RemoveRoom(name string) {
	kept := h.Rooms[:0]
	for _, r := range h.Rooms {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	h.Rooms = kept
}

// FindRoom returns the first room with the given name, or nil.
func (h *House) FindRoom(name string) *Room {
	for _, r := range h.Rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// RoomNames lists the room names in insertion order.
func (h *House) RoomNames() []string {
	names := make([]string, len(h.Rooms))
	for i, r := range h.Rooms {
		names[i] = r.Name
	}
	return names
}

// TotalFloorArea returns the sum of every room's floor area in m².
func (h *House) TotalFloorArea() float64 {
	var total float64
	for _, r := range h.Rooms {
		total += r.FloorArea()
	}
	return total
}

// TotalVolume returns the sum of every room's volume in m³.
func (h *House) TotalVolume() float64 {
	var total float64
	for _, r := range h.Rooms {
		total += r.Volume()
	}
	return total
}

// TotalCost returns the sum of every room's total cost.
func (h *House) TotalCost() float64 {
	var total float64
	for _, r := range h.Rooms {
		total += r.TotalCost()
	}
	return total
}

// CostPerSqm returns total cost divided by total floor area, or 0 when the
// total floor area is zero.
func (h *House) CostPerSqm() float64 {
	area := h.TotalFloorArea()
	if area == 0 {
		return 0
	}
	return h.TotalCost() / area
}

// HouseStats are the aggregate statistics over a house's rooms. With zero
// rooms every numeric field is 0 and the extremal room names are empty.
type HouseStats struct {
	RoomCount      int     `json:"room_count"`
	TotalFloorArea float64 `json:"total_floor_area"`
	TotalVolume    float64 `json:"total_volume"`
	TotalCost      float64 `json:"total_cost"`
	CostPerSqm     float64 `json:"cost_per_sqm"`
	CostliestRoom  string  `json:"costliest_room"`
	LargestRoom    string  `json:"largest_room"`
}

// Statistics computes aggregate statistics over the house. Ties for the
// costliest or largest room resolve to the first room in insertion order.
func (h *House) Statistics() HouseStats {
	stats := HouseStats{
		RoomCount:      len(h.Rooms),
		TotalFloorArea: h.TotalFloorArea(),
		TotalVolume:    h.TotalVolume(),
		TotalCost:      h.TotalCost(),
		CostPerSqm:     h.CostPerSqm(),
	}
	if len(h.Rooms) == 0 {
		return stats
	}

	costliest := h.Rooms[0]
	largest := h.Rooms[0]
	for _, r := range h.Rooms[1:] {
		if r.TotalCost() > costliest.TotalCost() {
			costliest = r
		}
		if r.FloorArea() > largest.FloorArea() {
			largest = r
		}
	}
	stats.CostliestRoom = costliest.Name
	stats.LargestRoom = largest.Name
	return stats
}

// HouseSummary is the single data contract consumed by the detail panels
// and the dashboard charts: house name, aggregate statistics, and one
// RoomSummary per room in insertion order.
type HouseSummary struct {
	HouseName  string        `json:"house_name"`
	Statistics HouseStats    `json:"statistics"`
	Rooms      []RoomSummary `json:"rooms"`
}

// FullSummary bundles the house name, statistics, and per-room summaries.
// The room list is empty, never nil, for a house with no rooms.
func (h *House) FullSummary() HouseSummary {
	rooms := make([]RoomSummary, len(h.Rooms))
	for i, r := range h.Rooms {
		rooms[i] = r.Summary()
	}
	return HouseSummary{
		HouseName:  h.Name,
		Statistics: h.Statistics(),
		Rooms:      rooms,
	}
}

// String renders the house as "Casa - 3 rooms, 42.5m², 2072000.00".
func (h *House) String() string {
	stats := h.Statistics()
	return fmt.Sprintf("%s - %d rooms, %.1fm², %.2f", h.Name, stats.RoomCount, stats.TotalFloorArea, stats.TotalCost)
}
