package models

import (
	"errors"
	"testing"
)

func TestRoom_DerivedQuantities(t *testing.T) {
	room := NewRoom("Kitchen", 3.0, 4.0, 2.7)

	almostEqual(t, "FloorArea", room.FloorArea(), 12.0)
	almostEqual(t, "WallArea", room.WallArea(), 37.8) // 2*(3+4)*2.7
	almostEqual(t, "Volume", room.Volume(), 32.4)
}

func TestRoom_DefaultHeight(t *testing.T) {
	room := NewRoom("Closet", 1.5, 2.0, 0)
	almostEqual(t, "Height", room.Height, DefaultRoomHeight)
}

func TestRoom_Validate(t *testing.T) {
	cases := []struct {
		name string
		room *Room
		ok   bool
	}{
		{"valid", NewRoom("Kitchen", 3, 4, 2.7), true},
		{"empty name", NewRoom("", 3, 4, 2.7), false},
		{"zero width", &Room{Name: "Kitchen", Width: 0, Length: 4, Height: 2.7}, false},
		{"negative length", &Room{Name: "Kitchen", Width: 3, Length: -4, Height: 2.7}, false},
		{"zero height", &Room{Name: "Kitchen", Width: 3, Length: 4, Height: 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.room.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRoom_BareRoomCostsZero(t *testing.T) {
	room := NewRoom("Shell", 3.0, 4.0, 2.7)

	almostEqual(t, "FloorCost", room.FloorCost(), 0)
	almostEqual(t, "WallCost", room.WallCost(), 0)
	almostEqual(t, "TotalCost", room.TotalCost(), 0)
}

// Scenario: kitchen with priced floor and wall materials, no system.
func TestRoom_CostsWithMaterials(t *testing.T) {
	room := NewRoom("Kitchen", 3.0, 4.0, 2.7)
	room.AssignFloorMaterial(NewMaterial("Premium Ceramic", 85000, SurfaceFloor))
	room.AssignWallMaterial(NewMaterial("Premium Paint", 25000, SurfaceWall))

	almostEqual(t, "FloorCost", room.FloorCost(), 1020000)
	almostEqual(t, "WallCost", room.WallCost(), 945000)
	almostEqual(t, "TotalCost", room.TotalCost(), 1965000)
}

// Same kitchen with a 0.8 factor system assigned.
func TestRoom_SystemFactorAppliesToTotal(t *testing.T) {
	room := NewRoom("Kitchen", 3.0, 4.0, 2.7)
	room.AssignFloorMaterial(NewMaterial("Premium Ceramic", 85000, SurfaceFloor))
	room.AssignWallMaterial(NewMaterial("Premium Paint", 25000, SurfaceWall))
	room.AssignSystem(NewConstructionSystem("Basic Drywall", 0.8, ""))

	almostEqual(t, "TotalCost", room.TotalCost(), 1572000)
}

func TestRoom_ClearingAssignmentsResetsCosts(t *testing.T) {
	room := NewRoom("Kitchen", 3.0, 4.0, 2.7)
	room.AssignFloorMaterial(NewMaterial("Premium Ceramic", 85000, SurfaceFloor))
	room.AssignWallMaterial(NewMaterial("Premium Paint", 25000, SurfaceWall))
	room.AssignSystem(NewConstructionSystem("Basic Drywall", 0.8, ""))

	room.AssignWallMaterial(nil)
	almostEqual(t, "TotalCost without walls", room.TotalCost(), 1020000*0.8)

	room.AssignFloorMaterial(nil)
	room.AssignSystem(nil)
	almostEqual(t, "TotalCost bare", room.TotalCost(), 0)
}

func TestRoom_DerivedQuantitiesAreIdempotent(t *testing.T) {
	room := NewRoom("Kitchen", 3.0, 4.0, 2.7)
	room.AssignFloorMaterial(NewMaterial("Premium Ceramic", 85000, SurfaceFloor))

	first := room.TotalCost()
	second := room.TotalCost()
	almostEqual(t, "TotalCost drift", first, second)

	firstArea := room.WallArea()
	secondArea := room.WallArea()
	almostEqual(t, "WallArea drift", firstArea, secondArea)
}

func TestRoom_Summary(t *testing.T) {
	t.Run("Unassigned sentinels", func(t *testing.T) {
		s := NewRoom("Shell", 3.0, 4.0, 2.7).Summary()

		if s.FloorMaterial != Unassigned {
			t.Errorf("expected floor material %q, got %q", Unassigned, s.FloorMaterial)
		}
		if s.WallMaterial != Unassigned {
			t.Errorf("expected wall material %q, got %q", Unassigned, s.WallMaterial)
		}
		if s.System != Unassigned {
			t.Errorf("expected system %q, got %q", Unassigned, s.System)
		}
		almostEqual(t, "TotalCost", s.TotalCost, 0)
	})

	t.Run("Full assignment", func(t *testing.T) {
		room := NewRoom("Kitchen", 3.0, 4.0, 2.7)
		room.AssignFloorMaterial(NewMaterial("Premium Ceramic", 85000, SurfaceFloor))
		room.AssignWallMaterial(NewMaterial("Premium Paint", 25000, SurfaceWall))
		room.AssignSystem(NewConstructionSystem("Basic Drywall", 0.8, ""))

		s := room.Summary()
		if s.Name != "Kitchen" {
			t.Errorf("expected name Kitchen, got %q", s.Name)
		}
		if s.Dimensions != "3m x 4m x 2.7m" {
			t.Errorf("unexpected dimensions string: %q", s.Dimensions)
		}
		if s.FloorMaterial != "Premium Ceramic" {
			t.Errorf("unexpected floor material: %q", s.FloorMaterial)
		}
		if s.System != "Basic Drywall" {
			t.Errorf("unexpected system: %q", s.System)
		}
		almostEqual(t, "FloorArea", s.FloorArea, 12.0)
		almostEqual(t, "WallArea", s.WallArea, 37.8)
		almostEqual(t, "Volume", s.Volume, 32.4)
		almostEqual(t, "FloorCost", s.FloorCost, 1020000)
		almostEqual(t, "WallCost", s.WallCost, 945000)
		almostEqual(t, "TotalCost", s.TotalCost, 1572000)
	})
}
