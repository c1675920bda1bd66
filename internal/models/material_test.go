package models

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestMaterial_Validate(t *testing.T) {
	t.Run("Valid material", func(t *testing.T) {
		m := NewMaterial("Premium Ceramic", 85000, SurfaceFloor)
		if err := m.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		m := NewMaterial("", 85000, SurfaceFloor)
		if err := m.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		m := NewMaterial("Premium Ceramic", -1, SurfaceFloor)
		if err := m.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Invalid surface rejected", func(t *testing.T) {
		m := NewMaterial("Premium Ceramic", 85000, Surface("CEILING"))
		if err := m.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Zero price allowed", func(t *testing.T) {
		m := NewMaterial("Bare Concrete", 0, SurfaceFloor)
		if err := m.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestMaterial_CostForArea(t *testing.T) {
	m := NewMaterial("Premium Ceramic", 85000, SurfaceFloor)

	t.Run("Cost is price times area", func(t *testing.T) {
		cost, err := m.CostForArea(12.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		almostEqual(t, "cost", cost, 1020000)
	})

	t.Run("Zero area costs zero", func(t *testing.T) {
		cost, err := m.CostForArea(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		almostEqual(t, "cost", cost, 0)
	})

	t.Run("Negative area rejected", func(t *testing.T) {
		_, err := m.CostForArea(-1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Cost is linear in area", func(t *testing.T) {
		a, _ := m.CostForArea(3.5)
		b, _ := m.CostForArea(6.5)
		sum, _ := m.CostForArea(10.0)
		almostEqual(t, "cost(a1)+cost(a2)", a+b, sum)
	})
}

func TestMaterial_SharedReference(t *testing.T) {
	// Rooms hold a pointer, so a live price edit must propagate.
	m := NewMaterial("Laminate", 95000, SurfaceFloor)
	room := NewRoom("Bedroom", 4.0, 4.5, 2.7)
	room.AssignFloorMaterial(m)

	before := room.FloorCost()
	m.PricePerSqm = 100000
	after := room.FloorCost()

	almostEqual(t, "before", before, 95000*18)
	almostEqual(t, "after", after, 100000*18)
}

func TestConstructionSystem_ApplyFactor(t *testing.T) {
	t.Run("Scales base cost", func(t *testing.T) {
		s := NewConstructionSystem("Basic Drywall", 0.75, "light gauge steel and gypsum board")
		got, err := s.ApplyFactor(1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		almostEqual(t, "ApplyFactor", got, 750)
	})

	t.Run("Factor of one is identity", func(t *testing.T) {
		s := NewConstructionSystem("Traditional Masonry", 1.0, "")
		got, err := s.ApplyFactor(1965000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		almostEqual(t, "ApplyFactor", got, 1965000)
	})

	t.Run("Non-positive factor rejected", func(t *testing.T) {
		s := NewConstructionSystem("Broken", 0, "")
		if _, err := s.ApplyFactor(1000); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput from Validate, got %v", err)
		}
	})
}
