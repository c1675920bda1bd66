package models

import (
	"fmt"
	"time"
)

// ConstructionSystem is a named multiplicative adjustment to base cost
// representing a building technique (masonry, drywall, steel frame...).
// Like materials, systems are shared catalog entries referenced by pointer.
type ConstructionSystem struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	CostFactor  float64   `json:"cost_factor"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewConstructionSystem creates a construction system with the given factor.
func NewConstructionSystem(name string, costFactor float64, description string) *ConstructionSystem {
	return &ConstructionSystem{Name: name, CostFactor: costFactor, Description: description}
}

// Validate checks if the construction system data is valid.
func (s *ConstructionSystem) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: system name is required", ErrInvalidInput)
	}
	if s.CostFactor <= 0 {
		return fmt.Errorf("%w: cost factor must be positive, got %v", ErrInvalidInput, s.CostFactor)
	}
	return nil
}

// ApplyFactor returns the base cost scaled by the system's cost factor.
func (s *ConstructionSystem) ApplyFactor(baseCost float64) (float64, error) {
	if s.CostFactor <= 0 {
		return 0, fmt.Errorf("%w: cost factor must be positive, got %v", ErrInvalidInput, s.CostFactor)
	}
	return baseCost * s.CostFactor, nil
}

// String renders the system as "Name (factor 0.80)".
func (s *ConstructionSystem) String() string {
	return fmt.Sprintf("%s (factor %.2f)", s.Name, s.CostFactor)
}
