package testutil

import (
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/util"
)

// FixtureFloorMaterial creates a test floor material with sensible defaults.
func FixtureFloorMaterial(overrides ...func(*models.Material)) *models.Material {
	m := &models.Material{
		ID:          util.NewID(),
		Name:        "Premium Ceramic",
		PricePerSqm: 85000,
		Surface:     models.SurfaceFloor,
	}
	for _, override := range overrides {
		override(m)
	}
	return m
}

// FixtureWallMaterial creates a test wall material.
func FixtureWallMaterial(overrides ...func(*models.Material)) *models.Material {
	return FixtureFloorMaterial(append([]func(*models.Material){
		func(m *models.Material) {
			m.Name = "Premium Paint"
			m.PricePerSqm = 25000
			m.Surface = models.SurfaceWall
		},
	}, overrides...)...)
}

// FixtureSystem creates a test construction system.
func FixtureSystem(overrides ...func(*models.ConstructionSystem)) *models.ConstructionSystem {
	s := &models.ConstructionSystem{
		ID:          util.NewID(),
		Name:        "Basic Drywall",
		CostFactor:  0.8,
		Description: "Light steel framing with gypsum board",
	}
	for _, override := range overrides {
		override(s)
	}
	return s
}

// FixtureRoom creates a test room with the scenario kitchen dimensions.
func FixtureRoom(overrides ...func(*models.Room)) *models.Room {
	r := &models.Room{
		ID:     util.NewID(),
		Name:   "Kitchen",
		Width:  3.0,
		Length: 4.0,
		Height: 2.7,
	}
	for _, override := range overrides {
		override(r)
	}
	return r
}

// FixtureHouse creates a test house with two rooms and assigned finishes.
func FixtureHouse(overrides ...func(*models.House)) *models.House {
	kitchen := FixtureRoom()
	kitchen.AssignFloorMaterial(FixtureFloorMaterial())
	kitchen.AssignWallMaterial(FixtureWallMaterial())
	kitchen.AssignSystem(FixtureSystem())

	study := FixtureRoom(func(r *models.Room) {
		r.ID = util.NewID()
		r.Name = "Study"
		r.Width = 3.0
		r.Length = 3.0
	})

	h := &models.House{
		ID:   util.NewID(),
		Name: "Fixture House",
	}
	h.Rooms = []*models.Room{kitchen, study}

	for _, override := range overrides {
		override(h)
	}
	return h
}
