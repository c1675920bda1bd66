// Package catalog holds the read-only reference data: predefined floor and
// wall materials, construction systems, and room dimension presets. A
// Catalog is constructed once at startup and injected wherever lookups are
// needed; there are no package-level mutable tables.
package catalog

import (
	"github.com/costwise/costwise/internal/models"
)

// RoomPreset is a predefined room type with typical dimensions in meters.
type RoomPreset struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Fallback dimensions for unknown presets.
const (
	FallbackWidth  = 3.0
	FallbackLength = 3.0
	FallbackHeight = 2.5
)

// Catalog is the injected lookup table set. Entries keep their insertion
// order for listing; lookups are by exact name. Missing names are not
// errors: lookups return a nil/zero value and false.
type Catalog struct {
	floorMaterials []*models.Material
	wallMaterials  []*models.Material
	systems        []*models.ConstructionSystem
	presets        []RoomPreset

	floorByName  map[string]*models.Material
	wallByName   map[string]*models.Material
	systemByName map[string]*models.ConstructionSystem
	presetByName map[string]RoomPreset
}

// New builds a catalog from explicit entry lists. Later entries with a
// duplicate name shadow earlier ones in lookups but both remain listed.
func New(floor, wall []*models.Material, systems []*models.ConstructionSystem, presets []RoomPreset) *Catalog {
	c := &Catalog{
		floorMaterials: floor,
		wallMaterials:  wall,
		systems:        systems,
		presets:        presets,
		floorByName:    make(map[string]*models.Material, len(floor)),
		wallByName:     make(map[string]*models.Material, len(wall)),
		systemByName:   make(map[string]*models.ConstructionSystem, len(systems)),
		presetByName:   make(map[string]RoomPreset, len(presets)),
	}
	for _, m := range floor {
		c.floorByName[m.Name] = m
	}
	for _, m := range wall {
		c.wallByName[m.Name] = m
	}
	for _, s := range systems {
		c.systemByName[s.Name] = s
	}
	for _, p := range presets {
		c.presetByName[p.Label] = p
	}
	return c
}

// FloorMaterial looks up a floor material by name.
func (c *Catalog) FloorMaterial(name string) (*models.Material, bool) {
	m, ok := c.floorByName[name]
	return m, ok
}

// WallMaterial looks up a wall material by name.
func (c *Catalog) WallMaterial(name string) (*models.Material, bool) {
	m, ok := c.wallByName[name]
	return m, ok
}

// System looks up a construction system by name.
func (c *Catalog) System(name string) (*models.ConstructionSystem, bool) {
	s, ok := c.systemByName[name]
	return s, ok
}

// Preset looks up a room preset by label.
func (c *Catalog) Preset(label string) (RoomPreset, bool) {
	p, ok := c.presetByName[label]
	return p, ok
}

// PresetOrDefault returns the preset for the label, falling back to a
// 3.0 × 3.0 × 2.5 room when the label is unknown.
func (c *Catalog) PresetOrDefault(label string) RoomPreset {
	if p, ok := c.presetByName[label]; ok {
		return p
	}
	return RoomPreset{Label: label, Width: FallbackWidth, Length: FallbackLength, Height: FallbackHeight}
}

// FloorMaterials lists the floor materials in catalog order.
func (c *Catalog) FloorMaterials() []*models.Material {
	return c.floorMaterials
}

// WallMaterials lists the wall materials in catalog order.
func (c *Catalog) WallMaterials() []*models.Material {
	return c.wallMaterials
}

// Systems lists the construction systems in catalog order.
func (c *Catalog) Systems() []*models.ConstructionSystem {
	return c.systems
}

// Presets lists the room presets in catalog order.
func (c *Catalog) Presets() []RoomPreset {
	return c.presets
}

// FloorMaterialNames lists floor material names in catalog order.
func (c *Catalog) FloorMaterialNames() []string {
	names := make([]string, len(c.floorMaterials))
	for i, m := range c.floorMaterials {
		names[i] = m.Name
	}
	return names
}

// WallMaterialNames lists wall material names in catalog order.
func (c *Catalog) WallMaterialNames() []string {
	names := make([]string, len(c.wallMaterials))
	for i, m := range c.wallMaterials {
		names[i] = m.Name
	}
	return names
}

// SystemNames lists construction system names in catalog order.
func (c *Catalog) SystemNames() []string {
	names := make([]string, len(c.systems))
	for i, s := range c.systems {
		names[i] = s.Name
	}
	return names
}

// PresetLabels lists room preset labels in catalog order.
func (c *Catalog) PresetLabels() []string {
	labels := make([]string, len(c.presets))
	for i, p := range c.presets {
		labels[i] = p.Label
	}
	return labels
}

// PriceRange holds min/max/average prices over one material set.
type PriceRange struct {
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// MaterialStats summarizes the available material price ranges.
type MaterialStats struct {
	Floor PriceRange `json:"floor"`
	Wall  PriceRange `json:"wall"`
}

// Stats computes price statistics over the catalog's material sets.
func (c *Catalog) Stats() MaterialStats {
	return MaterialStats{
		Floor: priceRange(c.floorMaterials),
		Wall:  priceRange(c.wallMaterials),
	}
}

func priceRange(materials []*models.Material) PriceRange {
	pr := PriceRange{Count: len(materials)}
	if len(materials) == 0 {
		return pr
	}
	pr.Min = materials[0].PricePerSqm
	pr.Max = materials[0].PricePerSqm
	var sum float64
	for _, m := range materials {
		if m.PricePerSqm < pr.Min {
			pr.Min = m.PricePerSqm
		}
		if m.PricePerSqm > pr.Max {
			pr.Max = m.PricePerSqm
		}
		sum += m.PricePerSqm
	}
	pr.Average = sum / float64(len(materials))
	return pr
}
