package catalog

import (
	"github.com/costwise/costwise/internal/models"
)

// Default builds the stock catalog of materials, construction systems, and
// room presets. Prices are per m² in the configured currency.
func Default() *Catalog {
	return New(defaultFloorMaterials(), defaultWallMaterials(), defaultSystems(), defaultPresets())
}

func defaultFloorMaterials() []*models.Material {
	entries := []struct {
		name  string
		price float64
	}{
		{"Basic Ceramic", 45000},
		{"Premium Ceramic", 85000},
		{"Basic Porcelain", 95000},
		{"Premium Porcelain", 150000},
		{"Rectified Porcelain", 180000},
		{"Laminate Wood", 95000},
		{"Engineered Wood", 140000},
		{"Solid Wood", 220000},
		{"SPC Vinyl", 65000},
		{"Premium Vinyl", 85000},
		{"Basic Carpet", 35000},
		{"Premium Carpet", 75000},
		{"Polished Concrete", 55000},
		{"Microcement", 120000},
		{"Marble", 280000},
		{"Granite", 320000},
	}
	materials := make([]*models.Material, len(entries))
	for i, e := range entries {
		materials[i] = models.NewMaterial(e.name, e.price, models.SurfaceFloor)
	}
	return materials
}

func defaultWallMaterials() []*models.Material {
	entries := []struct {
		name  string
		price float64
	}{
		{"Basic Paint", 15000},
		{"Premium Paint", 25000},
		{"Textured Paint", 35000},
		{"Basic Wallpaper", 35000},
		{"Premium Wallpaper", 65000},
		{"3D Wallpaper", 95000},
		{"Traditional Stucco", 20000},
		{"Venetian Stucco", 85000},
		{"Wall Ceramic", 75000},
		{"Wall Porcelain", 120000},
		{"Natural Stone", 180000},
		{"Exposed Brick", 95000},
		{"Decorative Wood", 150000},
		{"Acoustic Panel", 110000},
		{"Decorative Plaster", 45000},
	}
	materials := make([]*models.Material, len(entries))
	for i, e := range entries {
		materials[i] = models.NewMaterial(e.name, e.price, models.SurfaceWall)
	}
	return materials
}

func defaultSystems() []*models.ConstructionSystem {
	return []*models.ConstructionSystem{
		models.NewConstructionSystem("Traditional Masonry", 1.00, "Solid brick walls with cement mortar"),
		models.NewConstructionSystem("Structural Masonry", 1.15, "Load-bearing structural brick with higher strength"),
		models.NewConstructionSystem("Basic Drywall", 0.75, "Light steel framing with standard gypsum board"),
		models.NewConstructionSystem("Premium Drywall", 0.90, "Thicker gypsum board with improved insulation"),
		models.NewConstructionSystem("Industrialized System", 1.25, "Prefabricated panels with fast installation"),
		models.NewConstructionSystem("Eco Construction", 1.40, "Sustainable materials: bamboo, rammed earth, recycled inputs"),
		models.NewConstructionSystem("Steel Frame", 1.30, "Light gauge steel structure with OSB panels"),
		models.NewConstructionSystem("Reinforced Concrete", 1.50, "Cast concrete walls with high seismic resistance"),
	}
}

func defaultPresets() []RoomPreset {
	return []RoomPreset{
		{Label: "Living Room", Width: 4.0, Length: 5.0, Height: 2.7},
		{Label: "Dining Room", Width: 3.5, Length: 4.0, Height: 2.7},
		{Label: "Kitchen", Width: 3.0, Length: 4.0, Height: 2.7},
		{Label: "Main Bedroom", Width: 4.0, Length: 4.5, Height: 2.7},
		{Label: "Secondary Bedroom", Width: 3.0, Length: 3.5, Height: 2.7},
		{Label: "Main Bathroom", Width: 2.5, Length: 3.0, Height: 2.5},
		{Label: "Guest Bathroom", Width: 2.0, Length: 2.5, Height: 2.5},
		{Label: "Study", Width: 3.0, Length: 3.0, Height: 2.7},
		{Label: "Balcony", Width: 2.0, Length: 6.0, Height: 2.4},
		{Label: "Terrace", Width: 4.0, Length: 6.0, Height: 2.4},
		{Label: "Garage", Width: 3.0, Length: 6.0, Height: 2.4},
		{Label: "Utility Room", Width: 2.0, Length: 2.5, Height: 2.5},
		{Label: "Closet", Width: 1.5, Length: 2.0, Height: 2.5},
		{Label: "Pantry", Width: 1.5, Length: 2.0, Height: 2.5},
		{Label: "Laundry Area", Width: 2.0, Length: 2.5, Height: 2.5},
	}
}

// ExampleHouse builds a small furnished house against this catalog, useful
// for demos and tests.
func (c *Catalog) ExampleHouse() *models.House {
	house := models.NewHouse("Example House")

	living := models.NewRoom("Living Room", 4.0, 5.0, 2.7)
	if m, ok := c.FloorMaterial("Basic Porcelain"); ok {
		living.AssignFloorMaterial(m)
	}
	if m, ok := c.WallMaterial("Premium Paint"); ok {
		living.AssignWallMaterial(m)
	}
	if s, ok := c.System("Traditional Masonry"); ok {
		living.AssignSystem(s)
	}

	kitchen := models.NewRoom("Kitchen", 3.0, 4.0, 2.7)
	if m, ok := c.FloorMaterial("Premium Ceramic"); ok {
		kitchen.AssignFloorMaterial(m)
	}
	if m, ok := c.WallMaterial("Wall Ceramic"); ok {
		kitchen.AssignWallMaterial(m)
	}
	if s, ok := c.System("Traditional Masonry"); ok {
		kitchen.AssignSystem(s)
	}

	bedroom := models.NewRoom("Main Bedroom", 4.0, 4.5, 2.7)
	if m, ok := c.FloorMaterial("Laminate Wood"); ok {
		bedroom.AssignFloorMaterial(m)
	}
	if m, ok := c.WallMaterial("Textured Paint"); ok {
		bedroom.AssignWallMaterial(m)
	}
	if s, ok := c.System("Premium Drywall"); ok {
		bedroom.AssignSystem(s)
	}

	for _, room := range []*models.Room{living, kitchen, bedroom} {
		// Names are distinct by construction; AddRoom cannot fail here.
		_ = house.AddRoom(room)
	}
	return house
}
