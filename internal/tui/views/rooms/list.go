// Package rooms provides TUI views for room management.
package rooms

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/tui/components"
)

// ListView displays the rooms of the active house with their derived
// quantities and costs.
type ListView struct {
	formatter *pricing.Formatter
	table     *components.Table
	rooms     []*models.Room
}

// NewListView creates a room list view.
func NewListView(formatter *pricing.Formatter) *ListView {
	columns := []components.Column{
		{Title: "Room", Width: 16},
		{Title: "Dimensions", Width: 16},
		{Title: "Floor", Width: 10, Align: lipgloss.Right},
		{Title: "Walls", Width: 10, Align: lipgloss.Right},
		{Title: "Cost", Width: 14, Align: lipgloss.Right},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(15)
	table.Focus(true)

	return &ListView{
		formatter: formatter,
		table:     table,
	}
}

// Refresh rebuilds the table from the house's rooms.
func (v *ListView) Refresh(house *models.House) {
	v.rooms = house.Rooms

	rows := make([][]string, len(v.rooms))
	for i, r := range v.rooms {
		rows[i] = []string{
			r.Name,
			r.Dimensions(),
			v.formatter.Area(r.FloorArea()),
			v.formatter.Area(r.WallArea()),
			v.formatter.Price(r.TotalCost()),
		}
	}
	v.table.SetRows(rows)
}

// SetVisibleRows sets the number of visible table rows.
func (v *ListView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
}

// MoveUp moves the selection up.
func (v *ListView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *ListView) MoveDown() {
	v.table.MoveDown()
}

// SelectedRoom returns the currently selected room, or nil.
func (v *ListView) SelectedRoom() *models.Room {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.rooms) {
		return v.rooms[idx]
	}
	return nil
}

// Render renders the room list for the given terminal width.
func (v *ListView) Render(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ ROOMS ═══"))
	b.WriteString("\n\n")

	if len(v.rooms) == 0 {
		b.WriteString(labelStyle.Render("No rooms yet. Press n to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.View())
		b.WriteString("\n")

		if room := v.SelectedRoom(); room != nil {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Floor: "))
			b.WriteString(valueStyle.Render(finishName(room.FloorMaterial)))
			b.WriteString(labelStyle.Render("  Walls: "))
			b.WriteString(valueStyle.Render(finishName(room.WallMaterial)))
			b.WriteString(labelStyle.Render("  System: "))
			b.WriteString(valueStyle.Render(systemName(room.System)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("↑↓:Nav  n:Add  e:Edit  c:Dup  d:Remove"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  n:Add  e:Edit  c:Duplicate  d:Remove  s:Save"))
	}

	return b.String()
}

func finishName(m *models.Material) string {
	if m == nil {
		return models.Unassigned
	}
	return m.Name
}

func systemName(s *models.ConstructionSystem) string {
	if s == nil {
		return models.Unassigned
	}
	return s.Name
}
