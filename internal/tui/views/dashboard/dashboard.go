// Package dashboard provides the estimate overview TUI view.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/services/estimate"
)

// View displays aggregate statistics and cost charts for the active house.
type View struct {
	formatter *pricing.Formatter
	quote     estimate.Quote
	loaded    bool
}

// NewView creates a dashboard view.
func NewView(formatter *pricing.Formatter) *View {
	return &View{formatter: formatter}
}

// Refresh replaces the displayed quote.
func (v *View) Refresh(quote estimate.Quote) {
	v.quote = quote
	v.loaded = true
}

// Render renders the dashboard for the given terminal width.
func (v *View) Render(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ ESTIMATE OVERVIEW ═══"))
	b.WriteString("\n\n")

	if !v.loaded {
		b.WriteString(labelStyle.Render("No house loaded."))
		return b.String()
	}

	stats := v.quote.Summary.Statistics

	b.WriteString(sectionStyle.Render(strings.ToUpper(v.quote.Summary.HouseName)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Rooms:") + " " + valueStyle.Render(fmt.Sprintf("%d", stats.RoomCount)) + "\n")
	b.WriteString(labelStyle.Render("Floor area:") + " " + valueStyle.Render(v.formatter.Area(stats.TotalFloorArea)) + "\n")
	b.WriteString(labelStyle.Render("Volume:") + " " + valueStyle.Render(v.formatter.Volume(stats.TotalVolume)) + "\n")
	b.WriteString(labelStyle.Render("Base cost:") + " " + valueStyle.Render(v.formatter.Price(stats.TotalCost)) + "\n")
	b.WriteString(labelStyle.Render("Cost per m²:") + " " + valueStyle.Render(v.formatter.Price(stats.CostPerSqm)) + "\n")
	if stats.CostliestRoom != "" {
		b.WriteString(labelStyle.Render("Costliest room:") + " " + valueStyle.Render(stats.CostliestRoom) + "\n")
	}
	if stats.LargestRoom != "" {
		b.WriteString(labelStyle.Render("Largest room:") + " " + valueStyle.Render(stats.LargestRoom) + "\n")
	}
	b.WriteString("\n")

	if len(v.quote.Summary.Rooms) > 0 {
		b.WriteString(sectionStyle.Render("COST BY ROOM"))
		b.WriteString("\n")
		b.WriteString(v.renderRoomBars(width))
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("FLOOR AREA BY ROOM"))
		b.WriteString("\n")
		b.WriteString(v.renderAreaBars(width))
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("FLOOR VS WALLS"))
		b.WriteString("\n")
		b.WriteString(v.renderShareBars(width))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("QUOTE"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Base:") + " " + valueStyle.Render(v.formatter.Price(v.quote.Markup.Base)) + "\n")
	b.WriteString(labelStyle.Render("After tax:") + " " + valueStyle.Render(v.formatter.Price(v.quote.Markup.AfterTax)) + "\n")
	b.WriteString(labelStyle.Render("After admin:") + " " + valueStyle.Render(v.formatter.Price(v.quote.Markup.AfterAdmin)) + "\n")
	b.WriteString(labelStyle.Render("Final:") + " " + titleStyle.Render(v.formatter.Price(v.quote.Final)))

	return b.String()
}

// renderRoomBars draws one bar per room, scaled against the costliest room.
func (v *View) renderRoomBars(width int) string {
	rooms := v.quote.Summary.Rooms

	max := 0.0
	for _, r := range rooms {
		if r.TotalCost > max {
			max = r.TotalCost
		}
	}

	var b strings.Builder
	for _, r := range rooms {
		b.WriteString(barLine(r.Name, r.TotalCost, max, v.formatter.Price(r.TotalCost), barWidth(width)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAreaBars draws one bar per room, scaled against the largest floor
// area.
func (v *View) renderAreaBars(width int) string {
	rooms := v.quote.Summary.Rooms

	max := 0.0
	for _, r := range rooms {
		if r.FloorArea > max {
			max = r.FloorArea
		}
	}

	var b strings.Builder
	for _, r := range rooms {
		b.WriteString(barLine(r.Name, r.FloorArea, max, v.formatter.Area(r.FloorArea), barWidth(width)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderShareBars draws the floor and wall cost shares of the whole house.
func (v *View) renderShareBars(width int) string {
	var floor, wall float64
	for _, r := range v.quote.Summary.Rooms {
		floor += r.FloorCost
		wall += r.WallCost
	}

	max := floor
	if wall > max {
		max = wall
	}

	var b strings.Builder
	b.WriteString(barLine("Floor", floor, max, v.formatter.Price(floor), barWidth(width)))
	b.WriteString("\n")
	b.WriteString(barLine("Walls", wall, max, v.formatter.Price(wall), barWidth(width)))
	b.WriteString("\n")
	return b.String()
}

func barWidth(termWidth int) int {
	if termWidth > 0 && termWidth < 60 {
		return 12
	}
	return 24
}

// barLine renders one labelled bar. The filled portion is proportional to
// value/max, with a minimum of one cell for nonzero values.
func barLine(label string, value, max float64, formatted string, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(14)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	restStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	filled := 0
	if max > 0 && value > 0 {
		filled = int(value / max * float64(width))
		if filled < 1 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}

	return labelStyle.Render(label) + " " +
		barStyle.Render(strings.Repeat("█", filled)) +
		restStyle.Render(strings.Repeat("░", width-filled)) +
		" " + valueStyle.Render(formatted)
}
