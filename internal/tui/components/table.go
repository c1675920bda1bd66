// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position
}

// Table is a scrollable, selectable table component.
type Table struct {
	columns     []Column
	rows        [][]string
	selected    int
	offset      int
	visibleRows int
	focused     bool

	headerStyle   lipgloss.Style
	rowStyle      lipgloss.Style
	rowAltStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewTable creates a new table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		columns:       columns,
		rows:          [][]string{},
		visibleRows:   10,
		headerStyle:   lipgloss.NewStyle().Bold(true),
		rowStyle:      lipgloss.NewStyle(),
		rowAltStyle:   lipgloss.NewStyle(),
		selectedStyle: lipgloss.NewStyle().Reverse(true),
	}
}

// SetRows sets the table data and clamps the selection.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	if t.offset > t.selected {
		t.offset = t.selected
	}
}

// SetVisibleRows sets the number of visible rows.
func (t *Table) SetVisibleRows(n int) {
	if n > 0 {
		t.visibleRows = n
	}
}

// SetStyles sets the table styles.
func (t *Table) SetStyles(header, row, rowAlt, selected lipgloss.Style) {
	t.headerStyle = header
	t.rowStyle = row
	t.rowAltStyle = rowAlt
	t.selectedStyle = selected
}

// Focus sets the table focus state.
func (t *Table) Focus(focused bool) {
	t.focused = focused
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the currently selected row data, or nil.
func (t *Table) SelectedRow() []string {
	if t.selected >= 0 && t.selected < len(t.rows) {
		return t.rows[t.selected]
	}
	return nil
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// MoveUp moves the selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
		if t.selected < t.offset {
			t.offset = t.selected
		}
	}
}

// MoveDown moves the selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
		if t.selected >= t.offset+t.visibleRows {
			t.offset = t.selected - t.visibleRows + 1
		}
	}
}

// View renders the table.
func (t *Table) View() string {
	var b strings.Builder

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = t.cell(col, col.Title)
	}
	b.WriteString(t.headerStyle.Render(strings.Join(headers, "  ")))
	b.WriteString("\n")

	end := t.offset + t.visibleRows
	if end > len(t.rows) {
		end = len(t.rows)
	}

	for idx := t.offset; idx < end; idx++ {
		row := t.rows[idx]
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cells[i] = t.cell(col, value)
		}
		line := strings.Join(cells, "  ")

		style := t.rowStyle
		if idx%2 == 1 {
			style = t.rowAltStyle
		}
		if t.focused && idx == t.selected {
			style = t.selectedStyle
		}
		b.WriteString(style.Render(line))
		if idx < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// cell truncates or pads a value to the column width.
func (t *Table) cell(col Column, value string) string {
	runes := []rune(value)
	if len(runes) > col.Width {
		if col.Width > 1 {
			return string(runes[:col.Width-1]) + "…"
		}
		return string(runes[:col.Width])
	}
	padding := strings.Repeat(" ", col.Width-len(runes))
	if col.Align == lipgloss.Right {
		return padding + value
	}
	return value + padding
}
