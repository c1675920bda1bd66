package rooms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/costwise/costwise/internal/catalog"
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/services/estimate"
	"github.com/costwise/costwise/internal/tui/components"
)

// FormMode indicates whether the form adds a new room or edits one.
type FormMode int

const (
	FormModeAdd FormMode = iota
	FormModeEdit
)

// customPreset is the preset option for entering dimensions by hand.
const customPreset = "Custom"

// Form collects room details for adding or editing a room.
type Form struct {
	mode FormMode
	room *models.Room

	name   *components.Input
	preset *components.Select
	width  *components.Input
	length *components.Input
	height *components.Input
	floor  *components.Select
	wall   *components.Select
	system *components.Select

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

// NewForm creates a room form with option lists sourced from the catalog.
func NewForm(mode FormMode, cat *catalog.Catalog) *Form {
	presets := append([]string{customPreset}, cat.PresetLabels()...)
	floors := append([]string{models.Unassigned}, cat.FloorMaterialNames()...)
	walls := append([]string{models.Unassigned}, cat.WallMaterialNames()...)
	systems := append([]string{models.Unassigned}, cat.SystemNames()...)

	f := &Form{
		mode: mode,

		name:   components.NewInput("Name").SetRequired(true).SetWidth(25),
		preset: components.NewSelect("Preset", presets),
		width:  components.NewInput("Width (m)").SetWidth(8).SetMaxLength(8),
		length: components.NewInput("Length (m)").SetWidth(8).SetMaxLength(8),
		height: components.NewInput("Height (m)").SetWidth(8).SetMaxLength(8),
		floor:  components.NewSelect("Floor", floors),
		wall:   components.NewSelect("Walls", walls),
		system: components.NewSelect("System", systems),
	}

	f.fields = []components.FormField{
		f.name,
		f.preset,
		f.width,
		f.length,
		f.height,
		f.floor,
		f.wall,
		f.system,
	}
	f.fields[0].Focus(true)

	return f
}

// SetRoom populates the form from an existing room for editing.
func (f *Form) SetRoom(r *models.Room) {
	f.room = r
	f.name.SetValue(r.Name)
	f.width.SetValue(trimFloat(r.Width))
	f.length.SetValue(trimFloat(r.Length))
	f.height.SetValue(trimFloat(r.Height))
	f.floor.SelectByValue(finishName(r.FloorMaterial))
	f.wall.SelectByValue(finishName(r.WallMaterial))
	f.system.SelectByValue(systemName(r.System))
}

// HandleKey handles key input while the form is active.
func (f *Form) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submit()
	case "esc":
		f.cancelled = true
	case "enter":
		if f.focusIndex == len(f.fields)-1 {
			f.submit()
		} else {
			f.nextField()
		}
	default:
		f.fields[f.focusIndex].HandleKey(key)
	}
}

func (f *Form) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex = (f.focusIndex + 1) % len(f.fields)
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) submit() {
	f.err = ""

	if strings.TrimSpace(f.name.Value()) == "" {
		f.err = "Room name is required"
		return
	}

	// Custom preset requires explicit dimensions; a named preset supplies
	// them when the fields are left blank.
	if f.preset.Value() == customPreset || f.anyDimension() {
		if _, err := f.dimensions(); err != nil {
			f.err = err.Error()
			return
		}
	}

	f.submitted = true
}

func (f *Form) anyDimension() bool {
	return f.width.Value() != "" || f.length.Value() != "" || f.height.Value() != ""
}

type dims struct {
	width, length, height float64
}

func (f *Form) dimensions() (dims, error) {
	var d dims
	var err error
	if d.width, err = parseDim("width", f.width.Value()); err != nil {
		return d, err
	}
	if d.length, err = parseDim("length", f.length.Value()); err != nil {
		return d, err
	}
	d.height, err = parseDim("height", f.height.Value())
	return d, err
}

func parseDim(name, value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("%s is required for custom dimensions", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", name)
	}
	return v, nil
}

// EditedRoom returns the room being edited, or nil in add mode.
func (f *Form) EditedRoom() *models.Room {
	return f.room
}

// IsSubmitted returns true once the form has been submitted.
func (f *Form) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true once the form has been cancelled.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// Data returns the collected input for the estimate service.
func (f *Form) Data() (estimate.AddRoomInput, error) {
	input := estimate.AddRoomInput{
		Name:          strings.TrimSpace(f.name.Value()),
		FloorMaterial: selectionOrEmpty(f.floor),
		WallMaterial:  selectionOrEmpty(f.wall),
		System:        selectionOrEmpty(f.system),
	}

	if f.preset.Value() != customPreset && !f.anyDimension() {
		input.Preset = f.preset.Value()
		return input, nil
	}

	d, err := f.dimensions()
	if err != nil {
		return estimate.AddRoomInput{}, err
	}
	input.Width = d.width
	input.Length = d.length
	input.Height = d.height
	return input, nil
}

func selectionOrEmpty(s *components.Select) string {
	if s.Value() == models.Unassigned {
		return ""
	}
	return s.Value()
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render renders the form for the given terminal width.
func (f *Form) Render(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))

	var b strings.Builder

	title := "ADD ROOM"
	if f.mode == FormModeEdit {
		title = "EDIT ROOM"
	}
	b.WriteString(titleStyle.Render("═══ " + title + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(components.RenderFields(f.fields))
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("Tab:Next  Ctrl+S:Save  Esc:Cancel"))
	} else {
		b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  ←/→:Cycle  Ctrl+S:Save  Esc:Cancel"))
	}

	return b.String()
}
