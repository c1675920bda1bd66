package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField is the common interface for form components.
type FormField interface {
	Focus(focused bool)
	IsFocused() bool
	Label() string
	View() string
	HandleKey(key string)
}

// Input is a single-line text input field.
type Input struct {
	label       string
	value       string
	placeholder string
	width       int
	maxLength   int
	required    bool
	focused     bool
	err         string
}

// NewInput creates a new input field.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 100,
	}
}

// SetValue sets the input value.
func (i *Input) SetValue(v string) *Input {
	i.value = v
	return i
}

// SetPlaceholder sets the placeholder text.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetWidth sets the input width.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetMaxLength sets the maximum input length.
func (i *Input) SetMaxLength(m int) *Input {
	i.maxLength = m
	return i
}

// SetRequired marks the field as required.
func (i *Input) SetRequired(r bool) *Input {
	i.required = r
	return i
}

// SetError sets an error message shown under the field.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Label returns the field label.
func (i *Input) Label() string {
	return i.label
}

// Value returns the current value.
func (i *Input) Value() string {
	return i.value
}

// Required returns whether the field is required.
func (i *Input) Required() bool {
	return i.required
}

// HandleKey handles a key press while focused.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if len(i.value) > 0 {
			runes := []rune(i.value)
			i.value = string(runes[:len(runes)-1])
		}
	default:
		// Single printable runes append; everything else is navigation
		// handled by the form.
		if len([]rune(key)) == 1 && len(i.value) < i.maxLength {
			i.value += key
		}
	}
	i.err = ""
}

// View renders the field.
func (i *Input) View() string {
	display := i.value
	if display == "" && !i.focused {
		display = i.placeholder
	}
	if i.focused {
		display += "█"
	}

	box := lipgloss.NewStyle().Width(i.width)
	label := i.label
	if i.required {
		label += " *"
	}

	line := fmt.Sprintf("%s: %s", label, box.Render(display))
	if i.err != "" {
		line += "\n  " + i.err
	}
	return line
}

// Select is a field cycling through a fixed option list.
type Select struct {
	label    string
	options  []string
	selected int
	focused  bool
}

// NewSelect creates a select field over the given options.
func NewSelect(label string, options []string) *Select {
	return &Select{label: label, options: options}
}

// SetSelected sets the selected index, clamped to the option range.
func (s *Select) SetSelected(idx int) *Select {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// SelectByValue selects the option equal to v, if present.
func (s *Select) SelectByValue(v string) *Select {
	for idx, opt := range s.options {
		if opt == v {
			s.selected = idx
			break
		}
	}
	return s
}

// Focus sets the focus state.
func (s *Select) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Select) IsFocused() bool {
	return s.focused
}

// Label returns the field label.
func (s *Select) Label() string {
	return s.label
}

// Value returns the selected option, or "" with no options.
func (s *Select) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected]
}

// HandleKey cycles the options with left/right while focused.
func (s *Select) HandleKey(key string) {
	if !s.focused || len(s.options) == 0 {
		return
	}

	switch key {
	case "left":
		s.selected = (s.selected - 1 + len(s.options)) % len(s.options)
	case "right", " ":
		s.selected = (s.selected + 1) % len(s.options)
	}
}

// View renders the field.
func (s *Select) View() string {
	value := s.Value()
	if s.focused {
		value = "◀ " + value + " ▶"
	}
	return fmt.Sprintf("%s: %s", s.label, value)
}

// RenderFields renders a list of form fields, one per line.
func RenderFields(fields []FormField) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		prefix := "  "
		if f.IsFocused() {
			prefix = "> "
		}
		lines[i] = prefix + f.View()
	}
	return strings.Join(lines, "\n")
}
