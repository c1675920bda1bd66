package tui

import (
	"strings"

	"github.com/costwise/costwise/internal/tui/components"
)

// promptAction identifies what a submitted name prompt applies to.
type promptAction int

const (
	promptDuplicateRoom promptAction = iota
	promptRenameHouse
	promptNewHouse
)

// prompt is a single-field modal collecting a name. Enter submits when
// the trimmed value is nonempty, Esc cancels, everything else edits the
// field.
type prompt struct {
	action    promptAction
	title     string
	input     *components.Input
	submitted bool
	cancelled bool
}

func newPrompt(action promptAction, title, initial string) *prompt {
	input := components.NewInput("Name").SetRequired(true).SetWidth(30).SetValue(initial)
	input.Focus(true)
	return &prompt{action: action, title: title, input: input}
}

// HandleKey handles key input while the prompt is active.
func (p *prompt) HandleKey(key string) {
	switch key {
	case "enter", "ctrl+s":
		if p.Value() != "" {
			p.submitted = true
		}
	case "esc":
		p.cancelled = true
	default:
		p.input.HandleKey(key)
	}
}

// Value returns the trimmed field value.
func (p *prompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}
