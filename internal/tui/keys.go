package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key represents a key binding.
type Key struct {
	Keys []string
	Help string
}

// Matches checks if a key message matches this binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	// Navigation
	Up    Key
	Down  Key
	Left  Key
	Right Key

	// Actions
	New       Key
	Edit      Key
	Remove    Key
	Duplicate Key
	Rename    Key
	Open      Key
	Save      Key
	Quit      Key

	// Module navigation
	F1  Key
	F2  Key
	F3  Key
	F4  Key
	F10 Key

	// Form navigation
	Tab      Key
	ShiftTab Key
	Enter    Key
	Escape   Key
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    Key{Keys: []string{"up", "k"}, Help: "up"},
		Down:  Key{Keys: []string{"down", "j"}, Help: "down"},
		Left:  Key{Keys: []string{"left", "h"}, Help: "left"},
		Right: Key{Keys: []string{"right", "l"}, Help: "right"},

		New:       Key{Keys: []string{"n"}, Help: "new"},
		Edit:      Key{Keys: []string{"e"}, Help: "edit room"},
		Remove:    Key{Keys: []string{"d", "delete"}, Help: "remove"},
		Duplicate: Key{Keys: []string{"c"}, Help: "duplicate room"},
		Rename:    Key{Keys: []string{"r"}, Help: "rename house"},
		Open:      Key{Keys: []string{"o"}, Help: "open house"},
		Save:      Key{Keys: []string{"s"}, Help: "save house"},
		Quit:      Key{Keys: []string{"q", "ctrl+c"}, Help: "quit"},

		F1:  Key{Keys: []string{"f1", "?"}, Help: "Help"},
		F2:  Key{Keys: []string{"f2"}, Help: "Dashboard"},
		F3:  Key{Keys: []string{"f3"}, Help: "Rooms"},
		F4:  Key{Keys: []string{"f4"}, Help: "Catalog"},
		F10: Key{Keys: []string{"f10"}, Help: "Quit"},

		Tab:      Key{Keys: []string{"tab"}, Help: "next field"},
		ShiftTab: Key{Keys: []string{"shift+tab"}, Help: "prev field"},
		Enter:    Key{Keys: []string{"enter"}, Help: "confirm"},
		Escape:   Key{Keys: []string{"esc"}, Help: "cancel"},
	}
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// IsNavigation checks if the key message is a navigation key.
func (km KeyMap) IsNavigation(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.Up, km.Down, km.Left, km.Right)
}

// ModuleFor returns the module selected by a function key, or empty.
func (km KeyMap) ModuleFor(msg tea.KeyMsg) Module {
	switch {
	case km.F1.Matches(msg):
		return ModuleHelp
	case km.F2.Matches(msg):
		return ModuleDashboard
	case km.F3.Matches(msg):
		return ModuleRooms
	case km.F4.Matches(msg):
		return ModuleCatalog
	default:
		return ""
	}
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Dashboard [F3]Rooms [F4]Catalog [F10]Quit"
}
