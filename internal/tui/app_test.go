package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_InitialState(t *testing.T) {
	app := newTestApp(t)

	if app.currentModule != ModuleDashboard {
		t.Errorf("expected initial module dashboard, got %s", app.currentModule)
	}
	if app.quitting {
		t.Error("expected app not to be quitting")
	}
	if app.showForm {
		t.Error("expected no form shown initially")
	}
	if app.dirty {
		t.Error("expected no unsaved changes initially")
	}
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)
	app.ready = false

	if !strings.Contains(app.View(), "Initializing") {
		t.Error("expected initialization message when not ready")
	}
}

func TestApp_View_Quitting(t *testing.T) {
	app := newTestApp(t)
	app.quitting = true

	if !strings.Contains(app.View(), "shutting down") {
		t.Error("expected shutdown message when quitting")
	}
}

func TestApp_View_Dashboard(t *testing.T) {
	app := newTestApp(t)
	output := app.View()

	if !strings.Contains(output, "ESTIMATE OVERVIEW") {
		t.Error("expected dashboard title in view output")
	}
	if !strings.Contains(output, "EXAMPLE HOUSE") {
		t.Error("expected house name in dashboard")
	}
}

func TestApp_ModuleNavigation_FKeys(t *testing.T) {
	tests := []struct {
		key      tea.KeyType
		expected Module
	}{
		{tea.KeyF3, ModuleRooms},
		{tea.KeyF4, ModuleCatalog},
		{tea.KeyF2, ModuleDashboard},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			app := newTestApp(t)
			app.Update(specialKeyMsg(tt.key))

			if app.currentModule != tt.expected {
				t.Errorf("expected module %s, got %s", tt.expected, app.currentModule)
			}
		})
	}
}

func TestApp_HelpAndBack(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	app.Update(specialKeyMsg(tea.KeyF1))
	if app.currentModule != ModuleHelp {
		t.Fatalf("expected help module, got %s", app.currentModule)
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.currentModule != ModuleRooms {
		t.Errorf("expected return to rooms, got %s", app.currentModule)
	}
}

func TestApp_QuitConfirm(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("q"))
	if !app.showConfirm {
		t.Fatal("expected quit confirmation")
	}

	app.Update(keyMsg("n"))
	if app.showConfirm || app.quitting {
		t.Error("expected cancel to dismiss confirmation")
	}

	app.Update(keyMsg("q"))
	app.Update(keyMsg("y"))
	if !app.quitting {
		t.Error("expected y to quit")
	}
}

func TestApp_RoomsView(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	output := app.View()
	if !strings.Contains(output, "ROOMS") {
		t.Error("expected rooms title")
	}
	if !strings.Contains(output, "Living Room") {
		t.Error("expected example rooms listed")
	}
}

func TestApp_RemoveRoom(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	before := len(app.house.Rooms)
	app.Update(keyMsg("d"))

	if len(app.house.Rooms) != before-1 {
		t.Errorf("expected %d rooms after removal, got %d", before-1, len(app.house.Rooms))
	}
	if !app.dirty {
		t.Error("expected unsaved changes after removal")
	}
}

func TestApp_AddRoomThroughForm(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	app.Update(keyMsg("n"))
	if !app.showForm {
		t.Fatal("expected form to open")
	}

	// Type the room name, pick the first preset, submit.
	for _, r := range "Loft" {
		app.Update(keyMsg(string(r)))
	}
	app.Update(specialKeyMsg(tea.KeyTab))
	app.Update(specialKeyMsg(tea.KeyRight))
	app.Update(specialKeyMsg(tea.KeyCtrlS))

	if app.showForm {
		t.Fatal("expected form to close after submit")
	}
	room := app.house.FindRoom("Loft")
	if room == nil {
		t.Fatal("expected Loft room added")
	}
	if room.Width <= 0 || room.Height <= 0 {
		t.Error("expected preset dimensions applied")
	}
	if !app.dirty {
		t.Error("expected unsaved changes after add")
	}
}

func TestApp_FormCancel(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	before := len(app.house.Rooms)
	app.Update(keyMsg("n"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	if app.showForm {
		t.Error("expected form closed after cancel")
	}
	if len(app.house.Rooms) != before {
		t.Error("expected no room added on cancel")
	}
}

func TestApp_CatalogView(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	output := app.View()
	if !strings.Contains(output, "CATALOG") {
		t.Error("expected catalog title")
	}
	if !strings.Contains(output, "CONSTRUCTION SYSTEMS") {
		t.Error("expected systems section")
	}
}

func TestApp_CatalogShowsPriceRanges(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	output := app.View()
	if !strings.Contains(output, "PRICE RANGES") {
		t.Error("expected price range section")
	}
	// Cheapest and priciest floor materials in the stock catalog.
	if !strings.Contains(output, "$35,000") {
		t.Error("expected floor minimum price")
	}
	if !strings.Contains(output, "$320,000") {
		t.Error("expected floor maximum price")
	}
	// Cheapest wall material.
	if !strings.Contains(output, "$15,000") {
		t.Error("expected wall minimum price")
	}
}

func TestApp_CatalogTabSwitchesFocus(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	if app.catalogFocus != 0 {
		t.Fatal("expected materials table focused initially")
	}

	app.Update(specialKeyMsg(tea.KeyTab))
	if app.catalogFocus != 1 {
		t.Error("expected systems table focused after tab")
	}
}

func TestApp_SaveUpdatesStatus(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(keyMsg("d"))

	_, cmd := app.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}

	app.Update(cmd())
	if app.dirty {
		t.Error("expected dirty flag cleared after save")
	}
	if !strings.Contains(app.status, "saved") {
		t.Errorf("expected saved status, got %q", app.status)
	}
}

func TestApp_HeaderShowsTotal(t *testing.T) {
	app := newTestApp(t)
	output := app.View()

	// Example house base cost with default catalog prices.
	if !strings.Contains(output, "COSTWISE") {
		t.Error("expected application title in header")
	}
	if !strings.Contains(output, app.house.Name) {
		t.Error("expected house name in header")
	}
}

func TestApp_DuplicateRoom(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	before := len(app.house.Rooms)
	app.Update(keyMsg("c"))

	if app.prompt == nil {
		t.Fatal("expected duplicate prompt to open")
	}
	if app.prompt.Value() != "Living Room - Copy" {
		t.Errorf("expected prefilled copy name, got %q", app.prompt.Value())
	}

	app.Update(specialKeyMsg(tea.KeyEnter))

	if len(app.house.Rooms) != before+1 {
		t.Fatalf("expected %d rooms after duplicate, got %d", before+1, len(app.house.Rooms))
	}
	src := app.house.FindRoom("Living Room")
	dup := app.house.FindRoom("Living Room - Copy")
	if dup == nil {
		t.Fatal("expected duplicated room added")
	}
	if dup.Width != src.Width || dup.Length != src.Length || dup.Height != src.Height {
		t.Error("expected dimensions copied")
	}
	if dup.FloorMaterial != src.FloorMaterial || dup.WallMaterial != src.WallMaterial || dup.System != src.System {
		t.Error("expected material and system references shared")
	}
	if !app.dirty {
		t.Error("expected unsaved changes after duplicate")
	}
}

func TestApp_DuplicateRoom_RejectsExistingName(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))

	app.Update(keyMsg("c"))
	app.Update(specialKeyMsg(tea.KeyEnter))
	before := len(app.house.Rooms)

	// The same copy name a second time must not add another room.
	app.Update(keyMsg("c"))
	app.Update(specialKeyMsg(tea.KeyEnter))

	if len(app.house.Rooms) != before {
		t.Errorf("expected %d rooms after rejected duplicate, got %d", before, len(app.house.Rooms))
	}
	if !app.statusErr {
		t.Error("expected error status for duplicate name")
	}
}

func TestApp_RenameHouse(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("r"))
	if app.prompt == nil {
		t.Fatal("expected rename prompt to open")
	}
	if app.prompt.Value() != "Example House" {
		t.Errorf("expected current name prefilled, got %q", app.prompt.Value())
	}

	app.Update(keyMsg("2"))
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.house.Name != "Example House2" {
		t.Errorf("expected renamed house, got %q", app.house.Name)
	}
	if app.prompt != nil {
		t.Error("expected prompt closed after submit")
	}
	if !app.dirty {
		t.Error("expected unsaved changes after rename")
	}
}

func TestApp_PromptCancel(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("r"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	if app.prompt != nil {
		t.Error("expected prompt closed after cancel")
	}
	if app.house.Name != "Example House" {
		t.Errorf("expected name unchanged, got %q", app.house.Name)
	}
}

func TestApp_NewHouse(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("n"))
	if app.prompt == nil {
		t.Fatal("expected new house prompt to open")
	}

	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.house.Name != "My House" {
		t.Errorf("expected new house, got %q", app.house.Name)
	}
	if len(app.house.Rooms) != 0 {
		t.Errorf("expected empty house, got %d rooms", len(app.house.Rooms))
	}
	if app.dirty {
		t.Error("expected a fresh house to start clean")
	}
}

func TestApp_OpenSavedHouse(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if err := app.service.SaveHouse(ctx, app.house); err != nil {
		t.Fatalf("SaveHouse: %v", err)
	}
	saved := app.house
	app.house = app.service.NewHouse("Scratch")
	app.refresh()

	_, cmd := app.Update(keyMsg("o"))
	if cmd == nil {
		t.Fatal("expected list command")
	}
	app.Update(cmd())

	if !app.showPicker {
		t.Fatal("expected picker open")
	}
	output := app.View()
	if !strings.Contains(output, "SAVED HOUSES") {
		t.Error("expected picker title")
	}
	if !strings.Contains(output, "Example House") {
		t.Error("expected saved house listed")
	}

	_, cmd = app.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	app.Update(cmd())

	if app.showPicker {
		t.Error("expected picker closed after open")
	}
	if app.house.Name != saved.Name {
		t.Errorf("expected %q opened, got %q", saved.Name, app.house.Name)
	}
	if len(app.house.Rooms) != len(saved.Rooms) {
		t.Errorf("expected %d rooms restored, got %d", len(saved.Rooms), len(app.house.Rooms))
	}
}

func TestApp_DeleteSavedHouse(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if err := app.service.SaveHouse(ctx, app.house); err != nil {
		t.Fatalf("SaveHouse: %v", err)
	}

	_, cmd := app.Update(keyMsg("o"))
	app.Update(cmd())

	_, cmd = app.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	_, cmd = app.Update(cmd())
	if cmd == nil {
		t.Fatal("expected list reload after delete")
	}
	app.Update(cmd())

	if len(app.houseNames) != 0 {
		t.Errorf("expected no saved houses, got %v", app.houseNames)
	}
	if !strings.Contains(app.View(), "No saved houses") {
		t.Error("expected empty picker placeholder")
	}

	names, err := app.service.ListHouses(ctx)
	if err != nil {
		t.Fatalf("ListHouses: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected house deleted from storage, got %v", names)
	}
}
