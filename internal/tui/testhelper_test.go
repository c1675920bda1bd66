package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/costwise/costwise/internal/catalog"
	"github.com/costwise/costwise/internal/config"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/services/estimate"
	"github.com/costwise/costwise/internal/testutil"
)

// newTestService creates an estimate service over an in-memory database
// with migrations applied.
func newTestService(t *testing.T) *estimate.Service {
	t.Helper()

	tdb := testutil.NewTestDB(t)
	t.Cleanup(func() { tdb.Close(t) })
	tdb.RunMigrations(t, filepath.Join("..", "database", "migrations"))

	return estimate.NewService(tdb.DB, catalog.Default(), pricing.DefaultMarkup())
}

// newTestApp creates an App over the example house with the window set to
// 120x40 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	svc := newTestService(t)
	app := New(svc, config.Default(), svc.Catalog().ExampleHouse())

	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// newE2EApp creates an App for end-to-end testing via teatest. Unlike
// newTestApp this does not pre-set dimensions, since teatest sends the
// WindowSizeMsg through WithInitialTermSize.
func newE2EApp(t *testing.T) *App {
	t.Helper()

	svc := newTestService(t)
	return New(svc, config.Default(), svc.Catalog().ExampleHouse())
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}
