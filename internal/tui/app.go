package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/costwise/costwise/internal/catalog"
	"github.com/costwise/costwise/internal/config"
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/services/estimate"
	"github.com/costwise/costwise/internal/tui/components"
	"github.com/costwise/costwise/internal/tui/views/dashboard"
	roomviews "github.com/costwise/costwise/internal/tui/views/rooms"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display.
const MaxContentWidth = 110

// Module represents a view module in the application.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleRooms     Module = "rooms"
	ModuleCatalog   Module = "catalog"
	ModuleHelp      Module = "help"
)

// App is the main Bubble Tea application model.
type App struct {
	service   *estimate.Service
	config    *config.Config
	formatter *pricing.Formatter
	house     *models.House

	dashboardView *dashboard.View
	roomList      *roomviews.ListView
	roomForm      *roomviews.Form

	materialsTable *components.Table
	systemsTable   *components.Table
	catalogFocus   int // 0 materials, 1 systems

	housePicker *components.Table
	houseNames  []string

	prompt     *prompt
	promptRoom *models.Room // room being duplicated

	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool
	showForm    bool
	showPicker  bool

	currentModule  Module
	previousModule Module

	status    string
	statusErr bool
	dirty     bool
}

type houseSavedMsg struct {
	err error
}

type houseListMsg struct {
	names []string
	err   error
}

type houseOpenedMsg struct {
	house *models.House
	err   error
}

type houseDeletedMsg struct {
	name string
	err  error
}

// New creates the application model around a loaded house.
func New(svc *estimate.Service, cfg *config.Config, house *models.House) *App {
	formatter := pricing.NewFormatter(
		cfg.Display.CurrencySymbol,
		cfg.Display.DecimalPlaces,
		cfg.Display.ThousandsSeparator,
	)

	a := &App{
		service:       svc,
		config:        cfg,
		formatter:     formatter,
		house:         house,
		dashboardView: dashboard.NewView(formatter),
		roomList:      roomviews.NewListView(formatter),
		theme:         NewTheme(cfg.Display.ColorScheme),
		keys:          DefaultKeyMap(),
		currentModule: ModuleDashboard,
	}

	a.buildCatalogTables()
	a.buildHousePicker()
	a.refresh()
	return a
}

// buildHousePicker prepares the saved-house list table. Rows are filled
// when the picker opens.
func (a *App) buildHousePicker() {
	a.housePicker = components.NewTable([]components.Column{
		{Title: "House", Width: 40},
	})
	a.housePicker.SetVisibleRows(10)
	a.housePicker.SetStyles(a.theme.TableHeader, a.theme.TableRow, a.theme.TableRowAlt, a.theme.Selected)
	a.housePicker.Focus(true)
}

// buildCatalogTables fills the catalog browser with the static price lists.
func (a *App) buildCatalogTables() {
	cat := a.service.Catalog()

	a.materialsTable = components.NewTable([]components.Column{
		{Title: "Material", Width: 24},
		{Title: "Surface", Width: 8},
		{Title: "Price/m²", Width: 12, Align: lipgloss.Right},
	})
	a.materialsTable.SetVisibleRows(14)
	a.materialsTable.SetStyles(a.theme.TableHeader, a.theme.TableRow, a.theme.TableRowAlt, a.theme.Selected)
	a.materialsTable.Focus(true)

	var rows [][]string
	for _, m := range cat.FloorMaterials() {
		rows = append(rows, []string{m.Name, string(m.Surface), a.formatter.Price(m.PricePerSqm)})
	}
	for _, m := range cat.WallMaterials() {
		rows = append(rows, []string{m.Name, string(m.Surface), a.formatter.Price(m.PricePerSqm)})
	}
	a.materialsTable.SetRows(rows)

	a.systemsTable = components.NewTable([]components.Column{
		{Title: "System", Width: 24},
		{Title: "Factor", Width: 8, Align: lipgloss.Right},
		{Title: "Description", Width: 40},
	})
	a.systemsTable.SetVisibleRows(8)
	a.systemsTable.SetStyles(a.theme.TableHeader, a.theme.TableRow, a.theme.TableRowAlt, a.theme.Selected)

	var sysRows [][]string
	for _, s := range cat.Systems() {
		sysRows = append(sysRows, []string{s.Name, fmt.Sprintf("%.2f", s.CostFactor), s.Description})
	}
	a.systemsTable.SetRows(sysRows)
}

// refresh recomputes the derived views after the house changes.
func (a *App) refresh() {
	a.roomList.Refresh(a.house)
	a.dashboardView.Refresh(a.service.Quote(a.house))
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		rows := a.height - 12
		if rows > 4 {
			a.roomList.SetVisibleRows(rows)
		}
		return a, nil

	case houseSavedMsg:
		if msg.err != nil {
			a.setStatus("Save failed: "+msg.err.Error(), true)
		} else {
			a.dirty = false
			a.setStatus("House saved", false)
		}
		return a, nil

	case houseListMsg:
		if msg.err != nil {
			a.showPicker = false
			a.setStatus("Listing houses failed: "+msg.err.Error(), true)
			return a, nil
		}
		a.houseNames = msg.names
		rows := make([][]string, len(msg.names))
		for i, name := range msg.names {
			rows[i] = []string{name}
		}
		a.housePicker.SetRows(rows)
		return a, nil

	case houseOpenedMsg:
		if msg.err != nil {
			a.setStatus("Open failed: "+msg.err.Error(), true)
			return a, nil
		}
		a.house = msg.house
		a.dirty = false
		a.showPicker = false
		a.refresh()
		a.setStatus("Opened "+msg.house.Name, false)
		return a, nil

	case houseDeletedMsg:
		if msg.err != nil {
			a.setStatus("Delete failed: "+msg.err.Error(), true)
			return a, nil
		}
		a.setStatus("Deleted "+msg.name, false)
		return a, a.loadHouseList()
	}

	return a, nil
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit confirmation takes priority over everything.
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
		}
		return a, nil
	}

	// Form mode consumes all input.
	if a.showForm && a.roomForm != nil {
		return a.handleFormKeys(msg)
	}

	if a.prompt != nil {
		return a.handlePromptKeys(msg)
	}

	if a.showPicker {
		return a.handlePickerKeys(msg)
	}

	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if module := a.keys.ModuleFor(msg); module != "" {
		if module == ModuleHelp {
			a.previousModule = a.currentModule
		}
		a.currentModule = module
		return a, nil
	}

	if a.keys.Escape.Matches(msg) {
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	switch a.currentModule {
	case ModuleRooms:
		return a.handleRoomKeys(msg)
	case ModuleCatalog:
		return a.handleCatalogKeys(msg)
	case ModuleDashboard:
		return a.handleDashboardKeys(msg)
	}

	return a, nil
}

// handleDashboardKeys handles house-level actions on the dashboard.
func (a *App) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Save.Matches(msg):
		return a, a.saveHouse()
	case a.keys.Rename.Matches(msg):
		a.prompt = newPrompt(promptRenameHouse, "RENAME HOUSE", a.house.Name)
	case a.keys.New.Matches(msg):
		a.prompt = newPrompt(promptNewHouse, "NEW HOUSE", "My House")
	case a.keys.Open.Matches(msg):
		a.showPicker = true
		a.houseNames = nil
		a.housePicker.SetRows(nil)
		return a, a.loadHouseList()
	}
	return a, nil
}

// handleRoomKeys handles key presses in the rooms module list view.
func (a *App) handleRoomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Up.Matches(msg):
		a.roomList.MoveUp()
	case a.keys.Down.Matches(msg):
		a.roomList.MoveDown()
	case a.keys.New.Matches(msg):
		a.roomForm = roomviews.NewForm(roomviews.FormModeAdd, a.service.Catalog())
		a.showForm = true
	case a.keys.Edit.Matches(msg):
		if room := a.roomList.SelectedRoom(); room != nil {
			a.roomForm = roomviews.NewForm(roomviews.FormModeEdit, a.service.Catalog())
			a.roomForm.SetRoom(room)
			a.showForm = true
		}
	case a.keys.Remove.Matches(msg):
		if room := a.roomList.SelectedRoom(); room != nil {
			a.house.RemoveRoom(room.Name)
			a.dirty = true
			a.refresh()
			a.setStatus("Removed "+room.Name, false)
		}
	case a.keys.Duplicate.Matches(msg):
		if room := a.roomList.SelectedRoom(); room != nil {
			a.promptRoom = room
			a.prompt = newPrompt(promptDuplicateRoom, "DUPLICATE ROOM", room.Name+" - Copy")
		}
	case a.keys.Save.Matches(msg):
		return a, a.saveHouse()
	}
	return a, nil
}

// handleFormKeys handles key presses while the room form is active.
func (a *App) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.roomForm.HandleKey(msg.String())

	if a.roomForm.IsCancelled() {
		a.closeForm()
		return a, nil
	}

	if a.roomForm.IsSubmitted() {
		a.applyForm()
	}

	return a, nil
}

// applyForm applies the submitted room form to the house.
func (a *App) applyForm() {
	input, err := a.roomForm.Data()
	if err != nil {
		a.setStatus(err.Error(), true)
		a.closeForm()
		return
	}

	if room := a.roomForm.EditedRoom(); room != nil {
		if other := a.house.FindRoom(input.Name); other != nil && other != room {
			a.setStatus("A room named "+input.Name+" already exists", true)
			a.closeForm()
			return
		}
		if input.Width == 0 && input.Length == 0 && input.Height == 0 {
			preset := a.service.Catalog().PresetOrDefault(input.Preset)
			input.Width, input.Length, input.Height = preset.Width, preset.Length, preset.Height
		}
		room.Name = input.Name
		room.Width = input.Width
		room.Length = input.Length
		room.Height = input.Height
		a.service.AssignFinishes(room, input.FloorMaterial, input.WallMaterial, input.System)
		a.setStatus("Updated "+room.Name, false)
	} else {
		room, err := a.service.AddRoom(a.house, input)
		if err != nil {
			a.setStatus("Add failed: "+err.Error(), true)
			a.closeForm()
			return
		}
		a.setStatus("Added "+room.Name, false)
	}

	a.dirty = true
	a.refresh()
	a.closeForm()
}

func (a *App) closeForm() {
	a.showForm = false
	a.roomForm = nil
}

// handlePromptKeys handles key presses while a name prompt is active.
func (a *App) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.prompt.HandleKey(msg.String())

	if a.prompt.cancelled {
		a.closePrompt()
		return a, nil
	}

	if a.prompt.submitted {
		a.applyPrompt()
	}

	return a, nil
}

// applyPrompt applies the submitted name prompt.
func (a *App) applyPrompt() {
	name := a.prompt.Value()

	switch a.prompt.action {
	case promptDuplicateRoom:
		a.duplicateRoom(a.promptRoom, name)
	case promptRenameHouse:
		a.house.Name = name
		a.dirty = true
		a.refresh()
		a.setStatus("House renamed to "+name, false)
	case promptNewHouse:
		a.house = a.service.NewHouse(name)
		a.dirty = false
		a.refresh()
		a.setStatus("Created "+name, false)
	}

	a.closePrompt()
}

// duplicateRoom adds a copy of src under the given name. The copy takes
// the source's dimensions and shares its material and system references.
func (a *App) duplicateRoom(src *models.Room, name string) {
	if src == nil {
		return
	}

	dup := models.NewRoom(name, src.Width, src.Length, src.Height)
	dup.AssignFloorMaterial(src.FloorMaterial)
	dup.AssignWallMaterial(src.WallMaterial)
	dup.AssignSystem(src.System)

	if err := a.house.AddRoom(dup); err != nil {
		a.setStatus("Duplicate failed: "+err.Error(), true)
		return
	}

	a.dirty = true
	a.refresh()
	a.setStatus("Duplicated "+src.Name+" as "+name, false)
}

func (a *App) closePrompt() {
	a.prompt = nil
	a.promptRoom = nil
}

// handlePickerKeys handles key presses while the saved-house list is open.
func (a *App) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Up.Matches(msg):
		a.housePicker.MoveUp()
	case a.keys.Down.Matches(msg):
		a.housePicker.MoveDown()
	case a.keys.Enter.Matches(msg):
		if name := a.selectedHouseName(); name != "" {
			return a, a.openHouse(name)
		}
	case a.keys.Remove.Matches(msg):
		if name := a.selectedHouseName(); name != "" {
			return a, a.deleteHouse(name)
		}
	case a.keys.Escape.Matches(msg):
		a.showPicker = false
	}
	return a, nil
}

func (a *App) selectedHouseName() string {
	idx := a.housePicker.Selected()
	if idx >= 0 && idx < len(a.houseNames) {
		return a.houseNames[idx]
	}
	return ""
}

// handleCatalogKeys handles key presses in the catalog module.
func (a *App) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Tab.Matches(msg):
		a.catalogFocus = 1 - a.catalogFocus
		a.materialsTable.Focus(a.catalogFocus == 0)
		a.systemsTable.Focus(a.catalogFocus == 1)
	case a.keys.Up.Matches(msg):
		a.focusedCatalogTable().MoveUp()
	case a.keys.Down.Matches(msg):
		a.focusedCatalogTable().MoveDown()
	}
	return a, nil
}

func (a *App) focusedCatalogTable() *components.Table {
	if a.catalogFocus == 1 {
		return a.systemsTable
	}
	return a.materialsTable
}

// saveHouse persists the current house.
func (a *App) saveHouse() tea.Cmd {
	return func() tea.Msg {
		err := a.service.SaveHouse(context.Background(), a.house)
		return houseSavedMsg{err: err}
	}
}

// loadHouseList fetches the saved house names for the picker.
func (a *App) loadHouseList() tea.Cmd {
	return func() tea.Msg {
		names, err := a.service.ListHouses(context.Background())
		return houseListMsg{names: names, err: err}
	}
}

// openHouse loads a saved house by name.
func (a *App) openHouse(name string) tea.Cmd {
	return func() tea.Msg {
		house, err := a.service.LoadHouse(context.Background(), name)
		return houseOpenedMsg{house: house, err: err}
	}
}

// deleteHouse removes a saved house by name. The house is loaded first
// since deletion goes by ID.
func (a *App) deleteHouse(name string) tea.Cmd {
	return func() tea.Msg {
		house, err := a.service.LoadHouse(context.Background(), name)
		if err != nil {
			return houseDeletedMsg{name: name, err: err}
		}
		return houseDeletedMsg{name: name, err: a.service.DeleteHouse(context.Background(), house)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Costwise shutting down...")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	b.WriteString("\n")

	contentHeight := a.height - 6
	switch {
	case a.showConfirm:
		b.WriteString(a.renderConfirmDialog(contentHeight))
	case a.prompt != nil:
		b.WriteString(a.renderPromptDialog(contentHeight))
	case a.showPicker:
		b.WriteString(a.renderHousePicker(contentHeight))
	default:
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("COSTWISE v%s", Version)

	houseName := a.house.Name
	if a.dirty {
		houseName += " *"
	}
	info := fmt.Sprintf("%s | %s", houseName, a.formatter.Price(a.house.TotalCost()))

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(info) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info)

	return header + "\n" + a.theme.DrawHorizontalLine(a.width)
}

// renderStatusBar renders the message line under the header.
func (a *App) renderStatusBar() string {
	module := a.theme.StatusKey.Render(strings.ToUpper(string(a.currentModule)))
	divider := a.theme.StatusDivider.Render()

	var message string
	switch {
	case a.status == "":
		message = a.theme.Muted.Render("Ready")
	case a.statusErr:
		message = a.theme.Error.Render(a.status)
	default:
		message = a.theme.Secondary.Render(a.status)
	}

	return module + divider + message
}

// renderContent renders the main content area for the current module.
func (a *App) renderContent(height int) string {
	content := a.moduleContent()

	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	return style.Render(lipgloss.NewStyle().Width(contentWidth).Render(content))
}

func (a *App) moduleContent() string {
	switch a.currentModule {
	case ModuleRooms:
		if a.showForm && a.roomForm != nil {
			return a.roomForm.Render(a.width)
		}
		return a.roomList.Render(a.width)
	case ModuleCatalog:
		return a.renderCatalog()
	case ModuleHelp:
		return a.renderHelp()
	default:
		return a.dashboardView.Render(a.width)
	}
}

// renderCatalog renders the material and system price lists.
func (a *App) renderCatalog() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ CATALOG ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("MATERIALS"))
	b.WriteString("\n")
	b.WriteString(a.materialsTable.View())
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("CONSTRUCTION SYSTEMS"))
	b.WriteString("\n")
	b.WriteString(a.systemsTable.View())
	b.WriteString("\n\n")

	stats := a.service.Catalog().Stats()
	b.WriteString(a.theme.Subtitle.Render("PRICE RANGES"))
	b.WriteString("\n")
	b.WriteString(a.renderPriceRange("Floor", stats.Floor))
	b.WriteString("\n")
	b.WriteString(a.renderPriceRange("Walls", stats.Wall))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Muted.Render("Tab:Switch list  Up/Down:Scroll"))

	return b.String()
}

// renderPriceRange renders one material set's min/avg/max price line.
func (a *App) renderPriceRange(label string, pr catalog.PriceRange) string {
	return a.theme.Label.Render(label+":") + " " +
		a.theme.Value.Render(fmt.Sprintf("min %s  avg %s  max %s",
			a.formatter.Price(pr.Min), a.formatter.Price(pr.Average), a.formatter.Price(pr.Max)))
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Rooms"},
		{"F4", "Catalog"},
		{"F10", "Quit"},
	}
	for _, item := range navItems {
		b.WriteString(a.theme.Primary.Render(fmt.Sprintf("    %-8s  %s", item[0], item[1])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("ROOMS"))
	b.WriteString("\n\n")

	roomItems := [][2]string{
		{"Up/Down", "Select room"},
		{"n", "Add room"},
		{"e", "Edit room"},
		{"c", "Duplicate room"},
		{"d", "Remove room"},
		{"s", "Save house"},
	}
	for _, item := range roomItems {
		b.WriteString(a.theme.Primary.Render(fmt.Sprintf("    %-8s  %s", item[0], item[1])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("HOUSE (DASHBOARD)"))
	b.WriteString("\n\n")

	houseItems := [][2]string{
		{"r", "Rename house"},
		{"n", "New house"},
		{"o", "Open saved house"},
		{"s", "Save house"},
	}
	for _, item := range houseItems {
		b.WriteString(a.theme.Primary.Render(fmt.Sprintf("    %-8s  %s", item[0], item[1])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	body := a.theme.Title.Render("CONFIRM EXIT") + "\n\n"
	if a.dirty {
		body += a.theme.Warning.Render("Unsaved changes will be lost.") + "\n\n"
	}
	body += a.theme.Primary.Render("Are you sure you want to exit?") + "\n\n" +
		a.theme.Label.Render("[Y]es  [N]o")

	dialog := a.theme.Box.Render(body)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderPromptDialog renders the active name prompt as a centered dialog.
func (a *App) renderPromptDialog(height int) string {
	body := a.theme.Title.Render(a.prompt.title) + "\n\n"
	if a.prompt.action == promptNewHouse && a.dirty {
		body += a.theme.Warning.Render("Unsaved changes to the current house will be lost.") + "\n\n"
	}
	body += "> " + a.prompt.input.View() + "\n\n" +
		a.theme.Label.Render("Enter:OK  Esc:Cancel")

	dialog := a.theme.Box.Render(body)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderHousePicker renders the saved-house list.
func (a *App) renderHousePicker(height int) string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ SAVED HOUSES ═══"))
	b.WriteString("\n\n")

	if len(a.houseNames) == 0 {
		b.WriteString(a.theme.Muted.Render("No saved houses."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.housePicker.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Up/Down:Select  Enter:Open  d:Delete  Esc:Close"))

	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	return style.Render(lipgloss.NewStyle().Width(contentWidth).Render(b.String()))
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	return a.theme.DrawHorizontalLine(a.width) + "\n" +
		a.theme.Footer.Render(a.keys.StatusBarHelp())
}

// Run starts the TUI application.
func Run(ctx context.Context, svc *estimate.Service, cfg *config.Config, house *models.House) error {
	app := New(svc, cfg, house)

	p := tea.NewProgram(app, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
