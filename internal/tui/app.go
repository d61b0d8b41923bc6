package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacstore/internal/catalog"
	"pacstore/internal/config"
	"pacstore/internal/executor"
	"pacstore/internal/history"
	"pacstore/internal/operation"
	"pacstore/internal/orchestrator"
)

const (
	promptFilter   = "Filter: "
	promptPassword = "Password: "
)

// Messages for async operations
type (
	catalogLoadedMsg struct {
		packages []catalog.Package
	}

	installedLoadedMsg struct {
		installed map[string]struct{}
	}

	historyLoadedMsg struct {
		entries []history.Entry
		err     error
	}

	detailLoadedMsg struct {
		name   string
		detail *catalog.Detail
	}

	orchEventMsg struct {
		ev orchestrator.Event
	}
)

// App wraps the Model with bubbletea components
type App struct {
	*Model
	spinner   spinner.Model
	textInput textinput.Model
	store     *history.Store
}

// NewApp creates a new TUI application
func NewApp(orch *orchestrator.Orchestrator, cfg *config.Config, prefs config.Preferences, store *history.Store) *App {
	model := NewModel(orch, cfg, prefs)

	// Initialize spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(model.styles.palette.Primary)

	// Initialize text input
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Width = 40

	return &App{
		Model:     model,
		spinner:   sp,
		textInput: ti,
		store:     store,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	a.SetLoading(true, "Fetching catalog...")
	return tea.Batch(
		a.spinner.Tick,
		a.loadCatalog(),
		a.loadInstalled(),
		a.loadHistory(),
		a.waitEvent(),
	)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.ready = true

	case tea.KeyMsg:
		if a.inputMode {
			return a.updateInput(msg)
		}
		return a.updateKeys(msg)

	case catalogLoadedMsg:
		a.SetLoading(false, "")
		a.packages = msg.packages
		if len(msg.packages) == 0 {
			a.SetError("Catalog unavailable")
		} else {
			a.ClearMessages()
		}

	case installedLoadedMsg:
		a.SetInstalled(msg.installed)

	case historyLoadedMsg:
		if msg.err == nil {
			a.historyEntries = msg.entries
		}

	case detailLoadedMsg:
		if a.selectedPkg != nil && a.selectedPkg.Name == msg.name {
			a.selectedDetail = msg.detail
			if msg.detail == nil {
				a.SetError("Details unavailable for " + msg.name)
			}
		}

	case orchEventMsg:
		cmds = append(cmds, a.handleEvent(msg.ev)...)
		cmds = append(cmds, a.waitEvent())

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// updateInput handles key events while the text input is focused.
func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := a.textInput.Value()
		prompt := a.inputPrompt
		a.closeInput()

		if prompt == promptFilter {
			a.filterText = value
			a.SetCursor(0)
			a.SetScroll(0)
			return a, nil
		}

		// Password entry submits the pending operation.
		return a, a.submitOperation([]byte(value))

	case "esc":
		a.closeInput()
		a.pendingName = ""
		return a, nil

	default:
		var cmd tea.Cmd
		a.textInput, cmd = a.textInput.Update(msg)
		return a, cmd
	}
}

// updateKeys handles key events in normal mode.
func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, a.keys.Quit):
		if a.activeOp != nil && !a.activeOp.Status().Terminal() {
			a.orch.Cancel(a.activeOp)
		}
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		if a.activeView == ViewHelp {
			a.GoBack()
		} else {
			a.prevView = a.activeView
			a.activeView = ViewHelp
		}

	case key.Matches(msg, a.keys.Tab1):
		a.SetTab(0)
	case key.Matches(msg, a.keys.Tab2):
		a.SetTab(1)
	case key.Matches(msg, a.keys.Tab3):
		a.SetTab(2)

	case key.Matches(msg, a.keys.Left):
		a.PrevTab()
	case key.Matches(msg, a.keys.Right):
		a.NextTab()

	case key.Matches(msg, a.keys.Back):
		a.GoBack()
	case key.Matches(msg, a.keys.Cancel):
		if a.activeView == ViewOperation && a.activeOp != nil && !a.activeOp.Status().Terminal() {
			a.orch.Cancel(a.activeOp)
		} else {
			a.GoBack()
			a.ClearMessages()
		}

	// Navigation
	case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.VimUp):
		a.MoveCursor(-1)
	case key.Matches(msg, a.keys.Down), key.Matches(msg, a.keys.VimDown):
		a.MoveCursor(1)
	case key.Matches(msg, a.keys.PageUp):
		a.MoveCursor(-a.VisibleHeight())
	case key.Matches(msg, a.keys.PageDown):
		a.MoveCursor(a.VisibleHeight())
	case key.Matches(msg, a.keys.Home), key.Matches(msg, a.keys.VimTop):
		a.GoToTop()
	case key.Matches(msg, a.keys.End), key.Matches(msg, a.keys.VimBot):
		a.GoToBottom()

	// Actions
	case key.Matches(msg, a.keys.Enter):
		if a.activeView == ViewCatalog || a.activeView == ViewInstalled {
			a.ShowDetails()
			if a.selectedPkg != nil {
				cmds = append(cmds, a.loadDetail(a.selectedPkg.Name))
			}
		}

	case key.Matches(msg, a.keys.Filter):
		if a.activeView == ViewCatalog || a.activeView == ViewInstalled {
			a.startFilter()
		}

	case key.Matches(msg, a.keys.Refresh):
		a.SetLoading(true, "Fetching catalog...")
		cmds = append(cmds, a.loadCatalog())

	case key.Matches(msg, a.keys.Theme):
		a.ToggleTheme()
		a.spinner.Style = lipgloss.NewStyle().Foreground(a.styles.palette.Primary)

	case key.Matches(msg, a.keys.Install):
		if pkg := a.SelectedPackage(); pkg != nil && !a.IsInstalled(pkg.Name) {
			cmds = append(cmds, a.beginOperation(pkg.Name, operation.ModeInstall))
		}

	case key.Matches(msg, a.keys.Uninstall):
		if pkg := a.SelectedPackage(); pkg != nil && a.IsInstalled(pkg.Name) {
			cmds = append(cmds, a.beginOperation(pkg.Name, operation.ModeUninstall))
		}
	}

	return a, tea.Batch(cmds...)
}

// handleEvent reacts to one orchestrator event.
func (a *App) handleEvent(ev orchestrator.Event) []tea.Cmd {
	var cmds []tea.Cmd

	switch ev := ev.(type) {
	case orchestrator.OperationProgress:
		if a.activeOp != nil && ev.ID == a.activeOp.ID() {
			a.opLines = append(a.opLines, ev.Line)
		}

	case orchestrator.OperationDone:
		if a.activeOp == nil || ev.ID != a.activeOp.ID() {
			break
		}
		a.SetLoading(false, "")

		switch ev.Status {
		case operation.StatusSucceeded:
			verb := "Installed"
			if ev.Mode == operation.ModeUninstall {
				verb = "Removed"
			}
			a.SetSuccess(fmt.Sprintf("%s %s", verb, ev.Package))
		case operation.StatusCancelled:
			a.SetError("Operation cancelled")
		default:
			a.SetError(fmt.Sprintf("Operation on %s failed", ev.Package))
		}

		cmds = append(cmds, a.loadHistory())

	case orchestrator.InstalledChanged:
		a.SetInstalled(a.orch.Installed())

	case orchestrator.CatalogReady:
		a.packages = ev.Packages
	}

	return cmds
}

// View implements tea.Model
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderContent())
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the header bar
func (a *App) renderHeader() string {
	title := a.styles.Header.Render(" Pacstore - Pacstall Package Browser ")

	var right string
	if a.inputMode {
		right = a.styles.InputPrompt.Render(a.inputPrompt) + a.textInput.View()
	} else if a.loading {
		right = a.spinner.View() + " " + a.loadingMsg
	} else if a.errorMsg != "" {
		right = a.styles.Error.Render(a.errorMsg)
	} else if a.successMsg != "" {
		right = a.styles.Success.Render(a.successMsg)
	}

	padding := a.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return title + strings.Repeat(" ", padding) + right
}

// renderTabs renders the tab bar
func (a *App) renderTabs() string {
	var tabs []string
	for i, tab := range a.tabs {
		style := a.styles.TabInactive
		if i == a.activeTab {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("[%d] %s", i+1, tab.Name)))
	}

	tabBar := strings.Join(tabs, " ")
	return lipgloss.NewStyle().
		Width(a.width).
		Background(a.styles.palette.BgAlt).
		Padding(0, 1).
		Render(tabBar)
}

// renderContent renders the main content area
func (a *App) renderContent() string {
	height := a.height - 5 // Account for header, tabs, footer

	var content string
	switch a.activeView {
	case ViewCatalog:
		content = a.renderCatalogView()
	case ViewInstalled:
		content = a.renderInstalledView()
	case ViewHistory:
		content = a.renderHistoryView()
	case ViewDetails:
		content = a.renderDetailsView()
	case ViewOperation:
		content = a.renderOperationView()
	case ViewHelp:
		content = a.renderHelpView()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Render(content)
}

// renderCatalogView renders the browsable catalog list
func (a *App) renderCatalogView() string {
	var b strings.Builder

	filtered := a.FilteredPackages()

	titleStr := fmt.Sprintf("Package Catalog (%d)", len(filtered))
	if a.filterText != "" {
		titleStr += fmt.Sprintf(" - Filter: %s", a.filterText)
	}
	b.WriteString(a.styles.Title.Render(titleStr))
	b.WriteString("\n\n")

	if len(filtered) == 0 {
		if len(a.packages) == 0 {
			b.WriteString(a.styles.Description.Render("Catalog is empty. Press R to refresh."))
		} else {
			b.WriteString(a.styles.Description.Render("No packages match the filter"))
		}
		return b.String()
	}

	visibleHeight := a.VisibleHeight()
	scroll := a.Scroll()
	cursor := a.Cursor()

	start := scroll
	end := scroll + visibleHeight
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		b.WriteString(a.renderPackageLine(filtered[i], i == cursor))
		b.WriteString("\n")
	}

	if len(filtered) > visibleHeight {
		scrollPct := float64(scroll) / float64(len(filtered)-visibleHeight) * 100
		b.WriteString(a.styles.Description.Render(fmt.Sprintf("\n  %.0f%% (%d/%d)", scrollPct, cursor+1, len(filtered))))
	}

	return b.String()
}

// renderPackageLine renders a single catalog row
func (a *App) renderPackageLine(pkg catalog.Package, selected bool) string {
	cursor := "  "
	if selected {
		cursor = a.styles.ListItemSelected.Render("> ")
	}

	name := pkg.Name
	if selected {
		name = a.styles.PackageName.Render(name)
	}

	mark := "  "
	if a.IsInstalled(pkg.Name) {
		mark = a.styles.InstalledMark.Render("✓ ")
	}

	version := a.styles.PackageVersion.Render(pkg.Version)
	badge := a.styles.TypeBadge(pkg.Type)

	maxDescWidth := a.width - 60
	desc := a.styles.PackageDesc.Render(truncate(pkg.Description, maxDescWidth))

	return fmt.Sprintf("%s%s%-30s %-10s %s %s", cursor, mark, name, version, badge, desc)
}

// renderInstalledView renders the locally installed package list
func (a *App) renderInstalledView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(fmt.Sprintf("Installed Packages (%d)", len(a.installedNames))))
	b.WriteString("\n\n")

	if len(a.installedNames) == 0 {
		b.WriteString(a.styles.Description.Render("No packages installed"))
		return b.String()
	}

	visibleHeight := a.VisibleHeight()
	scroll := a.Scroll()
	cursor := a.Cursor()

	start := scroll
	end := scroll + visibleHeight
	if end > len(a.installedNames) {
		end = len(a.installedNames)
	}

	for i := start; i < end; i++ {
		name := a.installedNames[i]

		prefix := "  "
		if i == cursor {
			prefix = a.styles.ListItemSelected.Render("> ")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n",
			prefix,
			a.styles.InstalledMark.Render("✓"),
			name))
	}

	return b.String()
}

// renderHistoryView renders the operation history view
func (a *App) renderHistoryView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Operation History"))
	b.WriteString("\n\n")

	if len(a.historyEntries) == 0 {
		b.WriteString(a.styles.Description.Render("No history entries"))
		return b.String()
	}

	for i, entry := range a.historyEntries {
		if i >= a.VisibleHeight() {
			break
		}

		status := a.styles.Success.Render("OK")
		if !entry.Succeeded() {
			status = a.styles.Error.Render(strings.ToUpper(entry.Status))
		}

		timestamp := entry.Timestamp.Format("2006-01-02 15:04")
		line := fmt.Sprintf("  %s  %-10s  %-30s  %s",
			timestamp, entry.Operation, truncate(entry.Package, 30), status)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderDetailsView renders package details
func (a *App) renderDetailsView() string {
	var b strings.Builder

	if a.selectedPkg == nil {
		b.WriteString(a.styles.Error.Render("No package selected"))
		return b.String()
	}

	pkg := a.selectedPkg

	b.WriteString(a.styles.Title.Render(pkg.DisplayName()))
	if pkg.Type != "" {
		b.WriteString(" ")
		b.WriteString(a.styles.TypeBadge(pkg.Type))
	}
	b.WriteString("\n\n")

	detail := a.selectedDetail
	if detail == nil {
		b.WriteString(a.spinner.View())
		b.WriteString(" Loading details...")
		b.WriteString("\n\n")
	}

	version := pkg.Version
	description := pkg.Description
	if detail != nil {
		version = detail.Version
		description = detail.Description
	}

	b.WriteString(a.styles.Subtitle.Render("Version: "))
	b.WriteString(a.styles.PackageVersion.Render(version))
	b.WriteString("\n\n")

	if description != "" {
		b.WriteString(a.styles.Subtitle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(a.styles.Description.Render(description))
		b.WriteString("\n\n")
	}

	if detail != nil {
		if detail.Homepage != "" {
			b.WriteString(a.styles.Subtitle.Render("Homepage: "))
			b.WriteString(detail.Homepage)
			b.WriteString("\n")
		}
		if len(detail.Licenses) > 0 {
			b.WriteString(a.styles.Subtitle.Render("License: "))
			b.WriteString(strings.Join(detail.Licenses, ", "))
			b.WriteString("\n")
		}
		if len(detail.Maintainers) > 0 {
			b.WriteString(a.styles.Subtitle.Render("Maintainers: "))
			b.WriteString(strings.Join(detail.Maintainers, ", "))
			b.WriteString("\n")
		}
		if len(detail.RuntimeDeps) > 0 {
			deps := make([]string, 0, len(detail.RuntimeDeps))
			for _, d := range detail.RuntimeDeps {
				deps = append(deps, d.Value)
			}
			b.WriteString(a.styles.Subtitle.Render("Depends: "))
			b.WriteString(truncate(strings.Join(deps, ", "), a.width-12))
			b.WriteString("\n")
		}
		if t := detail.LastUpdatedTime(); !t.IsZero() {
			b.WriteString(a.styles.Subtitle.Render("Updated: "))
			b.WriteString(t.Format("2006-01-02 15:04"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Subtitle.Render("Status: "))
	if a.IsInstalled(pkg.Name) {
		b.WriteString(a.styles.Success.Render("Installed"))
	} else {
		b.WriteString(a.styles.Info.Render("Not installed"))
	}
	b.WriteString("\n\n")

	b.WriteString(a.styles.Subtitle.Render("Actions"))
	b.WriteString("\n")
	if a.IsInstalled(pkg.Name) {
		b.WriteString("  [r] Remove package\n")
	} else {
		b.WriteString("  [i] Install package\n")
	}
	b.WriteString("  [b] Back\n")

	return b.String()
}

// renderOperationView renders the live output of a running operation
func (a *App) renderOperationView() string {
	var b strings.Builder

	if a.activeOp == nil {
		b.WriteString(a.styles.Error.Render("No operation running"))
		return b.String()
	}

	verb := "Installing"
	if a.activeOp.Mode() == operation.ModeUninstall {
		verb = "Removing"
	}

	status := a.activeOp.Status()
	switch status {
	case operation.StatusSucceeded:
		b.WriteString(a.styles.Success.Render(fmt.Sprintf("✓ %s %s - done", verb, a.activeOp.Package())))
	case operation.StatusFailed:
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("✗ %s %s - failed", verb, a.activeOp.Package())))
	case operation.StatusCancelled:
		b.WriteString(a.styles.Warning.Render(fmt.Sprintf("! %s %s - cancelled", verb, a.activeOp.Package())))
	default:
		b.WriteString(a.spinner.View())
		b.WriteString(" ")
		b.WriteString(a.styles.Title.Render(fmt.Sprintf("%s %s...", verb, a.activeOp.Package())))
	}
	b.WriteString("\n\n")

	// Tail of the output log.
	visible := a.VisibleHeight() - 3
	lines := a.opLines
	if len(lines) > visible && visible > 0 {
		lines = lines[len(lines)-visible:]
	}
	for _, line := range lines {
		b.WriteString(a.styles.LogLine.Render("  " + truncate(line, a.width-4)))
		b.WriteString("\n")
	}

	if !status.Terminal() {
		b.WriteString("\n")
		b.WriteString(a.styles.Description.Render("Press esc to cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(a.styles.Description.Render("Press b to go back"))
	}

	return b.String()
}

// renderHelpView renders the help view
func (a *App) renderHelpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Navigation",
			keys: []struct{ key, desc string }{
				{"j/k or Up/Down", "Move cursor"},
				{"g/G", "Go to top/bottom"},
				{"PgUp/PgDn", "Page up/down"},
				{"1-3", "Switch tabs"},
				{"Left/Right", "Previous/next tab"},
			},
		},
		{
			title: "Actions",
			keys: []struct{ key, desc string }{
				{"Enter", "View details"},
				{"/", "Filter list"},
				{"R", "Refresh catalog"},
				{"i", "Install package"},
				{"r", "Remove package"},
				{"t", "Toggle light/dark theme"},
			},
		},
		{
			title: "General",
			keys: []struct{ key, desc string }{
				{"?", "Toggle help"},
				{"Esc/b", "Go back / cancel operation"},
				{"q", "Quit"},
			},
		},
	}

	for _, section := range sections {
		b.WriteString(a.styles.Subtitle.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			b.WriteString(fmt.Sprintf("  %-22s %s\n",
				a.styles.Info.Render(k.key),
				a.styles.Description.Render(k.desc)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the footer bar
func (a *App) renderFooter() string {
	var hints []string

	switch a.activeView {
	case ViewCatalog:
		hints = []string{"i:install", "r:remove", "/:filter", "R:refresh", "Enter:details"}
	case ViewInstalled:
		hints = []string{"r:remove", "Enter:details"}
	case ViewDetails:
		if a.selectedPkg != nil && a.IsInstalled(a.selectedPkg.Name) {
			hints = []string{"r:remove", "b:back"}
		} else {
			hints = []string{"i:install", "b:back"}
		}
	case ViewOperation:
		hints = []string{"esc:cancel", "b:back"}
	default:
		hints = nil
	}

	hints = append(hints, "?:help", "q:quit")

	return a.styles.Footer.
		Width(a.width).
		Render(strings.Join(hints, "  "))
}

// startFilter initiates filter input
func (a *App) startFilter() {
	a.textInput.EchoMode = textinput.EchoNormal
	a.textInput.Placeholder = "Type to filter..."
	a.textInput.SetValue(a.filterText)
	a.textInput.Focus()
	a.inputMode = true
	a.inputPrompt = promptFilter
}

// startPassword initiates masked password input
func (a *App) startPassword() {
	a.textInput.EchoMode = textinput.EchoPassword
	a.textInput.EchoCharacter = '*'
	a.textInput.Placeholder = ""
	a.textInput.SetValue("")
	a.textInput.Focus()
	a.inputMode = true
	a.inputPrompt = promptPassword
}

// closeInput clears input mode state.
func (a *App) closeInput() {
	a.inputMode = false
	a.inputPrompt = ""
	a.textInput.SetValue("")
	a.textInput.Blur()
	a.textInput.EchoMode = textinput.EchoNormal
}

// beginOperation starts the install/uninstall flow, prompting for a
// credential when elevation is required.
func (a *App) beginOperation(name string, mode operation.Mode) tea.Cmd {
	a.pendingName = name
	a.pendingMode = mode

	if executor.IsRoot() {
		return a.submitOperation(nil)
	}
	if !executor.HasSudo() {
		a.SetError("sudo not found; cannot elevate")
		a.pendingName = ""
		return nil
	}

	a.startPassword()
	return nil
}

// submitOperation hands the pending operation to the orchestrator.
func (a *App) submitOperation(credential []byte) tea.Cmd {
	name, mode := a.pendingName, a.pendingMode
	a.pendingName = ""
	if name == "" {
		return nil
	}

	a.activeOp = a.orch.Submit(context.Background(), name, mode, credential)
	a.opLines = nil
	a.prevView = a.tabs[a.activeTab].View
	a.activeView = ViewOperation
	a.ClearMessages()

	return nil
}

// Async commands

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{packages: a.orch.RefreshCatalog(context.Background())}
	}
}

func (a *App) loadInstalled() tea.Cmd {
	return func() tea.Msg {
		a.orch.RefreshInstalled(context.Background())
		return installedLoadedMsg{installed: a.orch.Installed()}
	}
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if a.store == nil {
			return historyLoadedMsg{}
		}

		entries, err := a.store.List(50)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (a *App) loadDetail(name string) tea.Cmd {
	return func() tea.Msg {
		return detailLoadedMsg{name: name, detail: a.orch.Detail(context.Background(), name)}
	}
}

// waitEvent blocks for the next orchestrator event.
func (a *App) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return orchEventMsg{ev: <-a.orch.Events()}
	}
}

// Run starts the TUI application
func Run(orch *orchestrator.Orchestrator, cfg *config.Config, prefs config.Preferences, store *history.Store) error {
	app := NewApp(orch, cfg, prefs, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
