package tui

import (
	"sort"

	"pacstore/internal/catalog"
	"pacstore/internal/config"
	"pacstore/internal/history"
	"pacstore/internal/operation"
	"pacstore/internal/orchestrator"
)

// View represents different views in the TUI
type View int

const (
	ViewCatalog View = iota
	ViewInstalled
	ViewHistory
	ViewDetails
	ViewOperation
	ViewHelp
)

// Tab represents a navigable tab
type Tab struct {
	Name string
	View View
}

// DefaultTabs returns the default tab configuration
func DefaultTabs() []Tab {
	return []Tab{
		{Name: "Catalog", View: ViewCatalog},
		{Name: "Installed", View: ViewInstalled},
		{Name: "History", View: ViewHistory},
	}
}

// Model holds the application state
type Model struct {
	// Core state
	ready    bool
	quitting bool

	// Dimensions
	width  int
	height int

	// Navigation
	tabs       []Tab
	activeTab  int
	activeView View
	prevView   View

	// Data
	orch           *orchestrator.Orchestrator
	config         *config.Config
	prefs          config.Preferences
	packages       []catalog.Package
	installed      map[string]struct{}
	installedNames []string
	historyEntries []history.Entry
	selectedPkg    *catalog.Package
	selectedDetail *catalog.Detail

	// Running operation
	activeOp *operation.Operation
	opLines  []string

	// UI state
	loading     bool
	loadingMsg  string
	errorMsg    string
	successMsg  string
	filterText  string
	inputMode   bool
	inputPrompt string

	// Pending operation awaiting a credential
	pendingName string
	pendingMode operation.Mode

	// Cursor positions for each view
	cursors map[View]int

	// Scroll offsets for each view
	scrolls map[View]int

	// Styles and keys
	styles *Styles
	keys   KeyMap
}

// NewModel creates a new TUI model
func NewModel(orch *orchestrator.Orchestrator, cfg *config.Config, prefs config.Preferences) *Model {
	palette := LightPalette()
	if prefs.Dark() {
		palette = DarkPalette()
	}

	return &Model{
		tabs:       DefaultTabs(),
		activeTab:  0,
		activeView: ViewCatalog,
		orch:       orch,
		config:     cfg,
		prefs:      prefs,
		installed:  make(map[string]struct{}),
		cursors:    make(map[View]int),
		scrolls:    make(map[View]int),
		styles:     NewStyles(palette),
		keys:       DefaultKeyMap(),
	}
}

// SetSize sets the terminal size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the cursor position for the current view
func (m *Model) Cursor() int {
	return m.cursors[m.activeView]
}

// SetCursor sets the cursor position for the current view
func (m *Model) SetCursor(pos int) {
	m.cursors[m.activeView] = pos
}

// Scroll returns the scroll offset for the current view
func (m *Model) Scroll() int {
	return m.scrolls[m.activeView]
}

// SetScroll sets the scroll offset for the current view
func (m *Model) SetScroll(offset int) {
	m.scrolls[m.activeView] = offset
}

// VisibleHeight returns the height available for list content
func (m *Model) VisibleHeight() int {
	// Account for header (2), tabs (1), footer (2), padding (2)
	return m.height - 7
}

// FilteredPackages returns the catalog entries matching the filter text.
func (m *Model) FilteredPackages() []catalog.Package {
	return catalog.Filter(m.packages, m.filterText)
}

// listLen returns the number of rows in the current view's list.
func (m *Model) listLen() int {
	switch m.activeView {
	case ViewCatalog:
		return len(m.FilteredPackages())
	case ViewInstalled:
		return len(m.installedNames)
	case ViewHistory:
		return len(m.historyEntries)
	default:
		return 0
	}
}

// SelectedPackage returns the catalog entry under the cursor, resolving
// installed-view rows back to catalog entries when possible.
func (m *Model) SelectedPackage() *catalog.Package {
	cursor := m.Cursor()

	switch m.activeView {
	case ViewCatalog:
		items := m.FilteredPackages()
		if cursor >= 0 && cursor < len(items) {
			return &items[cursor]
		}
	case ViewInstalled:
		if cursor < 0 || cursor >= len(m.installedNames) {
			return nil
		}
		name := m.installedNames[cursor]
		for i := range m.packages {
			if m.packages[i].Name == name {
				return &m.packages[i]
			}
		}
		// Installed but no longer in the catalog.
		return &catalog.Package{Name: name}
	}
	return nil
}

// IsInstalled reports whether a name is in the installed snapshot.
func (m *Model) IsInstalled(name string) bool {
	_, ok := m.installed[name]
	return ok
}

// SetInstalled replaces the installed snapshot.
func (m *Model) SetInstalled(installed map[string]struct{}) {
	m.installed = installed

	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	sort.Strings(names)
	m.installedNames = names

	if m.cursors[ViewInstalled] >= len(names) && len(names) > 0 {
		m.cursors[ViewInstalled] = len(names) - 1
	}
}

// MoveCursor moves the cursor by delta, clamping to valid range
func (m *Model) MoveCursor(delta int) {
	length := m.listLen()
	if length == 0 {
		return
	}

	newPos := m.Cursor() + delta
	if newPos < 0 {
		newPos = 0
	}
	if newPos >= length {
		newPos = length - 1
	}
	m.SetCursor(newPos)

	// Adjust scroll to keep cursor visible
	visibleHeight := m.VisibleHeight()
	scroll := m.Scroll()

	if newPos < scroll {
		m.SetScroll(newPos)
	} else if newPos >= scroll+visibleHeight {
		m.SetScroll(newPos - visibleHeight + 1)
	}
}

// GoToTop moves cursor to the top
func (m *Model) GoToTop() {
	m.SetCursor(0)
	m.SetScroll(0)
}

// GoToBottom moves cursor to the bottom
func (m *Model) GoToBottom() {
	length := m.listLen()
	if length == 0 {
		return
	}
	m.SetCursor(length - 1)

	visibleHeight := m.VisibleHeight()
	if length > visibleHeight {
		m.SetScroll(length - visibleHeight)
	}
}

// NextTab switches to the next tab
func (m *Model) NextTab() {
	m.activeTab = (m.activeTab + 1) % len(m.tabs)
	m.activeView = m.tabs[m.activeTab].View
}

// PrevTab switches to the previous tab
func (m *Model) PrevTab() {
	m.activeTab--
	if m.activeTab < 0 {
		m.activeTab = len(m.tabs) - 1
	}
	m.activeView = m.tabs[m.activeTab].View
}

// SetTab switches to a specific tab by index
func (m *Model) SetTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
		m.activeView = m.tabs[m.activeTab].View
	}
}

// ShowDetails shows the details view for the selected package
func (m *Model) ShowDetails() {
	if pkg := m.SelectedPackage(); pkg != nil {
		m.selectedPkg = pkg
		m.selectedDetail = nil
		m.prevView = m.activeView
		m.activeView = ViewDetails
	}
}

// GoBack returns to the previous view
func (m *Model) GoBack() {
	switch m.activeView {
	case ViewDetails, ViewHelp:
		m.activeView = m.prevView
	case ViewOperation:
		// The operation view stays up while the operation runs.
		if m.activeOp == nil || m.activeOp.Status().Terminal() {
			m.activeView = m.tabs[m.activeTab].View
		}
	}
}

// ToggleTheme flips between light and dark and rebuilds the styles. The
// preference is persisted best effort.
func (m *Model) ToggleTheme() {
	if m.prefs.Dark() {
		m.prefs.Theme = config.ThemeLight
		m.styles = NewStyles(LightPalette())
	} else {
		m.prefs.Theme = config.ThemeDark
		m.styles = NewStyles(DarkPalette())
	}
	_ = m.prefs.Save() //nolint:errcheck
}

// SetLoading sets the loading state
func (m *Model) SetLoading(loading bool, msg string) {
	m.loading = loading
	m.loadingMsg = msg
}

// SetError sets an error message
func (m *Model) SetError(msg string) {
	m.errorMsg = msg
	m.successMsg = ""
}

// SetSuccess sets a success message
func (m *Model) SetSuccess(msg string) {
	m.successMsg = msg
	m.errorMsg = ""
}

// ClearMessages clears all messages
func (m *Model) ClearMessages() {
	m.errorMsg = ""
	m.successMsg = ""
}

// truncate shortens a string to fit a display width.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		if width < 0 {
			width = 0
		}
		return s[:width]
	}
	return s[:width-3] + "..."
}
