// Package tui provides the interactive package browser for pacstore.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is a set of theme colors. Light and dark variants mirror the
// theme preference file.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Bg        lipgloss.Color
	BgAlt     lipgloss.Color
}

// LightPalette returns the light theme colors.
func LightPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#0E7490"), // Teal
		Success:   lipgloss.Color("#047857"), // Green
		Warning:   lipgloss.Color("#B45309"), // Amber
		Error:     lipgloss.Color("#B91C1C"), // Red
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Text:      lipgloss.Color("#111827"), // Near black
		Bg:        lipgloss.Color("#F9FAFB"), // Off white
		BgAlt:     lipgloss.Color("#E5E7EB"), // Light gray
	}
}

// DarkPalette returns the dark theme colors.
func DarkPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Success:   lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Yellow
		Error:     lipgloss.Color("#EF4444"), // Red
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Text:      lipgloss.Color("#F3F4F6"), // Light gray
		Bg:        lipgloss.Color("#1F2937"), // Dark gray
		BgAlt:     lipgloss.Color("#374151"), // Slightly lighter
	}
}

// Styles contains all the lipgloss styles used in the TUI
type Styles struct {
	palette Palette

	// App frame
	Header lipgloss.Style
	Footer lipgloss.Style

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Description lipgloss.Style

	// List items
	ListItemSelected lipgloss.Style

	// Package display
	PackageName    lipgloss.Style
	PackageVersion lipgloss.Style
	PackageType    lipgloss.Style
	PackageDesc    lipgloss.Style
	InstalledMark  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Operation log
	LogLine lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogButton lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) *Styles {
	s := &Styles{palette: p}

	s.Header = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.BgAlt).
		Padding(0, 1).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.BgAlt).
		Padding(0, 1)

	s.TabActive = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(p.Primary).
		Bold(true).
		Underline(true)

	s.TabInactive = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(p.Muted)

	s.Title = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	s.Description = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	s.PackageName = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)

	s.PackageVersion = lipgloss.NewStyle().
		Foreground(p.Success)

	s.PackageType = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	s.PackageDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.InstalledMark = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	s.Success = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	s.Warning = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.Error = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.Info = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	s.LogLine = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2).
		Width(60)

	s.DialogTitle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		MarginBottom(1)

	s.DialogButton = lipgloss.NewStyle().
		Foreground(p.Bg).
		Background(p.Primary).
		Padding(0, 2).
		MarginRight(1)

	return s
}

// TypeBadge renders a badge for a package type (deb, git, bin, app).
func (s *Styles) TypeBadge(ptype string) string {
	if ptype == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(s.palette.Bg).
		Background(s.palette.Secondary).
		Padding(0, 1).
		Render(ptype)
}
