package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	GroupTitle  lipgloss.Style
	GroupBox    lipgloss.Style
	FocusedBox  lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Focused     lipgloss.Style
	Reachable   lipgloss.Style
	Disabled    lipgloss.Style
	ReadOnly    lipgloss.Style
	Cursor      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Dim         lipgloss.Style
	Main        lipgloss.Style
	PopupBox    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		GroupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		GroupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Option:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		// The roving tab stop is underlined so the reachable option is
		// visible even in an unfocused group
		Reachable:   lipgloss.NewStyle().Underline(true),
		Disabled:    lipgloss.NewStyle().Faint(true),
		ReadOnly:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Faint(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
	}
}
