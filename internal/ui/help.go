package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the full help text shown in the popup and the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("radiorove Help"))
	help.WriteString("\n")

	// Focus section
	help.WriteString(sectionStyle.Render("Focus"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move the tab stop back/forward")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Move along a horizontal group (flips in RTL)")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Home/End"), descStyle.Render("Jump to first/last enabled option")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Next group (Shift-Tab for previous)")))
	help.WriteString("\n")

	// Selection section
	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space"), descStyle.Render("Select the focused option")))
	help.WriteString(descStyle.Render("  Arrow navigation also selects as it moves, unless the"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  group is read-only or disabled."))
	help.WriteString("\n")

	// Layout section
	help.WriteString(sectionStyle.Render("Layout & Locale"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("o"), descStyle.Render("Toggle vertical/horizontal layout")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("d"), descStyle.Render("Toggle LTR/RTL text direction")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Toggle read-only on the focused group")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("H"), descStyle.Render("Open help in pager")))
	help.WriteString(fmt.Sprintf("  %s          %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the help content string
	reader := strings.NewReader(helpContent)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
