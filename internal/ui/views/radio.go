package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radiorove/internal/domain"
	"radiorove/internal/radiogroup"
)

// RadioRenderer renders radio groups
type RadioRenderer struct {
	styles         *Styles
	selectedMark   string
	unselectedMark string
}

// NewRadioRenderer creates a new radio group renderer
func NewRadioRenderer(styles *Styles, selectedMark, unselectedMark string) *RadioRenderer {
	if selectedMark == "" {
		selectedMark = "◉"
	}
	if unselectedMark == "" {
		unselectedMark = "○"
	}
	return &RadioRenderer{
		styles:         styles,
		selectedMark:   selectedMark,
		unselectedMark: unselectedMark,
	}
}

// RenderGroup renders one radio group. The focused flag marks the group
// that currently receives key input; orientation and text direction control
// how the options are laid out.
func (rr *RadioRenderer) RenderGroup(g *radiogroup.Group, o domain.Orientation, d domain.TextDirection, focused bool) string {
	stops := g.TabStops()
	options := g.Options()

	rendered := make([]string, 0, len(options))
	for i, opt := range options {
		rendered = append(rendered, rr.renderOption(g, opt, stops[i], focused))
	}

	var body string
	if o == domain.OrientationHorizontal {
		// RTL locales lay the options out right to left; the walk order
		// over the underlying list is unchanged
		if d == domain.TextDirectionRTL {
			for i, j := 0, len(rendered)-1; i < j; i, j = i+1, j-1 {
				rendered[i], rendered[j] = rendered[j], rendered[i]
			}
		}
		body = strings.Join(rendered, "   ")
	} else {
		body = strings.Join(rendered, "\n")
	}

	title := rr.styles.GroupTitle.Render(g.Name())
	if g.ReadOnly() {
		title += rr.styles.ReadOnly.Render(" (read-only)")
	}
	if g.Disabled() {
		title += rr.styles.Disabled.Render(" (disabled)")
	}

	box := rr.styles.GroupBox
	if focused {
		box = rr.styles.FocusedBox
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// renderOption renders a single option with its mark, focus cursor and
// tab stop decoration.
func (rr *RadioRenderer) renderOption(g *radiogroup.Group, opt domain.Option, stop domain.TabStop, groupFocused bool) string {
	mark := rr.unselectedMark
	if opt.ID == g.Value() {
		mark = rr.selectedMark
	}

	label := opt.Label
	if opt.ReadOnly {
		label += " \U0001F512" // padlock
	}

	line := mark + " " + label

	switch {
	case stop == domain.TabStopExcluded:
		return "  " + rr.styles.Disabled.Render(line)
	case stop == domain.TabStopReachable && groupFocused:
		return rr.styles.Cursor.Render("▸ ") + rr.styles.Focused.Render(line)
	case stop == domain.TabStopReachable:
		return "  " + rr.styles.Reachable.Render(line)
	case opt.ID == g.Value():
		return "  " + rr.styles.Selected.Render(line)
	default:
		return "  " + rr.styles.Option.Render(line)
	}
}
