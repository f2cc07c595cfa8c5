package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"radiorove/internal/domain"
	"radiorove/internal/radiogroup"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Groups        []*radiogroup.Group
	FocusedGroup  int
	Orientation   domain.Orientation
	TextDirection domain.TextDirection
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string
	Help          help.Model
	Keys          help.KeyMap
}

// ViewRenderer composes the full application view
type ViewRenderer struct {
	styles *Styles
	radio  *RadioRenderer
}

// NewViewRenderer creates a new view renderer
func NewViewRenderer(styles *Styles, radio *RadioRenderer) *ViewRenderer {
	return &ViewRenderer{
		styles: styles,
		radio:  radio,
	}
}

// Render renders the complete view
func (vr *ViewRenderer) Render(state ViewState) string {
	title := vr.styles.Title.Render("radiorove")

	groups := make([]string, 0, len(state.Groups))
	for i, g := range state.Groups {
		groups = append(groups, vr.radio.RenderGroup(g, state.Orientation, state.TextDirection, i == state.FocusedGroup))
	}

	var body string
	if state.Orientation == domain.OrientationHorizontal {
		body = lipgloss.JoinVertical(lipgloss.Left, groups...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, groups...)
	}

	status := vr.renderStatus(state)
	footer := vr.styles.Help.Render(state.Help.View(state.Keys))

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, status, footer)
	main := vr.styles.Main.Render(content)

	if state.ShowHelp {
		return vr.renderHelpOverlay(main, state)
	}
	return main
}

// renderStatus renders the status line under the groups
func (vr *ViewRenderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		if state.StatusIsError {
			return vr.styles.StatusError.Render(state.StatusMessage)
		}
		return vr.styles.Status.Render(state.StatusMessage)
	}

	msg := fmt.Sprintf("layout: %s · text: %s", state.Orientation, state.TextDirection)
	if g := currentGroup(state); g != nil {
		if g.Value() != "" {
			msg += fmt.Sprintf(" · %s = %s", g.Name(), g.Value())
		} else {
			msg += fmt.Sprintf(" · %s unset", g.Name())
		}
	}
	return vr.styles.Status.Render(msg)
}

// renderHelpOverlay centers the help popup over the dimmed main view
func (vr *ViewRenderer) renderHelpOverlay(main string, state ViewState) string {
	popup := vr.styles.PopupBox.Render(state.HelpContent)

	width := state.Width
	height := state.Height
	if width <= 0 {
		width = lipgloss.Width(main)
	}
	if height <= 0 {
		height = lipgloss.Height(main)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func currentGroup(state ViewState) *radiogroup.Group {
	if state.FocusedGroup < 0 || state.FocusedGroup >= len(state.Groups) {
		return nil
	}
	return state.Groups[state.FocusedGroup]
}
