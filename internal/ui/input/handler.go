package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"radiorove/internal/keymap"
	"radiorove/internal/ui/input/types"
)

// Handler translates key messages into actions. There is a single input
// mode; the help popup only swallows keys until it is dismissed.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandleKey processes a key message and returns actions plus whether the
// key was consumed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Any key closes the help popup
	if ctx.HelpVisible() {
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	switch msg.Type {
	case tea.KeyTab:
		return []types.Action{types.CycleGroupAction{}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.CycleGroupAction{Backward: true}}, true
	case tea.KeySpace, tea.KeyEnter:
		return []types.Action{types.SelectAction{Index: -1}}, true
	}

	// Arrow keys resolve through the locale-aware keymap
	if dir, ok := keymap.Resolve(msg, ctx.Orientation(), ctx.TextDirection()); ok {
		return []types.Action{types.NavigateAction{Direction: dir}}, true
	}
	if jump, ok := keymap.ResolveJump(msg); ok {
		return []types.Action{types.JumpAction{ToEnd: jump == keymap.JumpLast}}, true
	}

	switch msg.String() {
	case "o":
		return []types.Action{types.ToggleOrientationAction{}}, true
	case "d":
		return []types.Action{types.ToggleTextDirectionAction{}}, true
	case "r":
		return []types.Action{types.ToggleReadOnlyAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
