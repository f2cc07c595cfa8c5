package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"radiorove/internal/domain"
)

// Jump represents absolute tab stop targets (Home/End)
type Jump string

const (
	JumpFirst Jump = "first"
	JumpLast  Jump = "last"
)

// Resolve maps a physical key to an abstract navigation direction given the
// group's layout orientation and the locale's text direction.
//
// Down is always forward and Up is always backward regardless of text
// direction. Left/Right only apply to horizontal groups and flip with the
// text direction: Right is forward in LTR and backward in RTL. The vim keys
// j/k and h/l follow their arrow counterparts.
func Resolve(msg tea.KeyMsg, o domain.Orientation, d domain.TextDirection) (domain.Direction, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return domain.DirectionBackward, true
	case tea.KeyDown:
		return domain.DirectionForward, true
	case tea.KeyLeft:
		return resolveHorizontal(o, d, false)
	case tea.KeyRight:
		return resolveHorizontal(o, d, true)
	}

	switch msg.String() {
	case "j":
		return domain.DirectionForward, true
	case "k":
		return domain.DirectionBackward, true
	case "h":
		return resolveHorizontal(o, d, false)
	case "l":
		return resolveHorizontal(o, d, true)
	}

	return "", false
}

// resolveHorizontal maps a physical right (or left) press onto the walk
// direction. The mapping is a pure lookup over the two locale axes.
func resolveHorizontal(o domain.Orientation, d domain.TextDirection, right bool) (domain.Direction, bool) {
	if o != domain.OrientationHorizontal {
		return "", false
	}
	forward := right
	if d == domain.TextDirectionRTL {
		forward = !forward
	}
	if forward {
		return domain.DirectionForward, true
	}
	return domain.DirectionBackward, true
}

// ResolveJump maps Home/End (and gg/G-style keys) to absolute jumps.
func ResolveJump(msg tea.KeyMsg) (Jump, bool) {
	switch msg.Type {
	case tea.KeyHome:
		return JumpFirst, true
	case tea.KeyEnd:
		return JumpLast, true
	}
	switch msg.String() {
	case "g":
		return JumpFirst, true
	case "G":
		return JumpLast, true
	}
	return "", false
}

// KeyMap lists the application bindings for the help footer
type KeyMap struct {
	Navigate    key.Binding
	Jump        key.Binding
	Select      key.Binding
	NextGroup   key.Binding
	Orientation key.Binding
	TextDir     key.Binding
	ReadOnly    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "j", "k", "h", "l"),
			key.WithHelp("↑/↓/←/→", "move focus"),
		),
		Jump: key.NewBinding(
			key.WithKeys("home", "end", "g", "G"),
			key.WithHelp("home/end", "first/last"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select"),
		),
		NextGroup: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next group"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle orientation"),
		),
		TextDir: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle text direction"),
		),
		ReadOnly: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle read-only"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Select, k.NextGroup, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Jump, k.Select},
		{k.NextGroup, k.Orientation, k.TextDir},
		{k.ReadOnly, k.Help, k.Quit},
	}
}
