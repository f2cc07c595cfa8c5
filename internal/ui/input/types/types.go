package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"radiorove/internal/domain"
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Orientation() domain.Orientation
	TextDirection() domain.TextDirection
	GroupCount() int
	FocusedGroup() int
	HelpVisible() bool
}

// Handler translates key presses into actions
type Handler interface {
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}
