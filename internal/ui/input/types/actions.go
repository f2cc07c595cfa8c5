package types

import (
	"radiorove/internal/domain"
)

// Navigation actions
type NavigateAction struct {
	Direction domain.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

type JumpAction struct {
	ToEnd bool // false = first enabled option, true = last
}

func (a JumpAction) Type() string { return "jump" }

// Selection actions
type SelectAction struct {
	Index int // -1 selects the option holding the tab stop
}

func (a SelectAction) Type() string { return "select" }

// Group cycling (Tab / Shift-Tab across sibling groups)
type CycleGroupAction struct {
	Backward bool
}

func (a CycleGroupAction) Type() string { return "cycle_group" }

// Locale/layout toggles
type ToggleOrientationAction struct{}

func (a ToggleOrientationAction) Type() string { return "toggle_orientation" }

type ToggleTextDirectionAction struct{}

func (a ToggleTextDirectionAction) Type() string { return "toggle_text_direction" }

type ToggleReadOnlyAction struct{}

func (a ToggleReadOnlyAction) Type() string { return "toggle_read_only" }

// Help actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

// Application actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
