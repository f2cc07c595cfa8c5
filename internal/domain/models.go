package domain

// Option represents one entry in a radio group. Options form a fixed,
// ordered sequence; the order is the visual order and the tab order.
type Option struct {
	ID       string
	Label    string
	Disabled bool // excluded from the roving scheme entirely
	ReadOnly bool // focusable but not selectable
}

// Direction represents abstract navigation directions, resolved from
// physical arrow keys by the keymap layer.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Orientation is the layout axis of a group
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// TextDirection is the text flow of the surrounding locale
type TextDirection string

const (
	TextDirectionLTR TextDirection = "ltr"
	TextDirectionRTL TextDirection = "rtl"
)

// TabStop describes how one option participates in sequential focus
type TabStop int

const (
	// TabStopExcluded means the option is disabled and takes no part in
	// sequential focus at all
	TabStopExcluded TabStop = iota
	// TabStopReachable means the option is the single roving tab stop
	TabStopReachable
	// TabStopUnreachable means the option is enabled but only reachable
	// via arrow navigation
	TabStopUnreachable
)
