package radiogroup

import (
	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
	"radiorove/internal/focus"
)

// ChangeFunc is invoked with the ID of the newly selected option
type ChangeFunc func(id string)

// Group is a single-selection radio group built on the roving focus
// service. Focus follows navigation: every accepted move of the tab stop
// also selects the newly focused option, unless the group is read-only or
// disabled — those overrides suppress value changes without altering focus
// navigation.
type Group struct {
	name    string
	options []domain.Option
	value   string // selected option ID, "" when nothing is selected

	fs  *focus.Service
	bus eventbus.EventBus

	disabled   bool
	readOnly   bool
	controlled bool // value only changes through SetValue
	onChange   ChangeFunc
}

// New creates a radio group with the given ordered options. The first
// enabled option receives the initial tab stop.
func New(name string, options []domain.Option, bus eventbus.EventBus) *Group {
	return &Group{
		name:    name,
		options: options,
		fs:      focus.NewService(name, options, bus),
		bus:     bus,
	}
}

// Name returns the group name shared by all sibling options.
func (g *Group) Name() string { return g.name }

// Options returns the ordered option list.
func (g *Group) Options() []domain.Option { return g.options }

// Value returns the selected option ID, or "" when nothing is selected.
func (g *Group) Value() string { return g.value }

// Active returns the index holding the roving tab stop, or focus.NoFocus.
func (g *Group) Active() int { return g.fs.Active() }

// OnChange sets the selection callback.
func (g *Group) OnChange(fn ChangeFunc) { g.onChange = fn }

// SetControlled switches the group to controlled mode: Select still fires
// the callback and the ValueChangedEvent, but the stored value only changes
// through SetValue.
func (g *Group) SetControlled(controlled bool) { g.controlled = controlled }

// SetDisabled sets the group-level disabled override.
func (g *Group) SetDisabled(disabled bool) { g.disabled = disabled }

// Disabled reports the group-level disabled override.
func (g *Group) Disabled() bool { return g.disabled }

// SetReadOnly sets the group-level read-only override.
func (g *Group) SetReadOnly(readOnly bool) { g.readOnly = readOnly }

// ReadOnly reports the group-level read-only override.
func (g *Group) ReadOnly() bool { return g.readOnly }

// Navigate moves the tab stop one step and, per the focus-follows-selection
// policy, selects the newly focused option. Returns whether focus moved.
func (g *Group) Navigate(dir domain.Direction) bool {
	idx, ok := g.fs.Navigate(g.options, dir)
	if !ok {
		return false
	}
	g.selectIndex(idx)
	return true
}

// Home moves the tab stop to the first enabled option and selects it.
func (g *Group) Home() bool {
	if !g.fs.Home(g.options) {
		return false
	}
	g.selectIndex(g.fs.Active())
	return true
}

// End moves the tab stop to the last enabled option and selects it.
func (g *Group) End() bool {
	if !g.fs.End(g.options) {
		return false
	}
	g.selectIndex(g.fs.Active())
	return true
}

// Select moves focus to the option at index and selects it, as a click or
// an explicit activation would. Disabled options are rejected.
func (g *Group) Select(index int) bool {
	if !g.fs.MoveTo(g.options, index) {
		return false
	}
	g.selectIndex(index)
	return true
}

// SetValue adopts an externally owned value and moves the tab stop to the
// matching option. Unknown and disabled IDs are ignored.
func (g *Group) SetValue(id string) bool {
	for i, opt := range g.options {
		if opt.ID != id {
			continue
		}
		if opt.Disabled {
			return false
		}
		g.fs.MoveTo(g.options, i)
		g.value = id
		return true
	}
	return false
}

// SetOptionDisabled flips the disabled flag of one option. The tab stop is
// not repositioned: a now-disabled active option keeps its historical
// position until the next navigation steps off it.
func (g *Group) SetOptionDisabled(index int, disabled bool) {
	if index < 0 || index >= len(g.options) {
		return
	}
	g.options[index].Disabled = disabled
}

// TabStops derives the tab stop assignment for rendering.
func (g *Group) TabStops() []domain.TabStop {
	return focus.TabStops(g.options, g.fs.Active())
}

// selectIndex applies the value change for a focused option, honoring the
// read-only, disabled and controlled overrides.
func (g *Group) selectIndex(index int) {
	opt := g.options[index]
	if g.disabled || g.readOnly || opt.ReadOnly {
		// Focus moved but the value must not change
		return
	}
	if opt.ID == g.value {
		return
	}

	old := g.value
	if !g.controlled {
		g.value = opt.ID
	}
	if g.onChange != nil {
		g.onChange(opt.ID)
	}
	if g.bus != nil {
		g.bus.Publish(eventbus.ValueChangedEvent{
			Group:    g.name,
			OldValue: old,
			NewValue: opt.ID,
			Index:    index,
		})
	}
}
