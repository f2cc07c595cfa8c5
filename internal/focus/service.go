package focus

import (
	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
)

// State holds the roving focus state for one option group
type State struct {
	Active int // NoFocus when no option is focusable
}

// Service owns the roving tab stop for a single option group and publishes
// FocusMovedEvent when it moves. The option list itself lives with the
// owning group; the service is handed the current list on every call so
// options may be enabled or disabled between requests.
type Service struct {
	group string
	state *State
	bus   eventbus.EventBus
}

// NewService creates a focus service for the named group. The first enabled
// option receives the initial tab stop; if every option is disabled the
// group starts with no focus.
func NewService(group string, opts []domain.Option, bus eventbus.EventBus) *Service {
	active := NoFocus
	if idx, ok := First(opts); ok {
		active = idx
	}
	return &Service{
		group: group,
		state: &State{Active: active},
		bus:   bus,
	}
}

// Active returns the index currently holding the tab stop, or NoFocus.
func (s *Service) Active() int {
	return s.state.Active
}

// Navigate moves the tab stop one step in the given direction, wrapping and
// skipping disabled options. When no enabled option exists the tab stop is
// left unchanged. Returns the resulting index and whether a move landed.
func (s *Service) Navigate(opts []domain.Option, dir domain.Direction) (int, bool) {
	if len(opts) == 0 {
		return s.state.Active, false
	}

	start := s.state.Active
	if start == NoFocus {
		// Focus was lost (all options disabled at some point); re-enter the
		// walk from the edge matching the direction.
		var ok bool
		if dir == domain.DirectionForward {
			start, ok = First(opts)
		} else {
			start, ok = Last(opts)
		}
		if !ok {
			return s.state.Active, false
		}
		s.moveTo(start)
		return start, true
	}

	next, ok, err := Next(opts, start, dir)
	if err != nil || !ok {
		return s.state.Active, false
	}
	s.moveTo(next)
	return next, true
}

// MoveTo places the tab stop on a specific enabled option. Moves onto
// disabled or out-of-range indices are rejected.
func (s *Service) MoveTo(opts []domain.Option, index int) bool {
	if index < 0 || index >= len(opts) || opts[index].Disabled {
		return false
	}
	s.moveTo(index)
	return true
}

// Home moves the tab stop to the first enabled option.
func (s *Service) Home(opts []domain.Option) bool {
	idx, ok := First(opts)
	if !ok {
		return false
	}
	s.moveTo(idx)
	return true
}

// End moves the tab stop to the last enabled option.
func (s *Service) End(opts []domain.Option) bool {
	idx, ok := Last(opts)
	if !ok {
		return false
	}
	s.moveTo(idx)
	return true
}

func (s *Service) moveTo(index int) {
	old := s.state.Active
	if old == index {
		return
	}
	s.state.Active = index
	if s.bus != nil {
		s.bus.Publish(eventbus.FocusMovedEvent{
			Group:    s.group,
			OldIndex: old,
			NewIndex: index,
		})
	}
}
