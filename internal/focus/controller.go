package focus

import (
	"fmt"

	"radiorove/internal/domain"
)

// NoFocus is the active index used when no option holds the roving tab stop
const NoFocus = -1

// Next computes the next focusable index for a roving tab stop.
//
// Starting from current, it steps forward or backward through opts with
// circular wrap, skipping disabled options, until it finds an enabled option
// or has visited every index once. The current index may reference a
// disabled option (a historical position); it is a starting point, not a
// landing target, though a full wrap lands back on it when it is the only
// enabled option. Read-only options are valid stops and are not skipped.
//
// The boolean result is false when no enabled option exists. That is an
// expected outcome, not an error; errors are returned only for malformed
// input (empty opts, out-of-range current).
func Next(opts []domain.Option, current int, dir domain.Direction) (int, bool, error) {
	n := len(opts)
	if n == 0 {
		return 0, false, fmt.Errorf("next focus: empty option list")
	}
	if current < 0 || current >= n {
		return 0, false, fmt.Errorf("next focus: index %d out of range [0,%d)", current, n)
	}

	delta := 1
	if dir == domain.DirectionBackward {
		delta = -1
	}

	// The i == n step is current itself, so a full circle can land back on
	// the starting option when it is the only enabled one.
	for i := 1; i <= n; i++ {
		idx := ((current+delta*i)%n + n) % n
		if !opts[idx].Disabled {
			return idx, true, nil
		}
	}
	return 0, false, nil
}

// First returns the first enabled index, or false if every option is disabled.
func First(opts []domain.Option) (int, bool) {
	for i, opt := range opts {
		if !opt.Disabled {
			return i, true
		}
	}
	return 0, false
}

// Last returns the last enabled index, or false if every option is disabled.
func Last(opts []domain.Option) (int, bool) {
	for i := len(opts) - 1; i >= 0; i-- {
		if !opts[i].Disabled {
			return i, true
		}
	}
	return 0, false
}

// TabStops derives the tab stop assignment for every option. Disabled
// options are excluded from sequential focus entirely; the enabled option
// at active is the single reachable stop; every other enabled option is
// unreachable. Exactly one stop is reachable whenever active names an
// enabled option, zero otherwise.
func TabStops(opts []domain.Option, active int) []domain.TabStop {
	stops := make([]domain.TabStop, len(opts))
	for i, opt := range opts {
		switch {
		case opt.Disabled:
			stops[i] = domain.TabStopExcluded
		case i == active:
			stops[i] = domain.TabStopReachable
		default:
			stops[i] = domain.TabStopUnreachable
		}
	}
	return stops
}
