package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
)

func TestServiceInitialFocus(t *testing.T) {
	t.Parallel()

	s := NewService("g", opts(true, false, false), nil)
	assert.Equal(t, 1, s.Active(), "first enabled option should hold the initial tab stop")

	s = NewService("g", opts(true, true), nil)
	assert.Equal(t, NoFocus, s.Active(), "all-disabled group starts with no focus")
}

func TestServiceNavigate(t *testing.T) {
	t.Parallel()

	list := opts(false, true, false)
	s := NewService("g", list, nil)
	require.Equal(t, 0, s.Active())

	idx, ok := s.Navigate(list, domain.DirectionForward)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = s.Navigate(list, domain.DirectionForward)
	require.True(t, ok)
	assert.Equal(t, 0, idx, "forward past the end wraps")
}

func TestServiceNavigateAllDisabledLeavesFocus(t *testing.T) {
	t.Parallel()

	list := opts(false, false)
	s := NewService("g", list, nil)

	// Options become disabled between requests
	list[0].Disabled = true
	list[1].Disabled = true

	idx, ok := s.Navigate(list, domain.DirectionForward)
	assert.False(t, ok)
	assert.Equal(t, 0, idx, "failed walk leaves focus unchanged")
}

func TestServiceNavigateRecoversFromNoFocus(t *testing.T) {
	t.Parallel()

	s := NewService("g", opts(true, true), nil)
	require.Equal(t, NoFocus, s.Active())

	// The group becomes focusable again
	list := opts(true, false)
	idx, ok := s.Navigate(list, domain.DirectionForward)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestServiceMoveTo(t *testing.T) {
	t.Parallel()

	list := opts(false, true, false)
	s := NewService("g", list, nil)

	assert.False(t, s.MoveTo(list, 1), "moves onto disabled options are rejected")
	assert.False(t, s.MoveTo(list, 5))
	assert.Equal(t, 0, s.Active())

	require.True(t, s.MoveTo(list, 2))
	assert.Equal(t, 2, s.Active())
}

func TestServiceHomeEnd(t *testing.T) {
	t.Parallel()

	list := opts(true, false, false, true)
	s := NewService("g", list, nil)

	require.True(t, s.End(list))
	assert.Equal(t, 2, s.Active())

	require.True(t, s.Home(list))
	assert.Equal(t, 1, s.Active())
}

func TestServicePublishesFocusMoved(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	events := make(chan eventbus.FocusMovedEvent, 8)
	bus.Subscribe(eventbus.EventFocusMoved, func(e eventbus.DomainEvent) {
		if fm, ok := e.(eventbus.FocusMovedEvent); ok {
			events <- fm
		}
	})

	list := opts(false, false)
	s := NewService("pets", list, bus)

	_, ok := s.Navigate(list, domain.DirectionForward)
	require.True(t, ok)

	select {
	case e := <-events:
		assert.Equal(t, "pets", e.Group)
		assert.Equal(t, 0, e.OldIndex)
		assert.Equal(t, 1, e.NewIndex)
	case <-time.After(time.Second):
		t.Fatal("expected a FocusMovedEvent")
	}
}
