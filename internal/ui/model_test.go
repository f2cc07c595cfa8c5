package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiorove/internal/config"
	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(nil, config.DefaultConfig())
}

func press(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func key(typ tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: typ}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArrowNavigationSelects(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	require.NotEmpty(t, m.Groups())

	press(m, key(tea.KeyDown))
	g := m.Groups()[0]
	assert.Equal(t, 1, g.Active())
	assert.Equal(t, "cats", g.Value(), "arrow navigation both moves focus and selects")

	press(m, key(tea.KeyUp))
	assert.Equal(t, "dogs", g.Value())
}

func TestTabCyclesGroups(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	require.GreaterOrEqual(t, len(m.Groups()), 2)

	press(m, key(tea.KeyTab))
	assert.Equal(t, 1, m.FocusedGroup())

	press(m, key(tea.KeyShiftTab))
	assert.Equal(t, 0, m.FocusedGroup())

	press(m, key(tea.KeyShiftTab))
	assert.Equal(t, len(m.Groups())-1, m.FocusedGroup(), "group cycling wraps")
}

func TestHorizontalRTLFlipsArrows(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	g := m.Groups()[0]

	// Switch to horizontal layout, then to RTL
	press(m, runes("o"))
	require.Equal(t, domain.OrientationHorizontal, m.Orientation())

	press(m, key(tea.KeyRight))
	assert.Equal(t, "cats", g.Value(), "right is forward in LTR")

	press(m, runes("d"))
	require.Equal(t, domain.TextDirectionRTL, m.TextDirection())

	press(m, key(tea.KeyRight))
	assert.Equal(t, "dogs", g.Value(), "right is backward in RTL")
}

func TestLeftRightInactiveInVerticalLayout(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	g := m.Groups()[0]
	require.Equal(t, domain.OrientationVertical, m.Orientation())

	press(m, key(tea.KeyRight))
	assert.Equal(t, "", g.Value(), "left/right do not traverse vertical groups")
	assert.Equal(t, 0, g.Active())
}

func TestSpaceSelectsFocusedOption(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	g := m.Groups()[0]

	press(m, key(tea.KeySpace))
	assert.Equal(t, "dogs", g.Value())
}

func TestReadOnlyToggleSuppressesSelection(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	g := m.Groups()[0]

	press(m, runes("r"))
	require.True(t, g.ReadOnly())

	press(m, key(tea.KeyDown))
	assert.Equal(t, 1, g.Active(), "focus still roves in a read-only group")
	assert.Equal(t, "", g.Value())

	press(m, runes("r"))
	press(m, key(tea.KeyDown))
	assert.Equal(t, "dragons", g.Value())
}

func TestNavigationSkipsDisabledConfigOption(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	press(m, key(tea.KeyTab)) // meal group has a disabled lunch option
	g := m.Groups()[1]

	press(m, key(tea.KeyDown))
	assert.Equal(t, 2, g.Active())
	assert.Equal(t, "dinner", g.Value())
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := testModel(t)

	press(m, runes("?"))
	assert.True(t, m.HelpVisible())
	assert.Contains(t, m.View(), "radiorove Help")

	// Any key dismisses the popup without acting on the groups
	press(m, key(tea.KeyDown))
	assert.False(t, m.HelpVisible())
	assert.Equal(t, "", m.Groups()[0].Value())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsMarksAndValue(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(m, key(tea.KeyDown))
	view := m.View()

	assert.Contains(t, view, "◉", "selected option renders the selected mark")
	assert.Contains(t, view, "○")
	assert.True(t, strings.Contains(view, "pets = cats"), "status line reports the group value")
}

func TestEventMsgUpdatesStatus(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	m.Update(EventMsg{Event: eventbus.ValueChangedEvent{Group: "pets", NewValue: "dragons"}})
	assert.Contains(t, m.View(), "pets = dragons")
}

func TestUpdateConfigPersistsUIState(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	m := NewModel(nil, cfg)

	press(m, runes("o"))
	press(m, key(tea.KeyDown))
	m.UpdateConfig()

	assert.Equal(t, domain.OrientationHorizontal, cfg.UISettings.Orientation)
	assert.Equal(t, "cats", cfg.Groups[0].Value)
}
