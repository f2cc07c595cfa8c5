package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiorove/internal/domain"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResolveVerticalAxis(t *testing.T) {
	t.Parallel()

	// Down is always forward and up always backward, in every combination
	// of orientation and text direction
	for _, o := range []domain.Orientation{domain.OrientationVertical, domain.OrientationHorizontal} {
		for _, d := range []domain.TextDirection{domain.TextDirectionLTR, domain.TextDirectionRTL} {
			dir, ok := Resolve(keyMsg(tea.KeyDown), o, d)
			require.True(t, ok)
			assert.Equal(t, domain.DirectionForward, dir, "down must be forward for %s/%s", o, d)

			dir, ok = Resolve(keyMsg(tea.KeyUp), o, d)
			require.True(t, ok)
			assert.Equal(t, domain.DirectionBackward, dir, "up must be backward for %s/%s", o, d)
		}
	}
}

func TestResolveHorizontalLTR(t *testing.T) {
	t.Parallel()

	dir, ok := Resolve(keyMsg(tea.KeyRight), domain.OrientationHorizontal, domain.TextDirectionLTR)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionForward, dir)

	dir, ok = Resolve(keyMsg(tea.KeyLeft), domain.OrientationHorizontal, domain.TextDirectionLTR)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionBackward, dir)
}

func TestResolveHorizontalRTL(t *testing.T) {
	t.Parallel()

	// Right flips to backward in RTL locales
	dir, ok := Resolve(keyMsg(tea.KeyRight), domain.OrientationHorizontal, domain.TextDirectionRTL)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionBackward, dir)

	dir, ok = Resolve(keyMsg(tea.KeyLeft), domain.OrientationHorizontal, domain.TextDirectionRTL)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionForward, dir)
}

func TestResolveLeftRightIgnoredInVertical(t *testing.T) {
	t.Parallel()

	_, ok := Resolve(keyMsg(tea.KeyRight), domain.OrientationVertical, domain.TextDirectionLTR)
	assert.False(t, ok)

	_, ok = Resolve(keyMsg(tea.KeyLeft), domain.OrientationVertical, domain.TextDirectionRTL)
	assert.False(t, ok)
}

func TestResolveVimKeys(t *testing.T) {
	t.Parallel()

	dir, ok := Resolve(runeMsg('j'), domain.OrientationVertical, domain.TextDirectionLTR)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionForward, dir)

	dir, ok = Resolve(runeMsg('k'), domain.OrientationVertical, domain.TextDirectionLTR)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionBackward, dir)

	dir, ok = Resolve(runeMsg('l'), domain.OrientationHorizontal, domain.TextDirectionRTL)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionBackward, dir, "l follows right-arrow, flipped in RTL")
}

func TestResolveUnknownKey(t *testing.T) {
	t.Parallel()

	_, ok := Resolve(runeMsg('x'), domain.OrientationVertical, domain.TextDirectionLTR)
	assert.False(t, ok)
}

func TestResolveJump(t *testing.T) {
	t.Parallel()

	jump, ok := ResolveJump(keyMsg(tea.KeyHome))
	require.True(t, ok)
	assert.Equal(t, JumpFirst, jump)

	jump, ok = ResolveJump(keyMsg(tea.KeyEnd))
	require.True(t, ok)
	assert.Equal(t, JumpLast, jump)

	jump, ok = ResolveJump(runeMsg('G'))
	require.True(t, ok)
	assert.Equal(t, JumpLast, jump)

	_, ok = ResolveJump(runeMsg('x'))
	assert.False(t, ok)
}
