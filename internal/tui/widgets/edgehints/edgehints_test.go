package edgehints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroll-overflow/internal/tui/overflow"
	"scroll-overflow/internal/tui/util"
)

func lines(n, w int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat("x", w)
	}
	return strings.Join(out, "\n")
}

func mount(t *testing.T, w, h int, body string) *overflow.Provider {
	t.Helper()
	p := overflow.NewProvider(overflow.Config{Width: w, Height: h})
	p.Wrap(overflow.NewContent(body))
	require.Empty(t, overflow.Settle(p, p.Init()))
	return p
}

func TestHintsAtTop(t *testing.T) {
	p := mount(t, 10, 5, lines(12, 20))
	e := New(p, util.ASCIIGlyphs(), util.DefaultPalette(), true)

	out := strings.Split(e.View(p.View()), "\n")
	require.Len(t, out, 7)
	assert.Equal(t, strings.Repeat(" ", 12), out[0])
	assert.Contains(t, out[6], "v 7 more")
	assert.Equal(t, byte(' '), out[3][0], "no left hint")
	assert.Equal(t, byte('>'), out[3][11], "right hint centered in its column")
	assert.Equal(t, "+more", e.Badge())
}

func TestHintsFollowScrolling(t *testing.T) {
	p := mount(t, 10, 5, lines(12, 10))
	e := New(p, util.ASCIIGlyphs(), util.DefaultPalette(), true)

	p.Viewport().ScrollTo(0, 3)
	require.Empty(t, overflow.Settle(p, p.Refresh()))
	out := strings.Split(e.View(p.View()), "\n")
	assert.Contains(t, out[0], "^ 3 more")
	assert.Contains(t, out[6], "v 4 more")

	// Same context, new offset: the counts still move.
	p.Viewport().ScrollTo(0, 4)
	require.Empty(t, overflow.Settle(p, p.Refresh()))
	out = strings.Split(e.View(p.View()), "\n")
	assert.Contains(t, out[0], "^ 4 more")
	assert.Contains(t, out[6], "v 3 more")
}

func TestHintsWithoutProvider(t *testing.T) {
	e := New(nil, util.DefaultGlyphs(), util.DefaultPalette(), true)
	out := e.View("abc\ndef")
	assert.Equal(t, "     \n abc \n def \n     ", out)
	assert.Empty(t, e.Badge())
}
