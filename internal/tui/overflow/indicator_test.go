package overflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroll-overflow/internal/tui/state"
)

func TestEvaluate(t *testing.T) {
	cs := state.CanScroll{Down: true}
	assert.True(t, Evaluate(cs, state.Down, true))
	assert.False(t, Evaluate(cs, state.Up, true))
	assert.True(t, Evaluate(cs, state.Up, false), "unscoped is any direction")
	assert.False(t, Evaluate(state.CanScroll{}, state.Down, false))
}

func TestIndicatorOutsideProvider(t *testing.T) {
	var typedNil *Provider
	for name, src := range map[string]ContextSource{"nil": nil, "typed nil": typedNil} {
		t.Run(name, func(t *testing.T) {
			ind := NewIndicator(src, Static("more"))
			assert.False(t, ind.Active())
			assert.Empty(t, ind.View())
			for _, d := range state.Directions {
				assert.False(t, NewIndicator(src, Static("x")).ForDirection(d).Active())
			}

			var got *Viewport
			called := false
			dyn := NewIndicator(src, Dynamic(func(r Reading, vp *Viewport) string {
				called = true
				got = vp
				return "dyn"
			})).ForDirection(state.Down)
			assert.Equal(t, "dyn", dyn.View())
			assert.True(t, called)
			assert.Nil(t, got)
		})
	}
}

func TestDefaultContextIsFresh(t *testing.T) {
	a, b := DefaultContext(), DefaultContext()
	assert.NotSame(t, a, b)
	assert.Nil(t, a.Dispatch)
	assert.True(t, a.Tolerance.IsZero())
	assert.Nil(t, a.Refs.Viewport.Current())
	assert.False(t, a.State.CanScroll.Any())
}

func TestStaticIndicator(t *testing.T) {
	p, _ := mount(t, Config{Width: 20, Height: 10}, block(20, 20))
	down := NewIndicator(p, Static("▼")).ForDirection(state.Down)
	up := NewIndicator(p, Static("▲")).ForDirection(state.Up)
	anyDir := NewIndicator(p, Static("…"))

	d, scoped := down.Direction()
	assert.Equal(t, state.Down, d)
	assert.True(t, scoped)
	_, scoped = anyDir.Direction()
	assert.False(t, scoped)

	assert.Equal(t, "▼", down.View())
	assert.Empty(t, up.View())
	assert.Equal(t, "…", anyDir.View())

	p.Viewport().GotoBottom()
	settle(t, p, p.Refresh())
	assert.Empty(t, down.View())
	assert.Equal(t, "▲", up.View())
	assert.Equal(t, "…", anyDir.View())
}

func TestDynamicIndicatorReading(t *testing.T) {
	p, _ := mount(t, Config{Width: 20, Height: 10}, block(20, 40))

	var scoped, unscoped []Reading
	var vps []*Viewport
	right := NewIndicator(p, Dynamic(func(r Reading, vp *Viewport) string {
		scoped = append(scoped, r)
		vps = append(vps, vp)
		return "r"
	})).ForDirection(state.Right)
	all := NewIndicator(p, Dynamic(func(r Reading, _ *Viewport) string {
		unscoped = append(unscoped, r)
		return "a"
	}))

	assert.Equal(t, "r", right.View())
	assert.Equal(t, "a", all.View())
	require.Len(t, scoped, 1)
	assert.Equal(t, Reading{Scoped: true, Direction: state.Right, Active: true}, scoped[0])
	assert.Same(t, p.Viewport(), vps[0])
	require.Len(t, unscoped, 1)
	assert.Equal(t, Reading{Active: true, CanScroll: state.CanScroll{Down: true, Right: true}}, unscoped[0])
	assert.Equal(t, unscoped[0], all.Reading())
}

func TestDynamicIndicatorRunsWhileInactive(t *testing.T) {
	p, _ := mount(t, Config{Width: 20, Height: 10}, block(5, 20))
	var got []Reading
	ind := NewIndicator(p, Dynamic(func(r Reading, _ *Viewport) string {
		got = append(got, r)
		return "idle"
	})).ForDirection(state.Up)
	assert.Equal(t, "idle", ind.View())
	require.Len(t, got, 1)
	assert.False(t, got[0].Active)
}

func TestIndicatorReusesOutputUntilContextChanges(t *testing.T) {
	p, _ := mount(t, Config{Width: 20, Height: 10}, block(20, 20))
	calls := 0
	ind := NewIndicator(p, Dynamic(func(r Reading, _ *Viewport) string {
		calls++
		if r.Active {
			return "on"
		}
		return "off"
	})).ForDirection(state.Up)

	assert.Equal(t, "off", ind.View())
	settle(t, p, p.Refresh())
	assert.Equal(t, "off", ind.View())
	assert.Equal(t, 1, calls)

	p.Viewport().GotoBottom()
	settle(t, p, p.Refresh())
	assert.Equal(t, "on", ind.View())
	assert.Equal(t, 2, calls)

	ind.Invalidate()
	ind.View()
	assert.Equal(t, 3, calls)
}

func TestNilDynamicRenderer(t *testing.T) {
	assert.Empty(t, NewIndicator(nil, Dynamic(nil)).View())
	assert.Empty(t, NewIndicator(nil, Payload{}).View())
}
