package overflow

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/intersect"
	"scroll-overflow/internal/tui/state"
)

var errRefused = errors.New("refused")

type failingFactory struct {
	host  *intersect.Host
	left  int
	calls int
}

func (f *failingFactory) NewObserver(cb intersect.Callback, opts intersect.Options) (*intersect.Observer, error) {
	f.calls++
	if f.left == 0 {
		return nil, errRefused
	}
	f.left--
	return f.host.NewObserver(cb, opts)
}

func TestPartialInstallReleasesEverything(t *testing.T) {
	host := intersect.NewHost()
	vp := newViewport(10, 5)
	c := NewContent(block(10, 10))
	vp.bind(c)

	var got []state.Action
	f := &failingFactory{host: host, left: 2}
	w, err := installEdgeWatchers(f, vp, c, func(a state.Action) { got = append(got, a) })
	require.ErrorIs(t, err, errRefused)
	assert.Nil(t, w)
	assert.Equal(t, 3, f.calls)
	assert.Zero(t, host.Len())

	cmd := host.Frame()
	assert.Nil(t, cmd)
	assert.Empty(t, got)
}

func TestReleasedWatchersIgnoreQueuedReports(t *testing.T) {
	host := intersect.NewHost()
	vp := newViewport(10, 5)
	c := NewContent(block(10, 10))
	vp.bind(c)

	var got []state.Action
	w, err := installEdgeWatchers(host, vp, c, func(a state.Action) { got = append(got, a) })
	require.NoError(t, err)
	assert.Equal(t, 4, host.Len())
	assert.Len(t, w.observers, 4)

	cmd := host.Frame()
	require.NotNil(t, cmd)
	w.Close()
	w.Close()
	assert.Zero(t, host.Len())

	assert.Positive(t, drain(t, host, cmd))
	assert.Empty(t, got)
}

func TestWatchersReportOnceOnRegistration(t *testing.T) {
	host := intersect.NewHost()
	vp := newViewport(10, 5)
	c := NewContent(block(10, 10))
	vp.bind(c)

	got := map[state.Direction][]bool{}
	w, err := installEdgeWatchers(host, vp, c, func(a state.Action) {
		got[a.Direction] = append(got[a.Direction], a.CanScroll)
	})
	require.NoError(t, err)
	defer w.Close()

	drain(t, host, host.Frame())
	assert.Equal(t, map[state.Direction][]bool{
		state.Up:    {false},
		state.Left:  {false},
		state.Right: {false},
		state.Down:  {true},
	}, got)

	drain(t, host, host.Frame())
	assert.Len(t, got[state.Down], 1, "no crossing, no report")
}

func TestEdgeMarginBands(t *testing.T) {
	root := geom.NewRect(0, 0, 20, 10)
	cases := map[state.Direction]geom.Rect{
		state.Up:    geom.NewRect(0, -10, 20, 10),
		state.Down:  geom.NewRect(0, 10, 20, 10),
		state.Left:  geom.NewRect(-20, 0, 20, 10),
		state.Right: geom.NewRect(20, 0, 20, 10),
	}
	for d, want := range cases {
		assert.Equal(t, want, edgeMargin(d).Apply(root), d.String())
	}
}

func TestCanScrollFromNeedsAgreement(t *testing.T) {
	box := geom.NewRect(0, 0, 4, 4)
	cases := []struct {
		name  string
		entry intersect.Entry
		want  bool
	}{
		{"all agree", intersect.Entry{BoundingClientRect: box, IntersectionRatio: 0.5, IsIntersecting: true}, true},
		{"ratio without flag", intersect.Entry{BoundingClientRect: box, IntersectionRatio: 0.5}, false},
		{"flag without ratio", intersect.Entry{BoundingClientRect: box, IsIntersecting: true}, false},
		{"zero size", intersect.Entry{IntersectionRatio: 1, IsIntersecting: true}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, canScrollFrom(tc.entry), tc.name)
	}
}

// Growing the tolerance shrinks the watched box inside the previous one, so
// a direction never turns on because the tolerance went up.
func TestToleranceIsMonotone(t *testing.T) {
	vp := newViewport(12, 6)
	c := NewContent(block(20, 30))
	vp.bind(c)

	for y := 0; y <= 14; y += 2 {
		for x := 0; x <= 18; x += 3 {
			vp.ScrollTo(x, y)
			prev := map[state.Direction]bool{}
			for tol := 0; tol <= 12; tol++ {
				var target intersect.Element = c
				if tol > 0 {
					target = &toleranceProxy{content: c, inset: geom.CellsOf(float64(tol))}
				}
				for _, d := range state.Directions {
					now := canScrollFrom(intersect.Measure(vp.Rect(), target.Rect(), edgeMargin(d)))
					if tol > 0 && now && !prev[d] {
						t.Fatalf("%s turned on at offset (%d,%d) tolerance %d", d, x, y, tol)
					}
					prev[d] = now
				}
			}
		}
	}
}

func TestPercentToleranceResolvesPerAxis(t *testing.T) {
	vp := newViewport(10, 10)
	c := NewContent(block(40, 20))
	vp.bind(c)
	proxy := &toleranceProxy{content: c, inset: geom.PercentOf(10)}
	assert.Equal(t, geom.NewRect(2, 4, 16, 32), proxy.Rect())
}

// drain delivers everything cmd produces straight through host.
func drain(t *testing.T, host *intersect.Host, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		return 0
	}
	n := 0
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			n += drain(t, host, c)
		}
	default:
		if host.Deliver(msg) {
			n++
		}
	}
	return n
}
