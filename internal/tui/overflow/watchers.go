package overflow

import (
	"fmt"

	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/intersect"
	"scroll-overflow/internal/tui/state"
)

// edgeEpsilon is registered next to 0 because some hosts do not fire on a
// threshold of exactly 0.
const edgeEpsilon = 1e-9

var edgeThresholds = []float64{0, edgeEpsilon}

type observerFactory interface {
	NewObserver(cb intersect.Callback, opts intersect.Options) (*intersect.Observer, error)
}

// edgeMargins push the edge toward d out by a full viewport extent and pull
// the opposite edge in by the same amount (top right bottom left). The test
// region becomes a viewport-sized band just beyond the d edge; inside the
// viewport it has no thickness at all.
var edgeMargins = map[state.Direction]string{
	state.Up:    "100% 0 -100% 0",
	state.Right: "0 100% 0 -100%",
	state.Down:  "-100% 0 100% 0",
	state.Left:  "0 -100% 0 100%",
}

func edgeMargin(d state.Direction) geom.Margin {
	m, err := geom.ParseMargin(edgeMargins[d])
	if err != nil {
		panic(err)
	}
	return m
}

// canScrollFrom requires size, ratio and flag to agree; hosts have been seen
// reporting a ratio with isIntersecting false and the other way round.
func canScrollFrom(e intersect.Entry) bool {
	return !e.BoundingClientRect.Empty() && e.IntersectionRatio != 0 && e.IsIntersecting
}

// edgeWatchers owns one observer per direction. They are acquired together
// and released together.
type edgeWatchers struct {
	target    intersect.Element
	observers map[state.Direction]*intersect.Observer
	release   func()
}

func installEdgeWatchers(f observerFactory, root, target intersect.Element, dispatch func(state.Action)) (*edgeWatchers, error) {
	// Set before disconnecting; reports already in flight are dropped.
	ignore := false
	w := &edgeWatchers{
		target:    target,
		observers: make(map[state.Direction]*intersect.Observer, len(state.Directions)),
	}
	w.release = func() {
		ignore = true
		for _, o := range w.observers {
			o.Disconnect()
		}
	}
	for _, d := range state.Directions {
		o, err := f.NewObserver(func(entries []intersect.Entry, _ *intersect.Observer) {
			if ignore {
				return
			}
			for _, e := range entries {
				dispatch(state.Change(d, canScrollFrom(e)))
			}
		}, intersect.Options{
			Root:       root,
			RootMargin: edgeMargin(d),
			Thresholds: edgeThresholds,
		})
		if err != nil {
			w.release()
			return nil, fmt.Errorf("watch %s edge: %w", d, err)
		}
		w.observers[d] = o
		o.Observe(target)
	}
	return w, nil
}

func (w *edgeWatchers) Close() {
	if w != nil {
		w.release()
	}
}
