package intersect

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"scroll-overflow/internal/tui/geom"
)

var (
	// ErrNoRoot is returned when Options.Root is nil.
	ErrNoRoot = errors.New("intersect: observer needs a root")
	// ErrInvalidThreshold is returned for thresholds outside [0, 1].
	ErrInvalidThreshold = errors.New("intersect: threshold out of range")
)

// Callback receives the entries of one report.
type Callback func(entries []Entry, o *Observer)

// Options configure an Observer.
type Options struct {
	Root       Element
	RootMargin geom.Margin
	// Thresholds default to {0}.
	Thresholds []float64
}

type registration struct {
	target           Element
	prevIndex        int
	prevIntersecting bool
}

// Observer watches targets against one root.
type Observer struct {
	id           string
	host         *Host
	cb           Callback
	root         Element
	margin       geom.Margin
	thresholds   []float64
	targets      []*registration
	disconnected bool
}

// ID identifies the observer in reports and logs.
func (o *Observer) ID() string { return o.id }

// Thresholds returns the normalized thresholds.
func (o *Observer) Thresholds() []float64 {
	return slices.Clone(o.thresholds)
}

// RootMargin returns the margin applied to the root box.
func (o *Observer) RootMargin() geom.Margin { return o.margin }

// Observe starts watching el. The next frame always reports it once, so the
// callback learns the current state without waiting for a transition.
// Observing the same element twice is a no-op.
func (o *Observer) Observe(el Element) {
	if o.disconnected || el == nil {
		return
	}
	for _, r := range o.targets {
		if r.target == el {
			return
		}
	}
	o.targets = append(o.targets, &registration{target: el, prevIndex: -1})
}

// Unobserve stops watching el.
func (o *Observer) Unobserve(el Element) {
	o.targets = slices.DeleteFunc(o.targets, func(r *registration) bool {
		return r.target == el
	})
}

// Disconnect stops watching every target and detaches from the host. It is
// safe to call more than once. Reports already queued are still delivered.
func (o *Observer) Disconnect() {
	if o.disconnected {
		return
	}
	o.disconnected = true
	o.targets = nil
	o.host.remove(o)
}

// Disconnected reports whether Disconnect has run.
func (o *Observer) Disconnected() bool { return o.disconnected }

// measure returns entries for targets whose bucket changed.
func (o *Observer) measure(frame uint64, ignoreZero bool) []Entry {
	if o.disconnected || len(o.targets) == 0 {
		return nil
	}
	thresholds := o.thresholds
	if ignoreZero {
		thresholds = slices.DeleteFunc(slices.Clone(thresholds), func(t float64) bool { return t == 0 })
	}
	root := o.root.Rect()
	var out []Entry
	for _, r := range o.targets {
		e := Measure(root, r.target.Rect(), o.margin)
		e.Target = r.target
		e.Frame = frame
		idx := thresholdIndex(e.IntersectionRatio, e.IsIntersecting, thresholds)
		changed := idx != r.prevIndex
		if !ignoreZero {
			changed = changed || e.IsIntersecting != r.prevIntersecting
		}
		if r.prevIndex == -1 || changed {
			out = append(out, e)
		}
		r.prevIndex = idx
		r.prevIntersecting = e.IsIntersecting
	}
	return out
}

func normalizeThresholds(in []float64) ([]float64, error) {
	if len(in) == 0 {
		return []float64{0}, nil
	}
	out := slices.Clone(in)
	for _, t := range out {
		if t < 0 || t > 1 {
			return nil, fmt.Errorf("%w: %g", ErrInvalidThreshold, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func newObserver(h *Host, cb Callback, opts Options) (*Observer, error) {
	if opts.Root == nil {
		return nil, ErrNoRoot
	}
	thresholds, err := normalizeThresholds(opts.Thresholds)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		cb = func([]Entry, *Observer) {}
	}
	return &Observer{
		id:         uuid.NewString(),
		host:       h,
		cb:         cb,
		root:       opts.Root,
		margin:     opts.RootMargin,
		thresholds: thresholds,
	}, nil
}
