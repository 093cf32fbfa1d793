package tui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/overflow"
	"scroll-overflow/internal/tui/state"
)

// ErrProbeSize is returned for a probe viewport without area.
var ErrProbeSize = errors.New("probe viewport needs a positive width and height")

// ProbeOptions place a headless viewport over a body.
type ProbeOptions struct {
	Width, Height int
	X, Y          int
	// At is "top", "bottom" or empty; when set it replaces Y.
	At        string
	Tolerance geom.Length
	Logger    *zap.Logger
}

// ProbeResult is what Probe measured once every report settled.
type ProbeResult struct {
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	X             int             `json:"x"`
	Y             int             `json:"y"`
	ContentWidth  int             `json:"contentWidth"`
	ContentHeight int             `json:"contentHeight"`
	Tolerance     string          `json:"tolerance,omitempty"`
	CanScroll     state.CanScroll `json:"canScroll"`
}

// Probe mounts a provider without a terminal, scrolls it and reports the
// settled overflow state.
func Probe(body string, opts ProbeOptions) (ProbeResult, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ProbeResult{}, fmt.Errorf("%w: %dx%d", ErrProbeSize, opts.Width, opts.Height)
	}
	p := overflow.NewProvider(overflow.Config{
		Width:     opts.Width,
		Height:    opts.Height,
		Tolerance: opts.Tolerance,
		Logger:    opts.Logger,
	})
	defer p.Close()
	p.Wrap(overflow.NewContent(body))
	overflow.Settle(p, p.Init())

	vp := p.Viewport()
	switch opts.At {
	case "":
		vp.ScrollTo(opts.X, opts.Y)
	case "top":
		vp.ScrollTo(opts.X, 0)
		vp.GotoTop()
	case "bottom":
		vp.ScrollTo(opts.X, 0)
		vp.GotoBottom()
	default:
		return ProbeResult{}, fmt.Errorf("probe: unknown position %q (want top or bottom)", opts.At)
	}
	overflow.Settle(p, p.Refresh())

	x, y := vp.Offset()
	cw, ch := vp.ContentSize()
	res := ProbeResult{
		Width:         opts.Width,
		Height:        opts.Height,
		X:             x,
		Y:             y,
		ContentWidth:  cw,
		ContentHeight: ch,
		CanScroll:     p.State().CanScroll,
	}
	if !opts.Tolerance.IsZero() {
		res.Tolerance = opts.Tolerance.String()
	}
	return res, nil
}

// String is the plain-text form printed by the probe command.
func (r ProbeResult) String() string {
	cs := r.CanScroll
	return fmt.Sprintf("up=%t left=%t right=%t down=%t", cs.Up, cs.Left, cs.Right, cs.Down)
}
