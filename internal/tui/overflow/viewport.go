package overflow

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"scroll-overflow/internal/tui/geom"
)

const defaultHorizontalStep = 4

// Viewport is the scrollable element. It is the root box every edge watcher
// measures against and the handle callers use to scroll; the watchers never
// scroll it themselves.
//
// Scrolling in both axes, keys and mouse wheel included, is done by the
// wrapped bubbles viewport.
type Viewport struct {
	model   viewport.Model
	content *Content
	step    int

	// widest line last handed to the model
	loaded int
}

func newViewport(width, height int) *Viewport {
	return &Viewport{
		model: viewport.New(width, height),
		step:  defaultHorizontalStep,
	}
}

// Rect is the viewport's own box: the origin of the shared cell space.
func (v *Viewport) Rect() geom.Rect {
	w, h := v.Size()
	return geom.NewRect(0, 0, float64(w), float64(h))
}

// Size returns the visible extent in cells.
func (v *Viewport) Size() (width, height int) {
	return v.model.Width, v.model.Height
}

// Offset returns the current scroll position.
func (v *Viewport) Offset() (x, y int) {
	return v.xOffset(), v.model.YOffset
}

// ContentSize returns the extent of the wrapped content, or zero when no
// content is wrapped.
func (v *Viewport) ContentSize() (width, height int) {
	if v.content == nil {
		return 0, 0
	}
	return v.content.extent(v.model.Width)
}

// ScrollTo moves to (x, y), clamped to the scrollable range.
func (v *Viewport) ScrollTo(x, y int) {
	v.setXOffset(x)
	v.model.SetYOffset(y)
}

// ScrollBy moves by (dx, dy), clamped to the scrollable range.
func (v *Viewport) ScrollBy(dx, dy int) {
	x, y := v.Offset()
	v.ScrollTo(x+dx, y+dy)
}

// GotoTop scrolls to the first line.
func (v *Viewport) GotoTop() {
	v.model.GotoTop()
}

// GotoBottom scrolls so the last line is visible.
func (v *Viewport) GotoBottom() {
	v.model.GotoBottom()
}

// SetHorizontalStep sets how many columns one left/right key press or
// horizontal wheel tick moves.
func (v *Viewport) SetHorizontalStep(n int) {
	if n > 0 {
		v.step = n
		v.syncHorizontal(v.xOffset())
	}
}

// View renders the visible window of the content.
func (v *Viewport) View() string {
	return v.model.View()
}

func (v *Viewport) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.model, cmd = v.model.Update(msg)
	return cmd
}

func (v *Viewport) setSize(width, height int) {
	x := v.xOffset()
	v.model.Width = max(0, width)
	v.model.Height = max(0, height)
	v.syncHorizontal(x)
}

func (v *Viewport) bind(c *Content) {
	if v.content != nil && v.content != c {
		v.content.vp = nil
	}
	v.content = c
	if c != nil {
		c.vp = v
	}
	v.model.SetXOffset(0)
	v.model.SetYOffset(0)
	v.reload()
}

func (v *Viewport) maxXOffset() int {
	w, _ := v.ContentSize()
	return max(0, w-v.model.Width)
}

// xOffset reads the horizontal position back from the bubbles model, which
// only exposes it as a fraction of the scrollable width.
func (v *Viewport) xOffset() int {
	span := max(0, v.loaded-v.model.Width)
	if span == 0 {
		return 0
	}
	return int(math.Round(v.model.HorizontalScrollPercent() * float64(span)))
}

func (v *Viewport) setXOffset(x int) {
	v.model.SetXOffset(min(max(x, 0), v.maxXOffset()))
}

// syncHorizontal re-clamps x after the content or the width changed. Content
// that fits gets a zero step: the bubbles model would otherwise scroll it to
// a negative offset.
func (v *Viewport) syncHorizontal(x int) {
	if v.maxXOffset() == 0 {
		v.model.SetHorizontalStep(0)
		v.model.SetXOffset(0)
		return
	}
	v.model.SetHorizontalStep(v.step)
	v.setXOffset(x)
}

// reload hands the content lines to the bubbles model, keeping both scroll
// positions where they still fit.
func (v *Viewport) reload() {
	x := v.xOffset()
	if v.content == nil || len(v.content.lines) == 0 {
		v.model.SetContent("")
		v.model.SetYOffset(0)
		v.loaded = 0
	} else {
		y := v.model.YOffset
		v.model.SetContent(strings.Join(v.content.lines, "\n"))
		v.model.SetYOffset(y)
		v.loaded = v.content.width
	}
	v.syncHorizontal(x)
}

// ViewportRef is the long-lived handle to a provider's viewport. It is
// created with the provider and bound by it at mount; consumers only read it.
type ViewportRef struct {
	current *Viewport
}

// Current returns the bound viewport, or nil before mount and outside any
// provider.
func (r *ViewportRef) Current() *Viewport {
	if r == nil {
		return nil
	}
	return r.current
}

func (r *ViewportRef) bind(v *Viewport) {
	r.current = v
}
