package overflow

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scroll-overflow/internal/tui/geom"
)

// Content marks the box whose overflow is measured. Wrap it in a Provider;
// content that is never wrapped is never watched.
type Content struct {
	body  string
	lines []string
	width int
	vp    *Viewport
}

// NewContent creates a content wrapper around body.
func NewContent(body string) *Content {
	c := &Content{}
	c.setBody(body)
	return c
}

// Body returns the wrapped text.
func (c *Content) Body() string { return c.body }

// SetBody replaces the wrapped text. The change is picked up by the next
// frame of the owning provider (Provider.Refresh or any Update).
func (c *Content) SetBody(body string) {
	c.setBody(body)
	if c.vp != nil {
		c.vp.reload()
	}
}

func (c *Content) setBody(body string) {
	c.body = body
	c.lines = nil
	c.width = 0
	if body == "" {
		return
	}
	c.lines = strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for _, ln := range c.lines {
		c.width = max(c.width, lipgloss.Width(ln))
	}
}

// extent is the laid-out size: content stretches to at least the viewport
// width, like a block inside its container, and is as tall as its lines.
func (c *Content) extent(viewportWidth int) (width, height int) {
	return max(c.width, viewportWidth), len(c.lines)
}

// Rect returns the content box in the viewport's cell space. Scrolling moves
// the box, not the viewport.
func (c *Content) Rect() geom.Rect {
	if c.vp == nil {
		return geom.NewRect(0, 0, float64(c.width), float64(len(c.lines)))
	}
	x, y := c.vp.Offset()
	w, h := c.vp.ContentSize()
	return geom.NewRect(float64(-x), float64(-y), float64(w), float64(h))
}
