// Package geom holds the cell-space geometry shared by the visibility
// watchers: rectangles, CSS-style lengths and root margins.
package geom

import "fmt"

// Rect is an axis-aligned box in terminal cells. Coordinates are float64 so
// percentage margins and lengths resolve without rounding.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a Rect with the given origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Area is zero for empty or inverted boxes.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return (r.Right() - r.Left()) * (r.Bottom() - r.Top())
}

// Empty reports whether r encloses no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and o and whether the two touch at all.
// Edge-adjacent boxes touch: the result has zero area but ok is true.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Inset shrinks r by in on every side. Over-insetting collapses the box to
// zero size at its center rather than inverting it.
func (r Rect) Inset(in Insets) Rect {
	left := r.Left() + in.Left
	right := r.Right() - in.Right
	top := r.Top() + in.Top
	bottom := r.Bottom() - in.Bottom
	if right < left {
		mid := (left + right) / 2
		left, right = mid, mid
	}
	if bottom < top {
		mid := (top + bottom) / 2
		top, bottom = mid, mid
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Outset grows r by out on every side; negative values shrink it.
func (r Rect) Outset(out Insets) Rect {
	left := r.Left() - out.Left
	right := r.Right() + out.Right
	top := r.Top() - out.Top
	bottom := r.Bottom() + out.Bottom
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Insets carries one distance per side.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

