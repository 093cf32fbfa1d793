package geom

import (
	"fmt"
	"strings"
)

// Margin is a root margin, one signed length per side. Positive values grow
// the box outward, negative values pull that side inward. Percentages on
// top/bottom resolve against the box height, left/right against its width.
type Margin struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// Resolve turns m into cell Insets for r.
func (m Margin) Resolve(r Rect) Insets {
	w := r.Right() - r.Left()
	h := r.Bottom() - r.Top()
	return Insets{
		Top:    m.Top.Resolve(h),
		Right:  m.Right.Resolve(w),
		Bottom: m.Bottom.Resolve(h),
		Left:   m.Left.Resolve(w),
	}
}

// Apply grows r by m. The result may be empty; it is never inverted.
func (m Margin) Apply(r Rect) Rect {
	out := r.Outset(m.Resolve(r))
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}

// ParseMargin reads the CSS shorthand with one to four space separated
// lengths ("0", "0 -100%", "10 0 -100% 0"). Unlike ParseLength, sides may be
// negative.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: margin %q needs 1 to 4 values", ErrInvalidLength, s)
	}
	vals := make([]Length, len(fields))
	for i, f := range fields {
		neg := strings.HasPrefix(f, "-")
		l, err := ParseLength(strings.TrimPrefix(f, "-"))
		if err != nil {
			return Margin{}, fmt.Errorf("margin %q: %w", s, err)
		}
		if neg {
			l.Value = -l.Value
		}
		vals[i] = l
	}
	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}
