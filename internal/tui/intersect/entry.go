package intersect

import "scroll-overflow/internal/tui/geom"

// Element is anything with a box in the shared cell space.
type Element interface {
	Rect() geom.Rect
}

// Entry describes one target at the moment it was measured.
type Entry struct {
	Target             Element
	Frame              uint64
	BoundingClientRect geom.Rect
	RootBounds         geom.Rect
	IntersectionRect   geom.Rect
	IntersectionRatio  float64
	IsIntersecting     bool
}

// Measure computes an entry for target against root grown by margin.
// Edge-adjacent boxes count as intersecting with zero area. A target with no
// area that touches the root has ratio 1.
func Measure(root, target geom.Rect, margin geom.Margin) Entry {
	bounds := margin.Apply(root)
	isect, ok := target.Intersect(bounds)
	e := Entry{
		BoundingClientRect: target,
		RootBounds:         bounds,
		IsIntersecting:     ok,
	}
	if !ok {
		return e
	}
	e.IntersectionRect = isect
	if area := target.Area(); area > 0 {
		e.IntersectionRatio = isect.Area() / area
	} else {
		e.IntersectionRatio = 1
	}
	return e
}

// thresholdIndex buckets ratio against sorted thresholds: the index of the
// first threshold above ratio, or len(thresholds). Targets that do not
// intersect are always in bucket 0.
func thresholdIndex(ratio float64, intersecting bool, thresholds []float64) int {
	if !intersecting {
		return 0
	}
	for i, t := range thresholds {
		if t > ratio {
			return i
		}
	}
	return len(thresholds)
}
