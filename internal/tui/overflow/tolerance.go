package overflow

import "scroll-overflow/internal/tui/geom"

// toleranceProxy stands in for the content box when a tolerance is set. It
// renders nothing; its box is the content box inset by the tolerance on every
// side, so content within tolerance of an edge counts as no more content.
type toleranceProxy struct {
	content *Content
	inset   geom.Length
}

func (t *toleranceProxy) Rect() geom.Rect {
	r := t.content.Rect()
	v := t.inset.Resolve(r.Height)
	h := t.inset.Resolve(r.Width)
	return r.Inset(geom.Insets{Top: v, Bottom: v, Left: h, Right: h})
}
