package overflow

import "scroll-overflow/internal/tui/state"

// Evaluate derives one active flag from cs: the flag for d when scoped,
// otherwise whether any direction can scroll.
func Evaluate(cs state.CanScroll, d state.Direction, scoped bool) bool {
	if scoped {
		return cs.Get(d)
	}
	return cs.Any()
}

// Reading is what a dynamic indicator receives. When Scoped, Direction and
// Active describe the one watched edge; otherwise CanScroll holds all four.
type Reading struct {
	Scoped    bool
	Direction state.Direction
	Active    bool
	CanScroll state.CanScroll
}

// RenderFunc renders a dynamic indicator. vp is nil outside a mounted
// provider.
type RenderFunc func(r Reading, vp *Viewport) string

type payloadKind int

const (
	staticPayload payloadKind = iota + 1
	dynamicPayload
)

// Payload is what an indicator shows: fixed text or a render function.
type Payload struct {
	kind   payloadKind
	text   string
	render RenderFunc
}

// Static shows text while the indicator is active and nothing otherwise.
func Static(text string) Payload {
	return Payload{kind: staticPayload, text: text}
}

// Dynamic always calls fn and shows whatever it returns.
func Dynamic(fn RenderFunc) Payload {
	return Payload{kind: dynamicPayload, render: fn}
}

// Indicator reads a provider's context and renders a payload for one
// direction or for any direction.
type Indicator struct {
	src      ContextSource
	fallback *Context
	dir      state.Direction
	scoped   bool
	payload  Payload

	seen *Context
	out  string
}

// NewIndicator creates an indicator for any direction. A nil src, or a
// source without a context, reads an inert default and is never active.
func NewIndicator(src ContextSource, p Payload) *Indicator {
	return &Indicator{src: src, fallback: DefaultContext(), payload: p}
}

// ForDirection restricts the indicator to d.
func (i *Indicator) ForDirection(d state.Direction) *Indicator {
	i.dir = d
	i.scoped = true
	i.seen = nil
	return i
}

// Direction returns the watched direction and whether one was set.
func (i *Indicator) Direction() (state.Direction, bool) {
	return i.dir, i.scoped
}

func (i *Indicator) context() *Context {
	if i.src != nil {
		if c := i.src.Context(); c != nil {
			return c
		}
	}
	return i.fallback
}

// Active evaluates the indicator against the current context.
func (i *Indicator) Active() bool {
	return Evaluate(i.context().State.CanScroll, i.dir, i.scoped)
}

// Reading returns what a dynamic payload would receive right now.
func (i *Indicator) Reading() Reading {
	return i.readingFrom(i.context())
}

func (i *Indicator) readingFrom(ctx *Context) Reading {
	cs := ctx.State.CanScroll
	if i.scoped {
		return Reading{Scoped: true, Direction: i.dir, Active: cs.Get(i.dir)}
	}
	return Reading{Active: cs.Any(), CanScroll: cs}
}

// View renders the payload. The result is reused until the provider
// publishes a new context.
func (i *Indicator) View() string {
	ctx := i.context()
	if ctx == i.seen {
		return i.out
	}
	i.seen = ctx
	i.out = i.render(ctx)
	return i.out
}

// Invalidate forces the next View to render again, for render functions that
// also depend on something outside the context.
func (i *Indicator) Invalidate() { i.seen = nil }

func (i *Indicator) render(ctx *Context) string {
	switch i.payload.kind {
	case staticPayload:
		if Evaluate(ctx.State.CanScroll, i.dir, i.scoped) {
			return i.payload.text
		}
		return ""
	case dynamicPayload:
		if i.payload.render == nil {
			return ""
		}
		var vp *Viewport
		if ctx.Refs != nil {
			vp = ctx.Refs.Viewport.Current()
		}
		return i.payload.render(i.readingFrom(ctx), vp)
	default:
		return ""
	}
}
