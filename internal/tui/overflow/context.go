package overflow

import (
	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/state"
)

// Refs holds the handles a provider shares with its consumers.
type Refs struct {
	Viewport *ViewportRef
}

// Context is the value a provider publishes. A provider hands out the same
// pointer until state, tolerance or refs change, so consumers can compare
// pointers to decide whether to re-evaluate.
type Context struct {
	State     *state.OverflowState
	Dispatch  func(state.Action)
	Tolerance geom.Length
	Refs      *Refs
}

// DefaultContext builds the inert context used outside any provider: no
// dispatch, every direction false, no tolerance, an unbound viewport ref.
// Each call returns a new value.
func DefaultContext() *Context {
	return &Context{
		State: state.InitialState(),
		Refs:  &Refs{Viewport: &ViewportRef{}},
	}
}

// ContextSource is implemented by Provider. Consumers take one instead of a
// Context so they always read the latest published value.
type ContextSource interface {
	Context() *Context
}
