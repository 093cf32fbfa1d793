package state

// Apply is the store's transition function. Only CHANGE is recognized; any
// other kind, an unknown direction, or a CHANGE that leaves the flag as it
// was returns s itself so callers can compare pointers to detect change.
// A nil s is read as the initial state.
func Apply(s *OverflowState, a Action) *OverflowState {
    if s == nil {
        s = InitialState()
    }
    if a.Kind != CHANGE || !a.Direction.Valid() {
        return s
    }
    if s.CanScroll.Get(a.Direction) == a.CanScroll {
        return s
    }
    return &OverflowState{CanScroll: s.CanScroll.With(a.Direction, a.CanScroll)}
}
