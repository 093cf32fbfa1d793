package state

// CanScroll holds one flag per direction. The zero value is "nothing to
// scroll toward" on every edge.
type CanScroll struct {
    Up    bool `json:"up" yaml:"up"`
    Left  bool `json:"left" yaml:"left"`
    Right bool `json:"right" yaml:"right"`
    Down  bool `json:"down" yaml:"down"`
}

// Get returns the flag for d. Unknown directions read as false.
func (c CanScroll) Get(d Direction) bool {
    switch d {
    case Up:
        return c.Up
    case Left:
        return c.Left
    case Right:
        return c.Right
    case Down:
        return c.Down
    default:
        return false
    }
}

// With returns a copy of c with the flag for d replaced.
func (c CanScroll) With(d Direction, v bool) CanScroll {
    switch d {
    case Up:
        c.Up = v
    case Left:
        c.Left = v
    case Right:
        c.Right = v
    case Down:
        c.Down = v
    }
    return c
}

// Any is true when at least one direction can scroll.
func (c CanScroll) Any() bool {
    return c.Up || c.Left || c.Right || c.Down
}

// OverflowState is an immutable snapshot. Callers hold it by pointer and
// treat a new pointer as the only change signal; fields are never written
// after construction.
type OverflowState struct {
    CanScroll CanScroll `json:"canScroll" yaml:"canScroll"`
}

// InitialState returns a fresh all-false snapshot.
func InitialState() *OverflowState {
    return &OverflowState{}
}

// ActionKind enumerates store actions.
type ActionKind int

const (
    _ ActionKind = iota
    CHANGE
)

// Action asks the store to set one direction's flag.
type Action struct {
    Kind      ActionKind
    Direction Direction
    CanScroll bool
}

// Change builds a CHANGE action.
func Change(d Direction, canScroll bool) Action {
    return Action{Kind: CHANGE, Direction: d, CanScroll: canScroll}
}
