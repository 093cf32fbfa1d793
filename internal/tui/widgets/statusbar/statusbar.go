package statusbar

import (
    "fmt"
    "strings"

    "scroll-overflow/internal/tui/state"
    "scroll-overflow/internal/tui/util"
)

// Position is the scroll offset shown in the status line. It comes from the
// viewport handle, never from the overflow state.
type Position struct {
    X, Y int
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, cs state.CanScroll, pos Position) string {
    scroll := "Scroll: " + util.Describe(cs)
    tol := "Tol: off"
    if s.Tolerance != "" {
        tol = "Tol: " + s.Tolerance
    }
    at := fmt.Sprintf("X:%d Y:%d", pos.X, pos.Y)
    size := fmt.Sprintf("W:%d H:%d", s.Width, s.Height)

    parts := []string{scroll, tol, at, size}
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
