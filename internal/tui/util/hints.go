package util

import (
    "fmt"
    "strings"

    "scroll-overflow/internal/tui/state"
)

// Glyphs are the marks drawn for each direction plus the "more" badge.
type Glyphs struct {
    Up    string
    Left  string
    Right string
    Down  string
    More  string
}

// DefaultGlyphs uses box-drawing arrows.
func DefaultGlyphs() Glyphs {
    return Glyphs{Up: "▲", Left: "◀", Right: "▶", Down: "▼", More: "…more"}
}

// ASCIIGlyphs is the fallback for terminals without the arrows.
func ASCIIGlyphs() Glyphs {
    return Glyphs{Up: "^", Left: "<", Right: ">", Down: "v", More: "+more"}
}

// For returns the glyph for d.
func (g Glyphs) For(d state.Direction) string {
    switch d {
    case state.Up:
        return g.Up
    case state.Left:
        return g.Left
    case state.Right:
        return g.Right
    case state.Down:
        return g.Down
    default:
        return ""
    }
}

// Override replaces glyphs by key. Keys are direction names or "more".
func (g Glyphs) Override(m map[string]string) (Glyphs, error) {
    for k, v := range m {
        if strings.ToLower(k) == "more" {
            g.More = v
            continue
        }
        d, ok := state.ParseDirection(strings.ToLower(k))
        if !ok {
            return g, fmt.Errorf("unknown glyph %q", k)
        }
        switch d {
        case state.Up:
            g.Up = v
        case state.Left:
            g.Left = v
        case state.Right:
            g.Right = v
        case state.Down:
            g.Down = v
        }
    }
    return g, nil
}

// ActiveDirections lists the directions that can scroll, in state.Directions
// order.
func ActiveDirections(cs state.CanScroll) []state.Direction {
    out := make([]state.Direction, 0, len(state.Directions))
    for _, d := range state.Directions {
        if cs.Get(d) {
            out = append(out, d)
        }
    }
    return out
}

// Describe summarises cs for status lines, e.g. "up down" or "none".
func Describe(cs state.CanScroll) string {
    dirs := ActiveDirections(cs)
    if len(dirs) == 0 {
        return "none"
    }
    names := make([]string, len(dirs))
    for i, d := range dirs {
        names[i] = d.String()
    }
    return strings.Join(names, " ")
}
