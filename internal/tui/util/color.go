package util

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "scroll-overflow/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// ForDirection returns the accent used for hints toward d.
func (p Palette) ForDirection(d state.Direction) lipgloss.Color {
    switch d {
    case state.Up:
        return p.Primary
    case state.Down:
        return p.Success
    case state.Left:
        return p.Warning
    case state.Right:
        return p.Danger
    default:
        return p.Muted
    }
}

// Override returns p with the named roles replaced. Keys are the lower-case
// role names ("primary", "muted", ...); values are anything lipgloss accepts.
func (p Palette) Override(colors map[string]string) (Palette, error) {
    for name, v := range colors {
        c := lipgloss.Color(strings.TrimSpace(v))
        if c == "" {
            return p, fmt.Errorf("color %q: empty value", name)
        }
        switch strings.ToLower(name) {
        case "primary":
            p.Primary = c
        case "success":
            p.Success = c
        case "danger":
            p.Danger = c
        case "warning":
            p.Warning = c
        case "muted":
            p.Muted = c
        case "muteddark", "muted_dark":
            p.MutedDark = c
        default:
            return p, fmt.Errorf("unknown color role %q", name)
        }
    }
    return p, nil
}
