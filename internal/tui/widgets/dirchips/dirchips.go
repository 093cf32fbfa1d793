package dirchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "scroll-overflow/internal/tui/state"
    "scroll-overflow/internal/tui/util"
)

// View renders one chip per direction in a stable order. Directions that can
// scroll are highlighted; the rest are muted. With color disabled the chips
// fall back to bracketed ASCII.
func View(cs state.CanScroll, g util.Glyphs, p util.Palette, noColor bool) string {
    noColor = util.NoColor(noColor)
    parts := make([]string, 0, len(state.Directions))
    for _, d := range state.Directions {
        parts = append(parts, renderChip(d, cs.Get(d), g, p, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(d state.Direction, on bool, g util.Glyphs, p util.Palette, noColor bool) string {
    label := chipLabel(d, g)
    if noColor {
        if on {
            return fmt.Sprintf("[%s]", label)
        }
        return fmt.Sprintf("[%s]", strings.Repeat("-", lipgloss.Width(label)))
    }
    return chipStyle(d, on, p).Render(label)
}

func chipLabel(d state.Direction, g util.Glyphs) string {
    if glyph := g.For(d); glyph != "" {
        return glyph + " " + d.String()
    }
    return d.String()
}

func chipStyle(d state.Direction, on bool, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    if !on {
        return base.Bold(false).Foreground(p.MutedDark)
    }
    return base.Background(p.ForDirection(d)).Foreground(lipgloss.Color("#FFFFFF"))
}
