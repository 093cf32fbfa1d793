package helpoverlay

import (
    "fmt"
    "strings"

    "scroll-overflow/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current tolerance indicated.
func (HelpOverlay) View(s state.UIState) string {
    tol := "off"
    if s.Tolerance != "" {
        tol = s.Tolerance
    }
    sections := []struct{
        title string
        keys  []string
    }{
        {"Scroll", []string{"↑/↓ or j/k: line", "PgUp/PgDn: page", "←/→ or h/l: columns", "g/G: top/bottom"}},
        {"Tolerance", []string{"+/-: grow/shrink by one cell", "0: toggle off/on"}},
        {"View", []string{"t: transition log", "y: copy state as JSON", "?: this help", "q: quit"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Tolerance: %s)\n", tol)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
