package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
    diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint       = lipgloss.NewStyle().Faint(true)
)

type DiffView struct {
    NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: noColor} }

// View renders a two-line diff between consecutive one-line summaries with
// char-level highlights. Without color, deletions are marked [-x-] and
// insertions {+x+}.
func (v DiffView) View(before, after string) string {
    if before == after {
        return "  " + v.paint(faint, after) + "\n"
    }
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    d.DiffCleanupSemantic(diffs)

    var sb strings.Builder
    sb.WriteString(v.paint(diffDelLine, "- "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            sb.WriteString(v.mark(diffDelChar, "[-", df.Text, "-]"))
        case dmp.DiffEqual:
            sb.WriteString(v.paint(diffDelLine, df.Text))
        }
    }
    sb.WriteString("\n")
    sb.WriteString(v.paint(diffAddLine, "+ "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            sb.WriteString(v.mark(diffAddChar, "{+", df.Text, "+}"))
        case dmp.DiffEqual:
            sb.WriteString(v.paint(diffAddLine, df.Text))
        }
    }
    sb.WriteString("\n")
    return sb.String()
}

func (v DiffView) paint(s lipgloss.Style, text string) string {
    if v.NoColor {
        return text
    }
    return s.Render(text)
}

func (v DiffView) mark(s lipgloss.Style, open, text, end string) string {
    if v.NoColor {
        return open + text + end
    }
    return s.Render(text)
}
