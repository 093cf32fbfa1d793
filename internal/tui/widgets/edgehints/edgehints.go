// Package edgehints frames a provider's view with one gutter on every side
// and draws an arrow in each gutter whose direction can still scroll.
package edgehints

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scroll-overflow/internal/tui/overflow"
	"scroll-overflow/internal/tui/state"
	"scroll-overflow/internal/tui/util"
)

// EdgeHints owns one dynamic indicator per direction and a static badge.
type EdgeHints struct {
	glyphs  util.Glyphs
	palette util.Palette
	noColor bool

	hints map[state.Direction]*overflow.Indicator
	badge *overflow.Indicator
}

// New builds the hints for src. src may be nil; the hints then never show.
func New(src overflow.ContextSource, g util.Glyphs, p util.Palette, noColor bool) *EdgeHints {
	e := &EdgeHints{
		glyphs:  g,
		palette: p,
		noColor: util.NoColor(noColor),
		hints:   make(map[state.Direction]*overflow.Indicator, len(state.Directions)),
	}
	for _, d := range state.Directions {
		e.hints[d] = overflow.NewIndicator(src, overflow.Dynamic(e.renderer(d))).ForDirection(d)
	}
	e.badge = overflow.NewIndicator(src, overflow.Static(g.More))
	return e
}

// Badge is the "more" mark shown while any direction can scroll.
func (e *EdgeHints) Badge() string {
	return e.badge.View()
}

// View frames body. The top and bottom rows carry the up/down hints,
// centered; the side columns carry left/right, vertically centered.
func (e *EdgeHints) View(body string) string {
	w, h := lipgloss.Width(body), lipgloss.Height(body)
	// Line counts follow the viewport handle, which moves without a new
	// context being published.
	e.hints[state.Up].Invalidate()
	e.hints[state.Down].Invalidate()

	row := func(d state.Direction) string {
		text := ansi.Truncate(e.hints[d].View(), w, "")
		return " " + lipgloss.PlaceHorizontal(w, lipgloss.Center, text) + " "
	}
	column := func(d state.Direction) string {
		return lipgloss.NewStyle().Width(1).Height(h).AlignVertical(lipgloss.Center).Render(e.hints[d].View())
	}
	middle := lipgloss.JoinHorizontal(lipgloss.Top, column(state.Left), body, column(state.Right))
	return lipgloss.JoinVertical(lipgloss.Left, row(state.Up), middle, row(state.Down))
}

func (e *EdgeHints) renderer(d state.Direction) overflow.RenderFunc {
	return func(r overflow.Reading, vp *overflow.Viewport) string {
		if !r.Active {
			return ""
		}
		text := e.glyphs.For(d)
		if n := hidden(d, vp); n > 0 {
			text = fmt.Sprintf("%s %d more", text, n)
		}
		if e.noColor {
			return text
		}
		return lipgloss.NewStyle().Foreground(e.palette.ForDirection(d)).Render(text)
	}
}

// hidden counts the lines beyond the up or down edge. Side hints carry no
// count.
func hidden(d state.Direction, vp *overflow.Viewport) int {
	if vp == nil {
		return 0
	}
	_, y := vp.Offset()
	_, h := vp.Size()
	_, ch := vp.ContentSize()
	switch d {
	case state.Up:
		return y
	case state.Down:
		return max(0, ch-y-h)
	default:
		return 0
	}
}
