package pager

import (
    "scroll-overflow/internal/tui/state"
    "scroll-overflow/internal/tui/util"
    chips "scroll-overflow/internal/tui/widgets/dirchips"
    help "scroll-overflow/internal/tui/widgets/helpoverlay"
)

// RenderChips is a thin adapter over the DirChips widget for the header line.
func RenderChips(cs state.CanScroll, g util.Glyphs, p util.Palette, noColor bool) string {
    return chips.View(cs, g, p, noColor)
}

// RenderHelp returns the grouped keys overlay content for the pager.
func RenderHelp(s state.UIState) string {
    h := help.NewHelpOverlay()
    return h.View(s)
}
