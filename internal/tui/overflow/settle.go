package overflow

import (
	tea "github.com/charmbracelet/bubbletea"

	"scroll-overflow/internal/tui/intersect"
)

// Settle runs cmd and every command it leads to without a bubbletea program,
// routing watcher reports into p until none are left. Other messages are
// returned in the order they were produced. Used by headless callers and
// tests.
func Settle(p *Provider, cmd tea.Cmd) []tea.Msg {
	var rest []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case intersect.ReportMsg:
			queue = append(queue, p.Update(msg))
		default:
			rest = append(rest, msg)
		}
	}
	return rest
}
