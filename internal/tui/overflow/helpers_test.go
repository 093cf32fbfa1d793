package overflow

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"scroll-overflow/internal/tui/state"
)

// block returns n lines of w cells each.
func block(n, w int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", w)
	}
	return strings.Join(lines, "\n")
}

type recorder struct {
	states []*state.OverflowState
	refs   []*Refs
}

func (r *recorder) record(s *state.OverflowState, refs *Refs) {
	r.states = append(r.states, s)
	r.refs = append(r.refs, refs)
}

func (r *recorder) last() state.CanScroll {
	return r.states[len(r.states)-1].CanScroll
}

// mount builds a provider of the given size around body and settles the
// initial reports.
func mount(t *testing.T, cfg Config, body string) (*Provider, *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg.OnStateChange = rec.record
	p := NewProvider(cfg)
	p.Wrap(NewContent(body))
	rest := Settle(p, p.Init())
	require.Empty(t, rest)
	return p, rec
}

func settle(t *testing.T, p *Provider, cmds ...tea.Cmd) {
	t.Helper()
	for _, cmd := range cmds {
		require.Empty(t, Settle(p, cmd))
	}
}

func keyMsg(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
