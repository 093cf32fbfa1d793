package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/overflow"
	"scroll-overflow/internal/tui/state"
	"scroll-overflow/internal/tui/util"
	"scroll-overflow/internal/tui/views/pager"
	diffw "scroll-overflow/internal/tui/widgets/diff"
	"scroll-overflow/internal/tui/widgets/edgehints"
	"scroll-overflow/internal/tui/widgets/statusbar"
)

// Options configure the pager.
type Options struct {
	Title     string
	Body      string
	Tolerance geom.Length
	NoColor   bool
	Glyphs    util.Glyphs
	Palette   util.Palette
	Logger    *zap.Logger

	// InputTTY reads keys from the terminal device, for bodies piped on stdin.
	InputTTY bool
}

// Run shows the pager and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	defer m.provider.Close()
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

// ===== Model =====

const (
	logPanelWidth = 40
	maxLogEntries = 64
	// rows taken by the header and the status line
	chromeRows = 2
)

type transition struct {
	before, after string
}

type model struct {
	opts Options
	log  *zap.Logger

	provider *overflow.Provider
	hints    *edgehints.EdgeHints
	status   statusbar.StatusBar
	diff     diffw.DiffView

	ui state.UIState

	// transition log, oldest first
	transitions []transition
	last        string

	// tolerance restored by the toggle key
	savedTol geom.Length

	copy func(string) error
}

func newModel(opts Options) *model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	noColor := util.NoColor(opts.NoColor)
	m := &model{
		opts:     opts,
		log:      log,
		status:   statusbar.NewStatusBar(),
		diff:     diffw.NewDiffView(noColor),
		savedTol: geom.CellsOf(1),
		copy:     clipboard.WriteAll,
	}
	m.ui.NoColor = noColor
	if !opts.Tolerance.IsZero() {
		m.ui.Tolerance = opts.Tolerance.String()
		m.savedTol = opts.Tolerance
	}
	m.provider = overflow.NewProvider(overflow.Config{
		Tolerance:     opts.Tolerance,
		Logger:        log,
		OnStateChange: m.record,
	})
	m.provider.Wrap(overflow.NewContent(opts.Body))
	m.hints = edgehints.New(m.provider, opts.Glyphs, opts.Palette, noColor)
	return m
}

func (m *model) Init() tea.Cmd { return m.provider.Init() }

// Update handles the pager keys; everything else goes to the provider.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case "t":
			m.ui = state.ToggleLog(m.ui)
			return m, m.resize()
		case "+", "=":
			return m, m.stepTolerance(1)
		case "-":
			return m, m.stepTolerance(-1)
		case "0":
			return m, m.toggleTolerance()
		case "g", "home":
			m.provider.Viewport().GotoTop()
			return m, m.provider.Refresh()
		case "G", "end":
			m.provider.Viewport().GotoBottom()
			return m, m.provider.Refresh()
		case "y":
			m.copyState()
			return m, nil
		}
	}
	return m, m.provider.Update(msg)
}

func (m *model) View() string {
	title := m.opts.Title
	if title == "" {
		title = "scroll-overflow"
	}
	header := strings.Join([]string{
		titleStyle.Render(title),
		pager.RenderChips(m.provider.State().CanScroll, m.opts.Glyphs, m.opts.Palette, m.ui.NoColor),
		m.hints.Badge(),
	}, "  ")

	var body string
	if m.ui.ShowHelp {
		body = pager.RenderHelp(m.ui)
	} else {
		body = m.hints.View(m.provider.View())
	}
	if m.ui.ShowLog {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.viewLog())
	}

	x, y := m.provider.Viewport().Offset()
	footer := faintStyle.Render(m.status.View(m.ui, m.provider.State().CanScroll, statusbar.Position{X: x, Y: y}))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	logStyle   = lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true)
)

func (m *model) viewLog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Transitions") + "\n")
	if len(m.transitions) == 0 {
		b.WriteString("none yet\n")
	}
	// newest last; only what fits
	rows := max(1, (m.ui.Height-chromeRows-1)/2)
	start := max(0, len(m.transitions)-rows)
	for _, tr := range m.transitions[start:] {
		b.WriteString(m.diff.View(tr.before, tr.after))
	}
	return logStyle.Width(logPanelWidth - 2).Render(strings.TrimSuffix(b.String(), "\n"))
}

// ===== helpers =====

// record is the provider's structural-change callback.
func (m *model) record(s *state.OverflowState, _ *overflow.Refs) {
	now := Summary(s.CanScroll)
	if m.last != "" {
		m.transitions = append(m.transitions, transition{before: m.last, after: now})
		if len(m.transitions) > maxLogEntries {
			m.transitions = m.transitions[len(m.transitions)-maxLogEntries:]
		}
	}
	m.last = now
	m.log.Debug("overflow state changed", zap.String("state", now))
}

func (m *model) resize() tea.Cmd {
	w := m.ui.Width - 2
	if m.ui.ShowLog {
		w -= logPanelWidth
	}
	h := m.ui.Height - 2 - chromeRows
	return m.provider.SetSize(max(0, w), max(0, h))
}

func (m *model) stepTolerance(delta float64) tea.Cmd {
	cur := m.provider.Tolerance()
	step := 1.0
	if cur.Unit == geom.Percent {
		step = 5
	}
	next := geom.Length{Value: max(0, cur.Value+delta*step), Unit: cur.Unit}
	return m.applyTolerance(next)
}

func (m *model) toggleTolerance() tea.Cmd {
	cur := m.provider.Tolerance()
	if cur.IsZero() {
		return m.applyTolerance(m.savedTol)
	}
	m.savedTol = cur
	return m.applyTolerance(geom.Length{})
}

func (m *model) applyTolerance(l geom.Length) tea.Cmd {
	s := ""
	if !l.IsZero() {
		s = l.String()
	}
	m.ui = state.SetTolerance(m.ui, s)
	return m.provider.SetTolerance(l)
}

func (m *model) copyState() {
	data, err := json.Marshal(m.provider.State())
	if err == nil {
		err = m.copy(string(data))
	}
	if err != nil {
		m.log.Warn("copy to clipboard failed", zap.Error(err))
		m.ui = state.WithNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.WithNotice(m.ui, "Copied "+string(data))
}

// Summary renders cs as one line for the transition log, e.g.
// "up:0 left:0 right:0 down:1".
func Summary(cs state.CanScroll) string {
	parts := make([]string, 0, len(state.Directions))
	for _, d := range state.Directions {
		v := 0
		if cs.Get(d) {
			v = 1
		}
		parts = append(parts, fmt.Sprintf("%s:%d", d, v))
	}
	return strings.Join(parts, " ")
}
