// Package overflow detects which edges of a scrollable viewport still have
// content beyond them and shares the result with indicator widgets.
//
// A Provider owns the viewport, four edge watchers and a tiny store of four
// booleans. Watchers report asynchronously through bubbletea messages, so the
// state trails the real scroll position by a message or two; it is never
// read from scroll offsets directly.
package overflow

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scroll-overflow/internal/tui/geom"
	"scroll-overflow/internal/tui/intersect"
	"scroll-overflow/internal/tui/state"
)

// Config configures a Provider.
type Config struct {
	// Tolerance insets the watched box; zero watches the content box itself.
	Tolerance geom.Length

	// Style is applied around the viewport when rendering. Its frame is
	// subtracted from the size given to SetSize.
	Style lipgloss.Style

	// Hidden suppresses rendering. Detection keeps running.
	Hidden bool

	// OnStateChange runs after every accepted transition, including the
	// initial commit in Init. It never runs for no-op dispatches or after
	// Close.
	OnStateChange func(s *state.OverflowState, refs *Refs)

	// Width and Height are the initial outer size.
	Width  int
	Height int

	Logger *zap.Logger

	// Host measures the watchers. Providers get their own when nil.
	Host *intersect.Host
}

// Provider hosts one scrollable viewport and publishes its overflow state.
type Provider struct {
	id  string
	cfg Config
	log *zap.Logger

	host     *intersect.Host
	viewport *Viewport
	refs     *Refs
	content  *Content
	proxy    *toleranceProxy
	watchers *edgeWatchers

	state     *state.OverflowState
	tolerance geom.Length
	ctx       *Context

	mounted bool
	closed  bool
}

// NewProvider creates a provider. The viewport handle is created here and
// stays the same for the provider's lifetime.
func NewProvider(cfg Config) *Provider {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	host := cfg.Host
	if host == nil {
		host = intersect.NewHost()
	}
	p := &Provider{
		id:        uuid.NewString(),
		cfg:       cfg,
		host:      host,
		viewport:  newViewport(0, 0),
		refs:      &Refs{Viewport: &ViewportRef{}},
		state:     state.InitialState(),
		tolerance: cfg.Tolerance,
	}
	p.log = log.With(zap.String("provider", p.id))
	p.setSize(cfg.Width, cfg.Height)
	p.publish()
	return p
}

// ID identifies the provider in logs.
func (p *Provider) ID() string { return p.id }

// Wrap installs c as the content wrapper, replacing any previous one. A
// provider without content mounts fine but never installs watchers.
// Wrap(nil) after mount releases the watchers and leaves State at its
// last-known value; nothing is committed.
func (p *Provider) Wrap(c *Content) tea.Cmd {
	if c == p.content {
		return nil
	}
	p.content = c
	p.viewport.bind(c)
	if p.proxy != nil {
		p.proxy.content = c
	}
	if !p.mounted || p.closed {
		return nil
	}
	p.install()
	return p.host.Frame()
}

// Init mounts the provider: binds the viewport handle, commits the initial
// state and installs the edge watchers.
func (p *Provider) Init() tea.Cmd {
	if p.mounted || p.closed {
		return nil
	}
	p.mounted = true
	p.refs.Viewport.bind(p.viewport)
	p.state = state.InitialState()
	p.publish()
	p.commit()
	p.log.Debug("provider mounted", zap.Bool("content", p.content != nil), zap.Stringer("tolerance", p.tolerance))
	p.install()
	return p.host.Frame()
}

// Update handles watcher reports and forwards everything else to the
// viewport. Any message may move the content, so a frame is measured after
// it.
func (p *Provider) Update(msg tea.Msg) tea.Cmd {
	if !p.mounted || p.closed {
		return nil
	}
	if p.host.Deliver(msg) {
		return nil
	}
	cmd := p.viewport.update(msg)
	return tea.Batch(cmd, p.host.Frame())
}

// Refresh measures a frame without handling a message, e.g. after the
// caller scrolled through the viewport handle or changed the content body.
func (p *Provider) Refresh() tea.Cmd {
	if !p.mounted || p.closed {
		return nil
	}
	return p.host.Frame()
}

// View renders the viewport inside the configured style.
func (p *Provider) View() string {
	if p.cfg.Hidden {
		return ""
	}
	return p.cfg.Style.Render(p.viewport.View())
}

// Close unmounts the provider and disconnects all four watchers. Reports
// still in flight are dropped.
func (p *Provider) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.mounted = false
	p.teardown()
	p.log.Debug("provider closed")
}

// Context returns the published value. It is nil for a nil provider.
func (p *Provider) Context() *Context {
	if p == nil {
		return nil
	}
	return p.ctx
}

// State returns the current snapshot.
func (p *Provider) State() *state.OverflowState { return p.state }

// Refs returns the shared handles.
func (p *Provider) Refs() *Refs { return p.refs }

// Viewport returns the scrollable element. Callers scroll through it; call
// Refresh or route the next message through Update afterwards.
func (p *Provider) Viewport() *Viewport { return p.viewport }

// Tolerance returns the configured tolerance.
func (p *Provider) Tolerance() geom.Length { return p.tolerance }

// SetTolerance changes the tolerance. Switching between zero and non-zero
// swaps the watched box, which reinstalls all four watchers; other changes
// only resize the proxy box.
func (p *Provider) SetTolerance(l geom.Length) tea.Cmd {
	if l == p.tolerance {
		return nil
	}
	swap := l.IsZero() != p.tolerance.IsZero()
	p.tolerance = l
	if p.proxy != nil {
		p.proxy.inset = l
	}
	p.publish()
	if !p.mounted || p.closed {
		return nil
	}
	if swap {
		p.install()
	}
	return p.host.Frame()
}

// SetHidden toggles rendering.
func (p *Provider) SetHidden(hidden bool) { p.cfg.Hidden = hidden }

// Hidden reports whether rendering is suppressed.
func (p *Provider) Hidden() bool { return p.cfg.Hidden }

// SetSize sets the outer size, style frame included.
func (p *Provider) SetSize(width, height int) tea.Cmd {
	p.setSize(width, height)
	return p.Refresh()
}

func (p *Provider) setSize(width, height int) {
	w := width - p.cfg.Style.GetHorizontalFrameSize()
	h := height - p.cfg.Style.GetVerticalFrameSize()
	p.viewport.setSize(w, h)
}

func (p *Provider) target() intersect.Element {
	if p.content == nil {
		return nil
	}
	if p.tolerance.IsZero() {
		return p.content
	}
	if p.proxy == nil {
		p.proxy = &toleranceProxy{content: p.content, inset: p.tolerance}
	}
	return p.proxy
}

func (p *Provider) install() {
	p.teardown()
	target := p.target()
	if target == nil {
		p.log.Debug("no content wrapper, edge watchers not installed")
		return
	}
	w, err := installEdgeWatchers(p.host, p.viewport, target, p.dispatch)
	if err != nil {
		p.log.Warn("edge watchers not installed", zap.Error(err))
		return
	}
	p.watchers = w
	p.log.Debug("edge watchers installed", zap.Bool("proxy", target != intersect.Element(p.content)))
}

func (p *Provider) teardown() {
	if p.watchers == nil {
		return
	}
	p.watchers.Close()
	p.watchers = nil
	p.log.Debug("edge watchers released")
}

func (p *Provider) dispatch(a state.Action) {
	if !p.mounted || p.closed {
		return
	}
	next := state.Apply(p.state, a)
	if next == p.state {
		return
	}
	p.state = next
	p.publish()
	p.commit()
}

func (p *Provider) commit() {
	if p.cfg.OnStateChange != nil {
		p.cfg.OnStateChange(p.state, p.refs)
	}
}

func (p *Provider) publish() {
	if c := p.ctx; c != nil && c.State == p.state && c.Tolerance == p.tolerance && c.Refs == p.refs {
		return
	}
	p.ctx = &Context{
		State:     p.state,
		Dispatch:  p.dispatch,
		Tolerance: p.tolerance,
		Refs:      p.refs,
	}
}
