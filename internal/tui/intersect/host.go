package intersect

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// ReportMsg carries one observer's entries back to the event loop.
type ReportMsg struct {
	ObserverID string
	Entries    []Entry

	host     *Host
	observer *Observer
}

// HostOption tweaks a Host.
type HostOption func(*Host)

// WithZeroThresholdQuirk makes the host behave like runtimes that never
// register a threshold of exactly 0 and only fire on bucket changes. Useful
// to check that callers register a near-zero threshold as well.
func WithZeroThresholdQuirk() HostOption {
	return func(h *Host) { h.ignoreZero = true }
}

// Host owns the observers of one program and measures them per frame.
// It is not safe for concurrent use; call it from the event loop only.
type Host struct {
	observers  []*Observer
	frame      uint64
	ignoreZero bool
}

// NewHost creates an empty host.
func NewHost(opts ...HostOption) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewObserver registers an observer. It starts with no targets.
func (h *Host) NewObserver(cb Callback, opts Options) (*Observer, error) {
	o, err := newObserver(h, cb, opts)
	if err != nil {
		return nil, err
	}
	h.observers = append(h.observers, o)
	return o, nil
}

// Len returns the number of connected observers.
func (h *Host) Len() int { return len(h.observers) }

// FrameCount returns how many frames have been measured.
func (h *Host) FrameCount() uint64 { return h.frame }

// Frame measures every observer now and returns a command delivering the
// resulting reports, or nil when nothing crossed a threshold.
func (h *Host) Frame() tea.Cmd {
	h.frame++
	var cmds []tea.Cmd
	for _, o := range h.observers {
		entries := o.measure(h.frame, h.ignoreZero)
		if len(entries) == 0 {
			continue
		}
		msg := ReportMsg{ObserverID: o.id, Entries: entries, host: h, observer: o}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Batch(cmds...)
}

// Deliver runs the callback for a report produced by this host. It returns
// false for any other message, including reports from other hosts.
func (h *Host) Deliver(msg tea.Msg) bool {
	r, ok := msg.(ReportMsg)
	if !ok || r.host != h || r.observer == nil {
		return false
	}
	r.observer.cb(r.Entries, r.observer)
	return true
}

func (h *Host) remove(o *Observer) {
	h.observers = slices.DeleteFunc(h.observers, func(x *Observer) bool { return x == o })
}
