package state

// UIState holds cross-widget state for the pager: status bar, help overlay
// and the transition log.
type UIState struct {
    Width  int
    Height int

    ShowHelp bool
    ShowLog  bool
    NoColor  bool

    // Tolerance as typed by the user; empty means disabled.
    Tolerance string

    // Notices and ephemeral messages
    Notice string
}

// ToggleHelp flips the help overlay and returns a new state copy.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// ToggleLog flips the transition log panel.
func ToggleLog(s UIState) UIState {
    s.ShowLog = !s.ShowLog
    if s.ShowLog {
        s.Notice = "[LOG]"
    } else {
        s.Notice = ""
    }
    return s
}

// Resize records the terminal size and warns when the pager has no room
// left for the hint gutters.
// Threshold heuristic: one gutter column per side plus at least one content cell.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    if width < 3 || height < 3 {
        s.Notice = "Terminal too small for edge hints"
    }
    return s
}

// SetTolerance records the tolerance string and a notice describing it.
func SetTolerance(s UIState, tolerance string) UIState {
    s.Tolerance = tolerance
    if tolerance == "" {
        s.Notice = "Tolerance off"
    } else {
        s.Notice = "Tolerance " + tolerance
    }
    return s
}

// WithNotice replaces the ephemeral notice.
func WithNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
