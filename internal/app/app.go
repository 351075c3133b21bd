package app

import (
	"io"
	"log/slog"

	"github.com/JackWReid/scribe/internal/editor"
)

// App is the top-level editor state: the active mode plus the last status
// message. It performs no I/O; the host reads keys, calls Handle, and draws
// View.
type App struct {
	mode    Mode
	status  string
	lastErr error
	log     *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for mode transitions and recovered errors.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an App in Editing mode that owns buf.
func New(buf *editor.Buffer, opts ...Option) *App {
	a := &App{
		mode: &Editing{buf: buf},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mode returns the active mode.
func (a *App) Mode() Mode { return a.mode }

// Done reports whether the App has terminated. The host must stop reading
// input once it has.
func (a *App) Done() bool {
	_, ok := a.mode.(Terminated)
	return ok
}

// Status returns the message produced by the last command, if any.
func (a *App) Status() string { return a.status }

// Err returns the error recovered during the last command, if any.
func (a *App) Err() error { return a.lastErr }

// Handle routes cmd to the active mode and applies any transition it
// returns. It reports whether the host should redraw the whole screen.
func (a *App) Handle(cmd Command) bool {
	if a.Done() {
		return false
	}

	// Clear any temporary status message on input.
	a.status = ""
	a.lastErr = nil

	if cmd.Kind == CmdResize {
		return true
	}

	from := a.mode
	to := from.handle(a, cmd)
	if to != from {
		a.log.Debug("mode transition",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.String("command", cmd.Kind.String()))
		a.mode = to
	}
	return false
}

// fail records an error recovered inside a transition.
func (a *App) fail(err error) {
	a.lastErr = err
	a.status = "Error: " + err.Error()
	a.log.Warn("command failed", slog.Any("err", err))
}
