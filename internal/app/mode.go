package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JackWReid/scribe/internal/editor"
)

// GoToLineLabel is the prompt shown by the go-to-line dialog.
const GoToLineLabel = "Go to line"

// Mode is the active editing surface. Exactly one mode owns the buffer at
// any time. Implementations are *Editing, *Dialog and Terminated.
type Mode interface {
	fmt.Stringer
	handle(a *App, cmd Command) Mode
}

// Editing owns the buffer and applies commands to it directly.
type Editing struct {
	buf *editor.Buffer
}

// Dialog owns the buffer while a single-line prompt has focus. The buffer
// is held but not edited.
type Dialog struct {
	buf   *editor.Buffer
	modal *editor.LineEditor
}

// Terminated is the final mode. It accepts no input.
type Terminated struct{}

func (*Editing) String() string   { return "EDIT" }
func (*Dialog) String() string    { return "GOTO" }
func (Terminated) String() string { return "TERMINATED" }

// Buffer returns the owned buffer, or nil once it has moved to another mode.
func (e *Editing) Buffer() *editor.Buffer { return e.buf }

// Buffer returns the held buffer, or nil once it has moved back to Editing.
func (d *Dialog) Buffer() *editor.Buffer { return d.buf }

// Modal returns the prompt, or nil once the dialog has closed.
func (d *Dialog) Modal() *editor.LineEditor { return d.modal }

// openDialog moves the buffer into a new dialog. e is unusable afterwards.
func (e *Editing) openDialog(label string) *Dialog {
	d := &Dialog{buf: e.buf, modal: editor.NewLineEditor(label)}
	e.buf = nil
	return d
}

// close discards the prompt and moves the buffer back into a new Editing
// mode. d is unusable afterwards.
func (d *Dialog) close() *Editing {
	e := &Editing{buf: d.buf}
	d.buf = nil
	d.modal = nil
	return e
}

func (e *Editing) handle(a *App, cmd Command) Mode {
	b := e.buf
	switch cmd.Kind {
	case CmdMoveUp:
		b.MoveUp(cmd.count())
	case CmdMoveDown:
		b.MoveDown(cmd.count())
	case CmdMoveLeft:
		b.MoveLeft(cmd.count())
	case CmdMoveRight:
		b.MoveRight(cmd.count())
	case CmdHome:
		b.MoveStartOfLine()
	case CmdEnd:
		b.MoveEndOfLine()
	case CmdInsertChar:
		b.InsertChar(cmd.Ch)
	case CmdNewline:
		b.Newline()
	case CmdDeleteForward:
		b.RemoveAt()
	case CmdDeleteBackward:
		b.RemoveBefore()
	case CmdUndo:
		b.Undo()
	case CmdRedo:
		b.Redo()
	case CmdOpenGoToLine:
		return e.openDialog(GoToLineLabel)
	case CmdExit:
		e.buf = nil
		return Terminated{}
	}
	return e
}

func (d *Dialog) handle(a *App, cmd Command) Mode {
	m := d.modal
	switch cmd.Kind {
	case CmdMoveLeft:
		m.MoveLeft(cmd.count())
	case CmdMoveRight:
		m.MoveRight(cmd.count())
	case CmdHome:
		m.MoveStartOfLine()
	case CmdEnd:
		m.MoveEndOfLine()
	case CmdInsertChar:
		m.InsertChar(cmd.Ch)
	case CmdDeleteForward:
		m.RemoveAt()
	case CmdDeleteBackward:
		m.RemoveBefore()
	case CmdExit, CmdCancel:
		return d.close()
	case CmdConfirm:
		if err := goToLine(d.buf, m.Line()); err != nil {
			a.fail(err)
		}
		return d.close()
	}
	return d
}

func (Terminated) handle(*App, Command) Mode {
	return Terminated{}
}

// goToLine parses text as a 1-indexed line number and moves there.
func goToLine(b *editor.Buffer, text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q", editor.ErrMalformedLineNumber, text)
	}
	return b.GoToLine(n)
}
