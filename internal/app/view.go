package app

import "github.com/JackWReid/scribe/internal/editor"

// View is the read-only projection a renderer draws.
type View struct {
	Mode      string
	Name      string
	Line      string
	Cursor    editor.Cursor
	LineCount int
	Status    string
	Dialog    *DialogView // Nil unless a dialog is open.
}

// DialogView is the prompt part of a View.
type DialogView struct {
	Label string
	Line  string
	Col   int
}

// View projects the active mode for rendering. A terminated App yields a
// View with only Mode set.
func (a *App) View() View {
	v := View{Mode: a.mode.String(), Status: a.status}

	var buf *editor.Buffer
	switch m := a.mode.(type) {
	case *Editing:
		buf = m.buf
	case *Dialog:
		buf = m.buf
		v.Dialog = &DialogView{
			Label: m.modal.Name(),
			Line:  m.modal.Line(),
			Col:   m.modal.Col(),
		}
	}
	if buf == nil {
		return v
	}

	v.Name = buf.Name()
	v.Line = buf.Line()
	v.Cursor = buf.Cursor()
	v.LineCount = buf.LineCount()
	return v
}
