package terminal

import "github.com/JackWReid/scribe/internal/app"

// Translate maps a decoded key to an app command. Enter and Escape depend on
// whether a dialog has focus. The second result is false for keys with no
// binding.
func Translate(key Key, dialogOpen bool) (app.Command, bool) {
	switch key.Type {
	case KeyRune:
		return app.Insert(key.Rune), true
	case KeyUp:
		return app.Move(app.CmdMoveUp, 1), true
	case KeyDown:
		return app.Move(app.CmdMoveDown, 1), true
	case KeyLeft:
		return app.Move(app.CmdMoveLeft, 1), true
	case KeyRight:
		return app.Move(app.CmdMoveRight, 1), true
	case KeyHome:
		return app.Simple(app.CmdHome), true
	case KeyEnd:
		return app.Simple(app.CmdEnd), true
	case KeyDelete:
		return app.Simple(app.CmdDeleteForward), true
	case KeyBackspace:
		return app.Simple(app.CmdDeleteBackward), true
	case KeyCtrlZ:
		return app.Simple(app.CmdUndo), true
	case KeyCtrlY, KeyCtrlR:
		return app.Simple(app.CmdRedo), true
	case KeyCtrlG:
		return app.Simple(app.CmdOpenGoToLine), true
	case KeyCtrlQ:
		return app.Simple(app.CmdExit), true
	case KeyEnter:
		if dialogOpen {
			return app.Simple(app.CmdConfirm), true
		}
		return app.Simple(app.CmdNewline), true
	case KeyEscape:
		if dialogOpen {
			return app.Simple(app.CmdCancel), true
		}
		return app.Simple(app.CmdExit), true
	}
	return app.Command{}, false
}
