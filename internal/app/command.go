package app

// CommandKind identifies an input command.
type CommandKind int

const (
	CmdMoveUp CommandKind = iota
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdHome
	CmdEnd
	CmdInsertChar
	CmdNewline
	CmdDeleteForward
	CmdDeleteBackward
	CmdUndo
	CmdRedo
	CmdOpenGoToLine
	CmdConfirm
	CmdCancel
	CmdExit
	CmdResize
)

var commandNames = [...]string{
	CmdMoveUp:         "MoveUp",
	CmdMoveDown:       "MoveDown",
	CmdMoveLeft:       "MoveLeft",
	CmdMoveRight:      "MoveRight",
	CmdHome:           "Home",
	CmdEnd:            "End",
	CmdInsertChar:     "InsertChar",
	CmdNewline:        "Newline",
	CmdDeleteForward:  "DeleteForward",
	CmdDeleteBackward: "DeleteBackward",
	CmdUndo:           "Undo",
	CmdRedo:           "Redo",
	CmdOpenGoToLine:   "OpenGoToLine",
	CmdConfirm:        "Confirm",
	CmdCancel:         "Cancel",
	CmdExit:           "Exit",
	CmdResize:         "Resize",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "Command(?)"
}

// Command is one abstract input, already decoded from raw key events.
// N is the repeat count for moves; Ch is the character for CmdInsertChar.
type Command struct {
	Kind CommandKind
	N    int
	Ch   rune
}

func Move(kind CommandKind, n int) Command { return Command{Kind: kind, N: n} }

func Insert(ch rune) Command { return Command{Kind: CmdInsertChar, Ch: ch} }

func Simple(kind CommandKind) Command { return Command{Kind: kind} }

// count returns N, treating an unset repeat count as 1.
func (c Command) count() int {
	if c.N <= 0 {
		return 1
	}
	return c.N
}
