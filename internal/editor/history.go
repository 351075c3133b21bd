package editor

// Combination records which key merged two lines.
type Combination int

const (
	FromStart Combination = iota // Backspace at column 0.
	FromEnd                      // Delete at end of line.
)

func (c Combination) String() string {
	switch c {
	case FromStart:
		return "FromStart"
	case FromEnd:
		return "FromEnd"
	}
	return "Combination(?)"
}

// Operation is one reversible unit of edit history. The set of
// implementations is closed: InsertCharOp, RemoveCharOp, SplitLineOp,
// CombineLineOp and NoOp.
type Operation interface {
	operation()
}

// InsertCharOp: Ch was inserted at At; the cursor ended one column right.
type InsertCharOp struct {
	At Cursor
	Ch rune
}

// RemoveCharOp: Ch was removed from At. Forward distinguishes delete, which
// leaves the cursor on At, from backspace, which moved it left onto At first.
type RemoveCharOp struct {
	At      Cursor
	Ch      rune
	Forward bool
}

// SplitLineOp: a line break was inserted at At.
type SplitLineOp struct {
	At Cursor
}

// CombineLineOp: two lines were merged at At.
type CombineLineOp struct {
	At   Cursor
	From Combination
}

// NoOp: the edit had no effect. It is never stored in history.
type NoOp struct{}

func (InsertCharOp) operation()  {}
func (RemoveCharOp) operation()  {}
func (SplitLineOp) operation()   {}
func (CombineLineOp) operation() {}
func (NoOp) operation()          {}

// record pushes op onto the undo stack and clears redo. NoOp is dropped.
func (b *Buffer) record(op Operation) {
	if _, ok := op.(NoOp); ok {
		return
	}
	b.undos = append(b.undos, op)
	b.redos = nil
}

// Undo pops the last operation and applies its inverse.
// Returns false when there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undos) == 0 {
		return false
	}
	op := b.undos[len(b.undos)-1]
	b.undos = b.undos[:len(b.undos)-1]

	switch op := op.(type) {
	case InsertCharOp:
		b.cursor = op.At
		b.removeAt()
	case RemoveCharOp:
		b.cursor = op.At
		b.insertChar(op.Ch)
		if op.Forward {
			b.cursor = op.At
		}
	case SplitLineOp:
		b.cursor = op.At
		b.removeAt()
	case CombineLineOp:
		b.cursor = op.At
		b.newline()
		if op.From == FromEnd {
			b.cursor = op.At
		}
	}

	b.redos = append(b.redos, op)
	return true
}

// Redo re-applies the most recently undone operation.
// Returns false when there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redos) == 0 {
		return false
	}
	op := b.redos[len(b.redos)-1]
	b.redos = b.redos[:len(b.redos)-1]

	switch op := op.(type) {
	case InsertCharOp:
		b.cursor = op.At
		b.insertChar(op.Ch)
	case RemoveCharOp:
		if op.Forward {
			b.cursor = op.At
			b.removeAt()
		} else {
			// Backspace removes the rune left of the cursor.
			b.cursor = Cursor{Line: op.At.Line, Col: op.At.Col + 1}
			b.removeBefore()
		}
	case SplitLineOp:
		b.cursor = op.At
		b.newline()
	case CombineLineOp:
		if op.From == FromStart {
			b.cursor = Cursor{Line: op.At.Line + 1, Col: 0}
			b.removeBefore()
		} else {
			b.cursor = op.At
			b.removeAt()
		}
	}

	b.undos = append(b.undos, op)
	return true
}

// CanUndo reports whether Undo would do anything.
func (b *Buffer) CanUndo() bool { return len(b.undos) > 0 }

// CanRedo reports whether Redo would do anything.
func (b *Buffer) CanRedo() bool { return len(b.redos) > 0 }

// UndoLen returns the number of operations on the undo stack.
func (b *Buffer) UndoLen() int { return len(b.undos) }

// RedoLen returns the number of operations on the redo stack.
func (b *Buffer) RedoLen() int { return len(b.redos) }
