package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DraftName is the name given to buffers that were not read from a source.
const DraftName = "[draft]"

// Buffer holds the text content as a slice of lines (hard lines, split on \n),
// the cursor, and the undo/redo history.
type Buffer struct {
	name   string
	lines  []string
	cursor Cursor
	undos  []Operation
	redos  []Operation
}

// NewBuffer returns an empty draft buffer: one empty line, cursor at (0, 0).
func NewBuffer() *Buffer {
	return &Buffer{
		name:  DraftName,
		lines: []string{""},
	}
}

// ReadBuffer reads r to EOF and splits it into lines. A trailing \r on each
// line is dropped. Any read error aborts construction.
func ReadBuffer(name string, r io.Reader) (*Buffer, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err == nil || line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			break
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{
		name:  name,
		lines: lines,
	}, nil
}

// Name returns the buffer's name.
func (b *Buffer) Name() string { return b.name }

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// Line returns the line under the cursor.
func (b *Buffer) Line() string { return b.lines[b.cursor.Line] }

// LineAt returns line i, or "" when i is out of range.
func (b *Buffer) LineAt(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns a copy of the document.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune-length of a given line.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len([]rune(b.lines[line]))
}

// String returns the document with lines joined by \n.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// WriteTo writes every line followed by \n.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range b.lines {
		m, err := bw.WriteString(line)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// MOVING AROUND

// MoveUp moves the cursor up delta lines. It does nothing when delta is
// larger than the current line index.
func (b *Buffer) MoveUp(delta int) {
	if delta < 0 || delta > b.cursor.Line {
		return
	}
	b.cursor.Line -= delta
	b.clampCol()
}

// MoveDown moves the cursor down delta lines, stopping at the last line.
func (b *Buffer) MoveDown(delta int) {
	if delta < 0 {
		return
	}
	b.cursor.Line = min(b.cursor.Line+delta, len(b.lines)-1)
	b.clampCol()
}

// MoveLeft moves the cursor left delta columns. It does nothing when delta
// is larger than the current column.
func (b *Buffer) MoveLeft(delta int) {
	if delta < 0 || delta > b.cursor.Col {
		return
	}
	b.cursor.Col -= delta
}

// MoveRight moves the cursor right delta columns, stopping at end of line.
func (b *Buffer) MoveRight(delta int) {
	if delta < 0 {
		return
	}
	b.cursor.Col = min(b.cursor.Col+delta, b.LineLen(b.cursor.Line))
}

func (b *Buffer) MoveStartOfLine() {
	b.cursor.Col = 0
}

func (b *Buffer) MoveEndOfLine() {
	b.cursor.Col = b.LineLen(b.cursor.Line)
}

// GoToLine moves the cursor to the 1-indexed line n, keeping the column
// where the destination line allows it. The buffer is unchanged on error.
func (b *Buffer) GoToLine(n int) error {
	if n < 1 || n > len(b.lines) {
		return &OutOfRangeError{Line: n}
	}
	b.cursor.Line = n - 1
	b.clampCol()
	return nil
}

func (b *Buffer) clampCol() {
	b.cursor.Col = min(b.cursor.Col, b.LineLen(b.cursor.Line))
}

// MUTATION OPERATIONS

// InsertChar inserts ch at the cursor and advances the cursor.
func (b *Buffer) InsertChar(ch rune) {
	b.record(b.insertChar(ch))
}

// Newline splits the current line at the cursor.
func (b *Buffer) Newline() {
	b.record(b.newline())
}

// RemoveAt deletes the character under the cursor. At the end of a line the
// next line is appended to the current one. At the end of the document it
// does nothing.
func (b *Buffer) RemoveAt() {
	b.record(b.removeAt())
}

// RemoveBefore deletes the character before the cursor. At column 0 the
// current line is appended to the previous one. At (0, 0) it does nothing.
func (b *Buffer) RemoveBefore() {
	b.record(b.removeBefore())
}

func (b *Buffer) insertChar(ch rune) Operation {
	at := b.cursor
	runes := []rune(b.lines[at.Line])
	newRunes := make([]rune, 0, len(runes)+1)
	newRunes = append(newRunes, runes[:at.Col]...)
	newRunes = append(newRunes, ch)
	newRunes = append(newRunes, runes[at.Col:]...)
	b.lines[at.Line] = string(newRunes)
	b.cursor.Col++
	return InsertCharOp{At: at, Ch: ch}
}

func (b *Buffer) newline() Operation {
	at := b.cursor
	runes := []rune(b.lines[at.Line])
	before := string(runes[:at.Col])
	after := string(runes[at.Col:])
	b.lines[at.Line] = before

	newLines := make([]string, 0, len(b.lines)+1)
	newLines = append(newLines, b.lines[:at.Line+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, b.lines[at.Line+1:]...)
	b.lines = newLines

	b.cursor = Cursor{Line: at.Line + 1, Col: 0}
	return SplitLineOp{At: at}
}

func (b *Buffer) removeAt() Operation {
	at := b.cursor
	runes := []rune(b.lines[at.Line])
	if at.Col < len(runes) {
		ch := runes[at.Col]
		b.lines[at.Line] = string(append(runes[:at.Col:at.Col], runes[at.Col+1:]...))
		return RemoveCharOp{At: at, Ch: ch, Forward: true}
	}
	if at.Line < len(b.lines)-1 {
		b.joinLines(at.Line)
		return CombineLineOp{At: at, From: FromEnd}
	}
	return NoOp{}
}

func (b *Buffer) removeBefore() Operation {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		at := b.cursor
		runes := []rune(b.lines[at.Line])
		ch := runes[at.Col]
		b.lines[at.Line] = string(append(runes[:at.Col:at.Col], runes[at.Col+1:]...))
		return RemoveCharOp{At: at, Ch: ch, Forward: false}
	}
	if b.cursor.Line > 0 {
		prev := b.cursor.Line - 1
		at := Cursor{Line: prev, Col: b.LineLen(prev)}
		b.joinLines(prev)
		b.cursor = at
		return CombineLineOp{At: at, From: FromStart}
	}
	return NoOp{}
}

// joinLines appends line idx+1 to line idx and removes it.
func (b *Buffer) joinLines(idx int) {
	b.lines[idx] += b.lines[idx+1]
	b.lines = append(b.lines[:idx+1], b.lines[idx+2:]...)
}
