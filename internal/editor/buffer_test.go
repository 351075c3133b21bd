package editor

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

// bufferOf returns a buffer holding lines with the cursor at (0, 0).
func bufferOf(lines ...string) *Buffer {
	b := NewBuffer()
	b.lines = lines
	return b
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.LineCount() != 1 || b.Line() != "" {
		t.Errorf("new buffer should have one empty line, got %q", b.Lines())
	}
	if b.Name() != "[draft]" {
		t.Errorf("name: %q", b.Name())
	}
	if b.Cursor() != (Cursor{}) {
		t.Errorf("cursor: %+v", b.Cursor())
	}
}

func TestReadBuffer(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"\n", []string{""}},
		{"hello\nworld\n", []string{"hello", "world"}},
		{"hello\nworld", []string{"hello", "world"}},
		{"crlf\r\nline\r\n", []string{"crlf", "line"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tc := range tests {
		b, err := ReadBuffer("notes.txt", strings.NewReader(tc.input))
		if err != nil {
			t.Fatalf("ReadBuffer(%q): %v", tc.input, err)
		}
		if !slices.Equal(b.Lines(), tc.want) {
			t.Errorf("ReadBuffer(%q) = %q, want %q", tc.input, b.Lines(), tc.want)
		}
		if b.Name() != "notes.txt" {
			t.Errorf("name: %q", b.Name())
		}
	}
}

func TestReadBufferError(t *testing.T) {
	boom := errors.New("boom")
	b, err := ReadBuffer("broken.txt", iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("error should wrap the read failure, got %v", err)
	}
	if b != nil {
		t.Error("no buffer should be returned on error")
	}
	if !strings.Contains(err.Error(), "broken.txt") {
		t.Errorf("error should name the source, got %v", err)
	}

	// A failure after some lines were read still aborts construction.
	_, err = ReadBuffer("slow.txt", iotest.TimeoutReader(iotest.OneByteReader(strings.NewReader("ab\ncd\n"))))
	if !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("late failure: got %v", err)
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	b := bufferOf("hello", "", "world")
	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sb.String() != "hello\n\nworld\n" || n != int64(sb.Len()) {
		t.Errorf("WriteTo wrote %q (%d bytes)", sb.String(), n)
	}
	again, err := ReadBuffer("x", strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.Lines(), b.Lines()) {
		t.Errorf("round trip: %q", again.Lines())
	}
}

func TestLinesIsACopy(t *testing.T) {
	b := bufferOf("abc")
	lines := b.Lines()
	lines[0] = "changed"
	if b.Line() != "abc" {
		t.Errorf("buffer aliased by Lines(): %q", b.Line())
	}
}

func TestMoveUpDown(t *testing.T) {
	b := bufferOf("long line", "ab", "longer line")
	b.cursor = Cursor{Line: 0, Col: 8}

	b.MoveDown(1)
	if b.Cursor() != (Cursor{Line: 1, Col: 2}) {
		t.Errorf("down onto short line: %+v", b.Cursor())
	}
	b.MoveDown(5)
	if b.Cursor() != (Cursor{Line: 2, Col: 2}) {
		t.Errorf("down past end: %+v", b.Cursor())
	}
	b.MoveUp(2)
	if b.Cursor() != (Cursor{Line: 0, Col: 2}) {
		t.Errorf("up: %+v", b.Cursor())
	}
}

func TestMoveUpUnderflowIsNoOp(t *testing.T) {
	b := bufferOf("a", "b", "c")
	b.cursor = Cursor{Line: 1, Col: 1}
	b.MoveUp(2)
	if b.Cursor() != (Cursor{Line: 1, Col: 1}) {
		t.Errorf("cursor moved: %+v", b.Cursor())
	}
}

func TestMoveLeftRight(t *testing.T) {
	b := bufferOf("héllo")
	b.MoveRight(3)
	if b.Cursor().Col != 3 {
		t.Errorf("right: %d", b.Cursor().Col)
	}
	b.MoveRight(10)
	if b.Cursor().Col != 5 {
		t.Errorf("right clamps to rune length: %d", b.Cursor().Col)
	}
	b.MoveLeft(6)
	if b.Cursor().Col != 5 {
		t.Errorf("left underflow should be a no-op: %d", b.Cursor().Col)
	}
	b.MoveLeft(5)
	if b.Cursor().Col != 0 {
		t.Errorf("left: %d", b.Cursor().Col)
	}
}

func TestStartEndOfLine(t *testing.T) {
	b := bufferOf("hello")
	b.MoveEndOfLine()
	if b.Cursor().Col != 5 {
		t.Errorf("end: %d", b.Cursor().Col)
	}
	b.MoveStartOfLine()
	if b.Cursor().Col != 0 {
		t.Errorf("start: %d", b.Cursor().Col)
	}
}

func TestGoToLine(t *testing.T) {
	b := bufferOf("first line", "x", "third")
	b.cursor = Cursor{Line: 0, Col: 7}

	if err := b.GoToLine(3); err != nil {
		t.Fatalf("GoToLine(3): %v", err)
	}
	if b.Cursor() != (Cursor{Line: 2, Col: 5}) {
		t.Errorf("last line, col clamped: %+v", b.Cursor())
	}
	if err := b.GoToLine(2); err != nil {
		t.Fatalf("GoToLine(2): %v", err)
	}
	if b.Cursor() != (Cursor{Line: 1, Col: 1}) {
		t.Errorf("col clamped on short line: %+v", b.Cursor())
	}
}

func TestGoToLineOutOfRange(t *testing.T) {
	b := bufferOf("a", "b", "c")
	b.cursor = Cursor{Line: 1, Col: 1}

	for _, n := range []int{0, -1, 4, 5} {
		err := b.GoToLine(n)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("GoToLine(%d): expected ErrOutOfRange, got %v", n, err)
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) || oor.Line != n {
			t.Errorf("GoToLine(%d): error should carry the line, got %v", n, err)
		}
	}
	if b.Cursor() != (Cursor{Line: 1, Col: 1}) || b.UndoLen() != 0 {
		t.Errorf("buffer changed on failure: %+v", b.Cursor())
	}
	if got := b.GoToLine(5).Error(); got != "line 5 is out of range" {
		t.Errorf("message: %q", got)
	}
}

func TestInsertChar(t *testing.T) {
	b := bufferOf("hello")
	b.InsertChar('H')
	if b.Line() != "Hhello" || b.Cursor().Col != 1 {
		t.Errorf("insert at 0: %q %+v", b.Line(), b.Cursor())
	}
	b.MoveEndOfLine()
	b.InsertChar('!')
	if b.Line() != "Hhello!" || b.Cursor().Col != 7 {
		t.Errorf("insert at end: %q %+v", b.Line(), b.Cursor())
	}
	b.cursor.Col = 2
	b.InsertChar('é')
	if b.Line() != "Hhéello!" || b.Cursor().Col != 3 {
		t.Errorf("insert multibyte: %q %+v", b.Line(), b.Cursor())
	}
}

func TestNewline(t *testing.T) {
	b := bufferOf("helloworld")
	b.cursor.Col = 5
	b.Newline()
	if !slices.Equal(b.Lines(), []string{"hello", "world"}) {
		t.Errorf("split: %q", b.Lines())
	}
	if b.Cursor() != (Cursor{Line: 1, Col: 0}) {
		t.Errorf("cursor: %+v", b.Cursor())
	}
	b.MoveEndOfLine()
	b.Newline()
	if !slices.Equal(b.Lines(), []string{"hello", "world", ""}) {
		t.Errorf("split at end: %q", b.Lines())
	}
}

func TestRemoveAt(t *testing.T) {
	b := bufferOf("abc", "def")
	b.cursor.Col = 1
	b.RemoveAt()
	if b.Line() != "ac" || b.Cursor().Col != 1 {
		t.Errorf("delete char: %q %+v", b.Line(), b.Cursor())
	}
	b.MoveEndOfLine()
	b.RemoveAt()
	if !slices.Equal(b.Lines(), []string{"acdef"}) || b.Cursor() != (Cursor{Line: 0, Col: 2}) {
		t.Errorf("join next: %q %+v", b.Lines(), b.Cursor())
	}
}

func TestRemoveBefore(t *testing.T) {
	b := bufferOf("abc", "def")
	b.cursor = Cursor{Line: 1, Col: 2}
	b.RemoveBefore()
	if b.LineAt(1) != "df" || b.Cursor() != (Cursor{Line: 1, Col: 1}) {
		t.Errorf("backspace char: %q %+v", b.LineAt(1), b.Cursor())
	}
	b.MoveStartOfLine()
	b.RemoveBefore()
	if !slices.Equal(b.Lines(), []string{"abcdf"}) || b.Cursor() != (Cursor{Line: 0, Col: 3}) {
		t.Errorf("join previous: %q %+v", b.Lines(), b.Cursor())
	}
}

func TestRemoveAtDocumentBoundaries(t *testing.T) {
	b := bufferOf("abc", "def")
	b.cursor = Cursor{Line: 1, Col: 3}
	b.RemoveAt()
	if !slices.Equal(b.Lines(), []string{"abc", "def"}) || b.UndoLen() != 0 {
		t.Errorf("delete at end of document should do nothing: %q undo=%d", b.Lines(), b.UndoLen())
	}

	b.cursor = Cursor{}
	b.RemoveBefore()
	if !slices.Equal(b.Lines(), []string{"abc", "def"}) || b.UndoLen() != 0 {
		t.Errorf("backspace at start of document should do nothing: %q undo=%d", b.Lines(), b.UndoLen())
	}
	if b.Cursor() != (Cursor{}) {
		t.Errorf("cursor: %+v", b.Cursor())
	}
}

func TestCursorOrder(t *testing.T) {
	tests := []struct {
		a, b Cursor
		want int
	}{
		{Cursor{0, 0}, Cursor{0, 0}, 0},
		{Cursor{0, 5}, Cursor{1, 0}, -1},
		{Cursor{2, 0}, Cursor{1, 9}, 1},
		{Cursor{1, 2}, Cursor{1, 3}, -1},
		{Cursor{1, 4}, Cursor{1, 3}, 1},
	}
	for _, tc := range tests {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("%+v.Compare(%+v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := tc.a.Less(tc.b); got != (tc.want < 0) {
			t.Errorf("%+v.Less(%+v) = %v", tc.a, tc.b, got)
		}
	}
}
