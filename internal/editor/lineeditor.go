package editor

// LineEditor is a single-line text input for short prompts such as
// "Go to line". It has no line breaks and no history.
type LineEditor struct {
	name string
	line []rune
	col  int
}

func NewLineEditor(name string) *LineEditor {
	return &LineEditor{name: name}
}

// Name returns the prompt label.
func (m *LineEditor) Name() string { return m.name }

// Line returns the text typed so far.
func (m *LineEditor) Line() string { return string(m.line) }

// Col returns the cursor column in runes.
func (m *LineEditor) Col() int { return m.col }

func (m *LineEditor) MoveLeft(delta int) {
	if delta < 0 || delta > m.col {
		return
	}
	m.col -= delta
}

func (m *LineEditor) MoveRight(delta int) {
	if delta < 0 {
		return
	}
	m.col = min(m.col+delta, len(m.line))
}

func (m *LineEditor) MoveStartOfLine() {
	m.col = 0
}

func (m *LineEditor) MoveEndOfLine() {
	m.col = len(m.line)
}

// InsertChar inserts ch at the cursor and advances the cursor.
func (m *LineEditor) InsertChar(ch rune) {
	m.Insert(string(ch))
}

// Insert inserts text at the cursor and moves the cursor past it.
// Line breaks in text are dropped.
func (m *LineEditor) Insert(text string) {
	var ins []rune
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		ins = append(ins, r)
	}
	if len(ins) == 0 {
		return
	}
	line := make([]rune, 0, len(m.line)+len(ins))
	line = append(line, m.line[:m.col]...)
	line = append(line, ins...)
	line = append(line, m.line[m.col:]...)
	m.line = line
	m.col += len(ins)
}

// RemoveAt deletes the character under the cursor. Nothing happens at the
// end of the line.
func (m *LineEditor) RemoveAt() {
	if m.col >= len(m.line) {
		return
	}
	m.line = append(m.line[:m.col:m.col], m.line[m.col+1:]...)
}

// RemoveBefore deletes the character before the cursor.
func (m *LineEditor) RemoveBefore() {
	if m.col == 0 {
		return
	}
	m.line = append(m.line[:m.col-1:m.col-1], m.line[m.col:]...)
	m.col--
}
