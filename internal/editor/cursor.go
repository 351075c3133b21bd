package editor

// Cursor is a position in a document. Col counts runes, not bytes.
type Cursor struct {
	Line int
	Col  int
}

// Compare orders cursors line-major, then by column.
// It returns -1, 0 or +1.
func (c Cursor) Compare(o Cursor) int {
	switch {
	case c.Line < o.Line:
		return -1
	case c.Line > o.Line:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	}
	return 0
}

// Less reports whether c comes before o.
func (c Cursor) Less(o Cursor) bool {
	return c.Compare(o) < 0
}
