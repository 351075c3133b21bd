package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/scribe/internal/app"
)

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf      strings.Builder
	tabWidth int
}

func NewRenderer(tabWidth int) *Renderer {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Renderer{tabWidth: tabWidth}
}

// RenderFrame draws the full screen for v: the current line on the top row,
// the dialog prompt above the status bar when one is open, the status bar
// on the last row, and the caret.
func (r *Renderer) RenderFrame(v app.View, width, height int) string {
	r.buf.Reset()

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")

	// Clear screen and move to top-left.
	r.buf.WriteString("\x1b[2J\x1b[H")

	width = max(width, 1)
	height = max(height, 3)

	line := expandTabs(v.Line, r.tabWidth)
	caret := displayCol(v.Line, v.Cursor.Col, r.tabWidth)
	offset := max(0, caret-width+1)
	r.buf.WriteString(runewidth.Truncate(skipCells(line, offset), width, ""))

	caretRow, caretCol := 1, caret-offset+1
	if d := v.Dialog; d != nil {
		label := " " + d.Label + ": "
		prompt := label + d.Line
		r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", height-1))
		r.buf.WriteString(runewidth.Truncate(prompt, width, ""))
		caretRow = height - 1
		caretCol = runewidth.StringWidth(label) + displayCol(d.Line, d.Col, r.tabWidth) + 1
	}

	r.renderStatusBar(width, height, statusLeft(v), statusRight(v))

	// Position the cursor.
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;%dH", caretRow, min(caretCol, width)))

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

func (r *Renderer) renderStatusBar(width, height int, left, right string) {
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", height))
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")

	leftWidth := runewidth.StringWidth(left)
	rightWidth := runewidth.StringWidth(right)
	if leftWidth+rightWidth >= width {
		// Truncate left side if needed.
		left = runewidth.Truncate(left, max(width-rightWidth-1, 0), "")
		leftWidth = runewidth.StringWidth(left)
	}

	gap := max(width-leftWidth-rightWidth, 0)

	r.buf.WriteString(left)
	r.buf.WriteString(strings.Repeat(" ", gap))
	r.buf.WriteString(runewidth.Truncate(right, width-leftWidth-gap, ""))

	// Reset attributes.
	r.buf.WriteString("\x1b[0m")
}

// statusLeft shows the status message when there is one, else the name.
func statusLeft(v app.View) string {
	if v.Status != "" {
		return " " + v.Status
	}
	return " " + v.Name
}

func statusRight(v app.View) string {
	return fmt.Sprintf("Ln %d/%d, Col %d  %s ", v.Cursor.Line+1, v.LineCount, v.Cursor.Col+1, v.Mode)
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	cells := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - cells%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			cells += n
			continue
		}
		sb.WriteRune(r)
		cells += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// displayCol converts a rune column in s to a screen cell column.
func displayCol(s string, col, tabWidth int) int {
	cells := 0
	i := 0
	for _, r := range s {
		if i >= col {
			break
		}
		if r == '\t' {
			cells += tabWidth - cells%tabWidth
		} else {
			cells += runewidth.RuneWidth(r)
		}
		i++
	}
	return cells
}

// skipCells drops the first n screen cells of s.
func skipCells(s string, n int) string {
	if n <= 0 {
		return s
	}
	cells := 0
	for i, r := range s {
		if cells >= n {
			return s[i:]
		}
		cells += runewidth.RuneWidth(r)
	}
	return ""
}
