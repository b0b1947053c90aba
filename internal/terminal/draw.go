package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Write writes raw text without a line ending.
// Safe for concurrent use; each call reaches the output in one piece.
func (s *Surface) Write(text string) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	_, _ = io.WriteString(s.out, text)
}

// Printf writes formatted text without a line ending
func (s *Surface) Printf(format string, args ...any) {
	s.Write(fmt.Sprintf(format, args...))
}

// Line clears the current line, writes text and moves to the next line.
// Text wider than the terminal is cut at the last column so that one call
// always occupies exactly one screen row.
func (s *Surface) Line(text string) {
	width, _ := s.Size()
	s.ClearLine()
	s.Write(ansi.Truncate(text, width, "") + crlf)
}

// Blank writes an empty, cleared line
func (s *Surface) Blank() {
	s.Line("")
}

// Home moves the cursor to the top-left corner
func (s *Surface) Home() {
	s.Write(seqHome)
}

// ClearScreen erases the whole screen and homes the cursor.
// The editor only uses it when a dialog opens or closes.
func (s *Surface) ClearScreen() {
	s.Write(seqClearScreen)
}

// CursorUp moves the cursor n lines up and to the first column
func (s *Surface) CursorUp(n int) {
	if n > 0 {
		s.Printf("\033[%dA", n)
	}
	s.Write("\r")
}

// ClearLine erases from the cursor to the end of the line
func (s *Surface) ClearLine() {
	s.Write(seqClearLine)
}

// HideCursor hides the cursor
func (s *Surface) HideCursor() {
	s.Write(seqHideCursor)
}

// ShowCursor shows the cursor
func (s *Surface) ShowCursor() {
	s.Write(seqShowCursor)
}

// Pad returns the left padding that centers content of the given display
// width on the current terminal.
func (s *Surface) Pad(contentWidth int) int {
	width, _ := s.Size()
	pad := (width - contentWidth) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// CenterText writes text centered on its own line.
// Width is measured in cells, ignoring ANSI styling.
func (s *Surface) CenterText(text string) {
	s.Line(strings.Repeat(" ", s.Pad(lipgloss.Width(text))) + text)
}

// CenterBlock centers a multi-line block as a unit, keeping its lines
// aligned with each other. It returns the number of lines written.
func (s *Surface) CenterBlock(block string) int {
	lines := strings.Split(block, "\n")
	indent := strings.Repeat(" ", s.Pad(lipgloss.Width(block)))
	for _, line := range lines {
		s.Line(indent + line)
	}
	return len(lines)
}

// BoxedText draws text inside the border of style, centered.
// It returns the number of lines written.
func (s *Surface) BoxedText(text string, style lipgloss.Style) int {
	return s.CenterBlock(style.Render(text))
}

// Rule writes a line of n copies of ch
func (s *Surface) Rule(ch rune, n int) {
	if n < 0 {
		n = 0
	}
	s.Line(strings.Repeat(string(ch), n))
}
