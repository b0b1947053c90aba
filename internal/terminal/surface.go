package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Fallback geometry when the size cannot be queried
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNotTerminal is returned by EnterRaw when input is not a terminal
var ErrNotTerminal = errors.New("input is not a terminal")

// ANSI control sequences
const (
	seqHome        = "\033[H"
	seqClearScreen = "\033[2J\033[H"
	seqClearLine   = "\033[K"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	crlf           = "\r\n"
)

// Surface is the editor's view of the terminal.
type Surface struct {
	in  *os.File
	out io.Writer

	// fixed geometry, used when width > 0
	width, height int

	wmu sync.Mutex // serializes writes to out

	mu       sync.Mutex
	state    *term.State
	restored bool
	once     sync.Once
	err      error
}

// New creates a Surface reading from in and drawing to out
func New(in *os.File, out io.Writer) *Surface {
	return &Surface{in: in, out: out}
}

// NewFixed creates a Surface with constant geometry and no input side.
// EnterRaw and Restore are no-ops on it.
func NewFixed(out io.Writer, width, height int) *Surface {
	return &Surface{out: out, width: width, height: height}
}

// EnterRaw switches the input to raw mode and hides the cursor.
func (s *Surface) EnterRaw() error {
	if s.in == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil {
		return nil
	}

	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	s.state = state

	s.HideCursor()
	return nil
}

// Restore puts the terminal back into the mode it had before EnterRaw and
// shows the cursor. Only the first call does anything; later calls return
// the first call's result. Safe to call from a signal handler goroutine.
func (s *Surface) Restore() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.restored = true
		if s.state != nil {
			if err := term.Restore(int(s.in.Fd()), s.state); err != nil {
				s.err = fmt.Errorf("failed to restore terminal: %w", err)
			}
		}
		s.ShowCursor()
	})
	return s.err
}

// IsRaw reports whether the terminal is currently in raw mode
func (s *Surface) IsRaw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil && !s.restored
}

// Size returns the current width and height in cells.
// It is queried on every call because the terminal may be resized between
// frames.
func (s *Surface) Size() (width, height int) {
	if s.width > 0 {
		return s.width, s.height
	}

	for _, f := range s.files() {
		w, h, err := term.GetSize(int(f.Fd()))
		if err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return DefaultWidth, DefaultHeight
}

// files returns the candidates for a size query, output first
func (s *Surface) files() []*os.File {
	var files []*os.File
	if f, ok := s.out.(*os.File); ok {
		files = append(files, f)
	}
	if s.in != nil {
		files = append(files, s.in)
	}
	return files
}
