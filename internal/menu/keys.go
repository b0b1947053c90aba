package menu

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// KeyCode identifies a decoded key
type KeyCode int

const (
	KeyNone KeyCode = iota // Unrecognized input, ignored
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyBackspace
	KeyEscape
	KeyInterrupt // Ctrl-C or Ctrl-D
)

const (
	keyEsc        = 0x1b
	keyCtrlC      = 0x03
	keyCtrlD      = 0x04
	keyCtrlH      = 0x08
	keyDelete     = 0x7f
	csiIntroducer = '['
	ss3Introducer = 'O'
)

// Key is one keypress
type Key struct {
	Code KeyCode
	Rune rune // Set for KeyRune
}

// String returns the key name used by the ui key bindings.
// Letters are lower-cased so bindings match either case.
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return strings.ToLower(string(k.Rune))
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "esc"
	case KeyInterrupt:
		return "ctrl+c"
	default:
		return ""
	}
}

// Decoder turns raw terminal input into keys
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until a key is read. The error is the read error of the
// underlying input, io.EOF included.
func (d *Decoder) Next() (Key, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case keyEsc:
		return d.escape(), nil
	case '\r', '\n':
		return Key{Code: KeyEnter}, nil
	case ' ':
		return Key{Code: KeySpace}, nil
	case keyDelete, keyCtrlH:
		return Key{Code: KeyBackspace}, nil
	case keyCtrlC, keyCtrlD:
		return Key{Code: KeyInterrupt}, nil
	}

	if unicode.IsPrint(r) {
		return Key{Code: KeyRune, Rune: r}, nil
	}
	return Key{Code: KeyNone}, nil
}

// escape decodes the bytes after ESC. An arrow key is ESC [ X or ESC O X;
// any other byte after ESC is consumed and reported as a bare Escape.
// A read error inside the sequence ends it; the error surfaces on the
// following Next.
func (d *Decoder) escape() Key {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Key{Code: KeyEscape}
	}
	if r != csiIntroducer && r != ss3Introducer {
		return Key{Code: KeyEscape}
	}

	r, _, err = d.r.ReadRune()
	if err != nil {
		return Key{Code: KeyNone}
	}
	switch r {
	case 'A':
		return Key{Code: KeyUp}
	case 'B':
		return Key{Code: KeyDown}
	case 'C':
		return Key{Code: KeyRight}
	case 'D':
		return Key{Code: KeyLeft}
	}
	return Key{Code: KeyNone}
}
