package option

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength caps a schema or saved-values line in bytes. Longer lines
// are reported as malformed and skipped; the lines after them still load.
const MaxLineLength = 64 * 1024

// eachLine calls fn for every line of r without its line ending. ok is
// false for a line longer than MaxLineLength, in which case line is empty.
// Only read errors are returned.
func eachLine(r io.Reader, fn func(line string, ok bool)) error {
	br := bufio.NewReader(r)

	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong = true
				buf = buf[:0]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if isPrefix {
			continue
		}

		fn(string(buf), !tooLong)
		buf = buf[:0]
		tooLong = false
	}
}
