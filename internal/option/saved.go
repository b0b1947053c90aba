package option

import (
	"fmt"
	"io"
	"strings"
)

// ApplySaved overlays saved NAME=value assignments read from r.
//
// Values may be wrapped in double quotes. Keys with no matching option are
// ignored, and options without a saved value keep their schema default.
// It returns the number of options updated.
func (s *Store) ApplySaved(r io.Reader) (int, error) {
	applied := 0

	err := eachLine(r, func(line string, ok bool) {
		if !ok {
			return
		}
		name, value, valid := ParseAssignment(line)
		if !valid {
			return
		}
		if s.SetByName(name, value) {
			applied++
		}
	})
	if err != nil {
		return applied, fmt.Errorf("failed to read saved values: %w", err)
	}

	return applied, nil
}

// ParseAssignment splits a NAME=value line. Comments, blank lines and lines
// without a name are rejected.
func ParseAssignment(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	name, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}

	return name, Unquote(strings.TrimSpace(value)), true
}

// Unquote strips one pair of surrounding double quotes
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// Quote wraps v in double quotes for saving
func Quote(v string) string {
	return `"` + v + `"`
}
