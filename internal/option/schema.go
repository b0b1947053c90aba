package option

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Schema line layout
const (
	fieldName = iota
	fieldDefault
	fieldDescription
	fieldType
	fieldChoices

	minFields = 4
	maxFields = 5
)

// ParseStats summarizes a schema parse
type ParseStats struct {
	Lines      int // Lines read
	Loaded     int // Options added to the store
	Skipped    int // Comments, blanks and malformed lines
	Duplicates int // Lines whose name was already loaded
	Truncated  int // Valid lines dropped because the store was full
	Choices    int // Choices dropped because an option hit MaxChoices
}

// ParseSchema reads option definitions from r.
//
// Malformed lines, including lines over MaxLineLength, are skipped. Once the
// store holds MaxOptions options the remaining definitions are counted in
// ParseStats.Truncated and dropped.
// Only read errors are returned.
func ParseSchema(r io.Reader) (*Store, ParseStats, error) {
	store := NewStore()
	var stats ParseStats

	err := eachLine(r, func(line string, ok bool) {
		stats.Lines++

		opt, dropped, valid := parseSchemaLine(line)
		if !ok || !valid {
			stats.Skipped++
			return
		}

		if err := store.Add(opt); err != nil {
			switch {
			case errors.Is(err, ErrTooManyOptions):
				stats.Truncated++
			case errors.Is(err, ErrDuplicateName):
				stats.Duplicates++
			default:
				stats.Skipped++
			}
			return
		}
		stats.Loaded++
		stats.Choices += dropped
	})
	if err != nil {
		return store, stats, fmt.Errorf("failed to read schema: %w", err)
	}

	return store, stats, nil
}

// parseSchemaLine parses a single definition line. The second result is the
// number of choices beyond MaxChoices.
func parseSchemaLine(line string) (Option, int, bool) {
	line = strings.TrimRight(line, "\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return Option{}, 0, false
	}

	fields := strings.Split(line, "|")
	if len(fields) < minFields || fields[fieldName] == "" {
		return Option{}, 0, false
	}
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	opt := Option{
		Name:        fields[fieldName],
		Value:       fields[fieldDefault],
		Description: fields[fieldDescription],
		Kind:        ParseKind(fields[fieldType]),
	}

	dropped := 0
	if len(fields) > fieldChoices && fields[fieldChoices] != "" {
		opt.Choices = splitNonEmpty(fields[fieldChoices], ",")
		if len(opt.Choices) > MaxChoices {
			dropped = len(opt.Choices) - MaxChoices
			opt.Choices = opt.Choices[:MaxChoices]
		}
	}

	return opt, dropped, true
}

// splitNonEmpty splits s on sep and drops empty fields
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
