package option

import (
	"fmt"
	"strings"
)

// Kind identifies how an option's value is edited and displayed.
type Kind int

const (
	// KindString is a free-form value
	KindString Kind = iota
	// KindBool is a y/n flag
	KindBool
	// KindChoice is a value picked from Option.Choices
	KindChoice
	// KindDisk is a block device path picked from the disk list
	KindDisk
)

// String returns the schema spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindChoice:
		return "choice"
	case KindDisk:
		return "disk"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a schema type field to a Kind.
// Matching is case-sensitive; anything unrecognized is KindString.
func ParseKind(s string) Kind {
	switch s {
	case "bool":
		return KindBool
	case "choice":
		return KindChoice
	case "disk":
		return KindDisk
	default:
		return KindString
	}
}

// Boolean values as stored and saved
const (
	Yes = "y"
	No  = "n"
)

// Option is a single configuration entry.
type Option struct {
	Name        string   // Unique identifier, also the saved key
	Value       string   // Current value ("y"/"n" for KindBool)
	Description string   // Label shown next to the value
	Kind        Kind     // Editing behaviour
	Choices     []string // Allowed values for KindChoice (advisory)
}

// IsBool reports whether the option is a y/n flag
func (o Option) IsBool() bool {
	return o.Kind == KindBool
}

// Enabled reports whether a bool option is set to "y"
func (o Option) Enabled() bool {
	return o.Kind == KindBool && o.Value == Yes
}

// NormalizeBool maps the usual spellings of true to "y" and everything else
// to "n".
func NormalizeBool(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1", "on":
		return Yes
	default:
		return No
	}
}

// normalize returns v as it should be stored for an option of kind k
func normalize(k Kind, v string) string {
	if k == KindBool {
		return NormalizeBool(v)
	}
	return v
}

// Clone returns a deep copy of o
func (o Option) Clone() Option {
	if o.Choices != nil {
		o.Choices = append([]string(nil), o.Choices...)
	}
	return o
}
