package option

import (
	"errors"
	"fmt"
)

// Capacity limits
const (
	MaxOptions = 50 // Options per store
	MaxChoices = 10 // Choices per option
)

var (
	// ErrTooManyOptions is returned by Add when the store already holds MaxOptions
	ErrTooManyOptions = errors.New("option store is full")
	// ErrDuplicateName is returned by Add when an option with the same name exists
	ErrDuplicateName = errors.New("duplicate option name")
)

// Store is the ordered option set of an editing session.
// It is not safe for concurrent use; the editor loop is its only writer.
type Store struct {
	options []Option
	index   map[string]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Defaults returns the option set used when the schema yields nothing.
func Defaults() *Store {
	s := NewStore()
	_ = s.Add(Option{
		Name:        "TARGET_DISK",
		Value:       "/dev/sda",
		Description: "Target disk device",
		Kind:        KindDisk,
	})
	_ = s.Add(Option{
		Name:        "BOOT_ENABLE",
		Value:       Yes,
		Description: "Enable boot partition",
		Kind:        KindBool,
	})
	return s
}

// Add appends an option. Bool values are normalized and choices beyond
// MaxChoices are dropped.
func (s *Store) Add(opt Option) error {
	if len(s.options) >= MaxOptions {
		return fmt.Errorf("%w: cannot add %q (limit %d)", ErrTooManyOptions, opt.Name, MaxOptions)
	}
	if _, exists := s.index[opt.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, opt.Name)
	}

	opt = opt.Clone()
	opt.Value = normalize(opt.Kind, opt.Value)
	if len(opt.Choices) > MaxChoices {
		opt.Choices = opt.Choices[:MaxChoices]
	}

	s.index[opt.Name] = len(s.options)
	s.options = append(s.options, opt)
	return nil
}

// Len returns the number of options
func (s *Store) Len() int {
	return len(s.options)
}

// At returns a copy of the option at index i.
// It panics if i is out of range, like a slice index.
func (s *Store) At(i int) Option {
	return s.options[i].Clone()
}

// All returns a copy of every option in order
func (s *Store) All() []Option {
	out := make([]Option, len(s.options))
	for i, opt := range s.options {
		out[i] = opt.Clone()
	}
	return out
}

// Index returns the position of the named option, or -1
func (s *Store) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Lookup returns the named option
func (s *Store) Lookup(name string) (Option, bool) {
	i := s.Index(name)
	if i < 0 {
		return Option{}, false
	}
	return s.options[i].Clone(), true
}

// FirstOfKind returns the index of the first option of kind k, or -1
func (s *Store) FirstOfKind(k Kind) int {
	for i, opt := range s.options {
		if opt.Kind == k {
			return i
		}
	}
	return -1
}

// Toggle flips a bool option between "y" and "n".
// It reports whether anything changed; non-bool options are left alone.
func (s *Store) Toggle(i int) bool {
	if !s.valid(i) || s.options[i].Kind != KindBool {
		return false
	}
	if s.options[i].Value == Yes {
		s.options[i].Value = No
	} else {
		s.options[i].Value = Yes
	}
	return true
}

// Set overwrites the value at index i. Bool values are normalized.
// Out of range indexes are ignored.
func (s *Store) Set(i int, value string) {
	if !s.valid(i) {
		return
	}
	s.options[i].Value = normalize(s.options[i].Kind, value)
}

// SetByName overwrites the value of the named option.
// It reports whether the option exists.
func (s *Store) SetByName(name, value string) bool {
	i := s.Index(name)
	if i < 0 {
		return false
	}
	s.Set(i, value)
	return true
}

func (s *Store) valid(i int) bool {
	return i >= 0 && i < len(s.options)
}
