package dotconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/pigeonlinux/menuconfig/internal/logging"
	"github.com/pigeonlinux/menuconfig/internal/option"
)

// LoadSchemaFile parses the schema at path.
// On error the returned store is empty (never nil).
func LoadSchemaFile(path string) (*option.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return option.NewStore(), fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()

	store, stats, err := option.ParseSchema(f)
	logging.LogSchemaLoad(path, stats.Loaded, stats.Skipped, stats.Truncated)
	if err != nil {
		return store, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Overlay applies the saved values at path to store.
// A missing file is not an error; it just means nothing was saved yet.
func Overlay(store *option.Store, path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open saved values: %w", err)
	}
	defer f.Close()

	applied, err := store.ApplySaved(f)
	if err != nil {
		return applied, fmt.Errorf("%s: %w", path, err)
	}
	return applied, nil
}

// LoadStore builds the session's option set: the schema at schemaPath, the
// built-in defaults when the schema yields no options, then the saved values
// at configPath.
//
// The store is always usable. The error, if any, joins every non-fatal
// problem met on the way and is meant for logging.
func LoadStore(schemaPath, configPath string) (*option.Store, error) {
	var errs []error

	store, err := LoadSchemaFile(schemaPath)
	if err != nil {
		errs = append(errs, err)
	}
	if store.Len() == 0 {
		logging.Info("Schema yielded no options, using defaults")
		store = option.Defaults()
	}

	if _, err := Overlay(store, configPath); err != nil {
		errs = append(errs, err)
	}

	return store, errors.Join(errs...)
}
