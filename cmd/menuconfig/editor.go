package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pigeonlinux/menuconfig/internal/config"
	"github.com/pigeonlinux/menuconfig/internal/disks"
	"github.com/pigeonlinux/menuconfig/internal/dotconfig"
	"github.com/pigeonlinux/menuconfig/internal/logging"
	"github.com/pigeonlinux/menuconfig/internal/menu"
	"github.com/pigeonlinux/menuconfig/internal/terminal"
)

// defaultSchemaFile is read when no schema argument is given
const defaultSchemaFile = "menu.conf"

func runEditor(cmd *cobra.Command, args []string) error {
	prefs, prefsPath, err := loadPreferences()
	if err != nil {
		return err
	}

	if err := logging.Initialize(prefs.LogLevel, prefs.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logging.Sync()

	writeDefaultPreferences(prefsPath)

	schema := schemaPath(args)
	store, err := dotconfig.LoadStore(schema, prefs.ConfigFile)
	if err != nil {
		logging.Warn("Configuration loaded with problems", zap.Error(err))
	}
	logging.Info("Starting editor",
		zap.String("schema", schema),
		zap.String("config", prefs.ConfigFile),
		zap.Int("options", store.Len()),
	)

	// Colors are fixed; never query the terminal for its background
	lipgloss.SetHasDarkBackground(true)

	surface := terminal.New(os.Stdin, os.Stdout)
	if err := surface.EnterRaw(); err != nil {
		return fmt.Errorf("cannot start editor: %w", err)
	}

	guard := terminal.NewGuard(surface.Restore)
	defer guard.Release()
	defer guard.Recover()

	editor := menu.New(store, surface, os.Stdin, editorOptions(prefs))
	return sessionResult(editor.Run())
}

// loadPreferences reads the user preferences and returns them with the
// path they were read from. The path is empty when no config directory
// can be determined; defaults are used then.
func loadPreferences() (*config.Preferences, string, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		prefs, err := config.LoadFrom("")
		return prefs, "", err
	}

	prefs, err := config.LoadFrom(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, path, nil
}

// writeDefaultPreferences creates the preferences file on first run so the
// user has a template to edit. Failures are only logged.
func writeDefaultPreferences(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := config.Default().SaveTo(path); err != nil {
		logging.Warn("Failed to write default preferences", zap.String("path", path), zap.Error(err))
		return
	}
	logging.Info("Wrote default preferences", zap.String("path", path))
}

// schemaPath returns the schema file named on the command line or the default
func schemaPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return defaultSchemaFile
}

// editorOptions maps preferences onto the controller options
func editorOptions(prefs *config.Preferences) menu.Options {
	return menu.Options{
		ConfigFile: prefs.ConfigFile,
		Header:     prefs.Header,
		Title:      prefs.Title,
		Disks: disks.Scanner{
			Dir:      prefs.DeviceDir,
			Prefixes: prefs.DevicePrefixes,
		},
	}
}

// sessionResult maps the end of an editing session to the command result.
// Quitting and closed input are normal exits.
func sessionResult(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		logging.Info("Input closed, leaving editor")
		return nil
	case errors.Is(err, menu.ErrInterrupted):
		logging.Info("Editor interrupted")
		return err
	default:
		return err
	}
}
