package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "menuconfig"
	configFile = "config.yaml"
	logFile    = "menuconfig.log"

	// CurrentVersion is the preferences file format version
	CurrentVersion = 1
)

// Environment overrides
const (
	EnvConfigDir  = "MENUCONFIG_CONFIG_DIR"
	EnvConfigFile = "MENUCONFIG_CONFIG_FILE"
	EnvDeviceDir  = "MENUCONFIG_DEVICE_DIR"
	EnvLogLevel   = "MENUCONFIG_LOG_LEVEL"
)

// Preferences holds user settings for the editor.
type Preferences struct {
	Version        int      `yaml:"version"`
	Title          string   `yaml:"title"`                     // Banner shown above the option list
	ConfigFile     string   `yaml:"config_file"`               // Saved values file
	Header         []string `yaml:"header,omitempty"`          // Comment lines written above saved values
	DeviceDir      string   `yaml:"device_dir"`                // Directory scanned for disks
	DevicePrefixes []string `yaml:"device_prefixes,omitempty"` // Device name prefixes treated as disks
	LogLevel       string   `yaml:"log_level,omitempty"`       // Empty disables logging
	LogFile        string   `yaml:"log_file,omitempty"`        // Defaults to menuconfig.log in the config dir
}

// Default returns preferences with default values.
func Default() *Preferences {
	return &Preferences{
		Version:    CurrentVersion,
		Title:      "PIGEONLINUX CONFIGURATION",
		ConfigFile: ".config",
		Header: []string{
			"PigeonLinux Installation Configuration",
			"Generated by menuconfig",
		},
		DeviceDir:      "/dev",
		DevicePrefixes: []string{"sd", "hd", "nvme", "vd"},
	}
}

// GetConfigDir returns the directory holding the preferences file.
//
// MENUCONFIG_CONFIG_DIR wins when set. Otherwise the per-user config base of
// the platform is used with a menuconfig subdirectory: %LOCALAPPDATA% on
// Windows, $XDG_CONFIG_HOME elsewhere except macOS, and ~/.config as the
// last resort.
func GetConfigDir() (string, error) {
	return configDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

// configDir resolves the preferences directory for goos.
func configDir(goos string, getenv func(string) string, homeDir func() (string, error)) (string, error) {
	if dir := getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	var bases []string
	switch goos {
	case "windows":
		bases = append(bases, getenv("LOCALAPPDATA"))
		if profile := getenv("USERPROFILE"); profile != "" {
			bases = append(bases, filepath.Join(profile, "AppData", "Local"))
		}
	case "darwin":
		// always ~/.config
	default:
		bases = append(bases, getenv("XDG_CONFIG_HOME"))
	}
	for _, base := range bases {
		if base != "" {
			return filepath.Join(base, appName), nil
		}
	}

	if goos == "windows" {
		return "", errors.New("cannot determine config directory: LOCALAPPDATA and USERPROFILE not set")
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// LoadFrom reads preferences from path. A missing file yields defaults.
// Fields left empty in the file keep their default values.
func LoadFrom(path string) (*Preferences, error) {
	prefs := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		var file Preferences
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if file.Version != 0 && file.Version != CurrentVersion {
			return nil, fmt.Errorf("unsupported config version: %d (expected %d)", file.Version, CurrentVersion)
		}
		prefs.merge(&file)
	}

	if prefs.LogFile == "" {
		prefs.LogFile = filepath.Join(filepath.Dir(path), logFile)
	}
	prefs.applyEnv()

	return prefs, nil
}

// merge copies every non-empty field of other into p
func (p *Preferences) merge(other *Preferences) {
	if other.Title != "" {
		p.Title = other.Title
	}
	if other.ConfigFile != "" {
		p.ConfigFile = other.ConfigFile
	}
	if other.Header != nil {
		p.Header = other.Header
	}
	if other.DeviceDir != "" {
		p.DeviceDir = other.DeviceDir
	}
	if len(other.DevicePrefixes) > 0 {
		p.DevicePrefixes = other.DevicePrefixes
	}
	if other.LogLevel != "" {
		p.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		p.LogFile = other.LogFile
	}
}

func (p *Preferences) applyEnv() {
	if v := os.Getenv(EnvConfigFile); v != "" {
		p.ConfigFile = v
	}
	if v := os.Getenv(EnvDeviceDir); v != "" {
		p.DeviceDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		p.LogLevel = v
	}
}

// SaveTo writes the preferences to path.
// Performs an atomic write to prevent corruption on crash.
func (p *Preferences) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# menuconfig preferences\n# Location: " + path + "\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
