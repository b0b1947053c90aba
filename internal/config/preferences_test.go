package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !contains(configDir, "menuconfig") {
		t.Errorf("GetConfigDir() = %v, should contain 'menuconfig'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !contains(configDir, "AppData") && !contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "menuconfig"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}

	path, _ := GetConfigPath()
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	prefs, err := LoadFrom(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	want := Default()
	want.LogFile = filepath.Join(dir, "menuconfig.log")
	if !reflect.DeepEqual(prefs, want) {
		t.Errorf("LoadFrom() = %+v, want defaults %+v", prefs, want)
	}
}

func TestLoadFrom_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
title: MY DISTRO
config_file: /etc/installer.conf
device_dir: /tmp/dev
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	prefs, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if prefs.Title != "MY DISTRO" {
		t.Errorf("Title = %q", prefs.Title)
	}
	if prefs.ConfigFile != "/etc/installer.conf" {
		t.Errorf("ConfigFile = %q", prefs.ConfigFile)
	}
	if prefs.DeviceDir != "/tmp/dev" {
		t.Errorf("DeviceDir = %q", prefs.DeviceDir)
	}
	if prefs.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", prefs.LogLevel)
	}
	if !reflect.DeepEqual(prefs.DevicePrefixes, Default().DevicePrefixes) {
		t.Errorf("DevicePrefixes = %v, want defaults kept", prefs.DevicePrefixes)
	}
	if len(prefs.Header) != 2 {
		t.Errorf("Header = %v, want defaults kept", prefs.Header)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "title: [unterminated"},
		{"unsupported version", "version: 7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() error = nil, want error")
			}
		})
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigFile, "/run/override.config")
	t.Setenv(EnvDeviceDir, "/run/dev")
	t.Setenv(EnvLogLevel, "warn")

	prefs, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if prefs.ConfigFile != "/run/override.config" {
		t.Errorf("ConfigFile = %q, want env override", prefs.ConfigFile)
	}
	if prefs.DeviceDir != "/run/dev" {
		t.Errorf("DeviceDir = %q, want env override", prefs.DeviceDir)
	}
	if prefs.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want env override", prefs.LogLevel)
	}
}

func TestPreferences_SaveTo(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	prefs := Default()
	prefs.Title = "SAVED"
	if err := prefs.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("SaveTo() left a temporary file behind")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Title != "SAVED" {
		t.Errorf("round trip Title = %q, want SAVED", loaded.Title)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDeviceDir, "")
	t.Setenv(EnvLogLevel, "")
}

func TestConfigDir(t *testing.T) {
	home := func() (string, error) { return "/home/pigeon", nil }
	noHome := func() (string, error) { return "", errors.New("$HOME is not defined") }

	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		home    func() (string, error)
		want    string
		wantErr bool
	}{
		{
			name: "override wins everywhere",
			goos: "linux",
			env:  map[string]string{EnvConfigDir: "/run/installer", "XDG_CONFIG_HOME": "/xdg"},
			home: noHome,
			want: "/run/installer",
		},
		{
			name: "xdg",
			goos: "linux",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg"},
			home: home,
			want: filepath.Join("/xdg", "menuconfig"),
		},
		{
			name: "linux home",
			goos: "linux",
			home: home,
			want: filepath.Join("/home/pigeon", ".config", "menuconfig"),
		},
		{
			name: "darwin ignores xdg",
			goos: "darwin",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg"},
			home: home,
			want: filepath.Join("/home/pigeon", ".config", "menuconfig"),
		},
		{
			name: "windows local app data",
			goos: "windows",
			env:  map[string]string{"LOCALAPPDATA": "/appdata", "USERPROFILE": "/profile"},
			home: noHome,
			want: filepath.Join("/appdata", "menuconfig"),
		},
		{
			name: "windows user profile",
			goos: "windows",
			env:  map[string]string{"USERPROFILE": "/profile"},
			home: noHome,
			want: filepath.Join("/profile", "AppData", "Local", "menuconfig"),
		},
		{
			name:    "windows nothing set",
			goos:    "windows",
			home:    home,
			wantErr: true,
		},
		{
			name:    "no home",
			goos:    "linux",
			home:    noHome,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }

			got, err := configDir(tt.goos, getenv, tt.home)
			if tt.wantErr {
				if err == nil {
					t.Errorf("configDir() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("configDir() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("configDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
