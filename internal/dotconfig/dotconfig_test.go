package dotconfig

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pigeonlinux/menuconfig/internal/option"
)

const installerSchema = "TARGET_DISK|/dev/sda|Target disk|disk\nBOOT_ENABLE|y|Enable boot|bool\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestLoadStore_NoSavedConfig(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "menu.conf", installerSchema)

	store, err := LoadStore(schema, filepath.Join(dir, ".config"))
	if err != nil {
		t.Fatalf("LoadStore() error = %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if got := store.At(0).Value; got != "/dev/sda" {
		t.Errorf("TARGET_DISK = %q, want /dev/sda", got)
	}
	if got := store.At(1).Value; got != "y" {
		t.Errorf("BOOT_ENABLE = %q, want y", got)
	}
}

func TestLoadStore_OverlaysSavedValues(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "menu.conf", installerSchema)
	saved := writeFile(t, dir, ".config", "# header\n\nBOOT_ENABLE=\"n\"\n")

	store, err := LoadStore(schema, saved)
	if err != nil {
		t.Fatalf("LoadStore() error = %v", err)
	}

	if opt, _ := store.Lookup("BOOT_ENABLE"); opt.Value != "n" {
		t.Errorf("BOOT_ENABLE = %q, want n", opt.Value)
	}
}

func TestLoadStore_MissingSchemaUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	saved := writeFile(t, dir, ".config", "TARGET_DISK=\"/dev/vda\"\n")

	store, err := LoadStore(filepath.Join(dir, "missing.conf"), saved)
	if err == nil {
		t.Error("LoadStore() error = nil, want the missing schema reported")
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want the 2 default options", store.Len())
	}
	if opt, _ := store.Lookup("TARGET_DISK"); opt.Value != "/dev/vda" {
		t.Errorf("TARGET_DISK = %q, want saved value over defaults", opt.Value)
	}
}

func TestLoadStore_CommentOnlySchemaUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "menu.conf", "# nothing here\n\nBROKEN|line\n")

	store, err := LoadStore(schema, filepath.Join(dir, ".config"))
	if err != nil {
		t.Fatalf("LoadStore() error = %v", err)
	}
	if _, ok := store.Lookup("BOOT_ENABLE"); !ok {
		t.Error("defaults not used for an empty schema")
	}
}

func TestEncode(t *testing.T) {
	store := option.Defaults()
	store.Toggle(1)

	got := string(Encode(store, DefaultHeader))
	want := "# PigeonLinux Installation Configuration\n" +
		"# Generated by menuconfig\n" +
		"\n" +
		"TARGET_DISK=\"/dev/sda\"\n" +
		"BOOT_ENABLE=\"n\"\n"
	if got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}

	if got := string(Encode(store, nil)); strings.HasPrefix(got, "\n") {
		t.Errorf("Encode() without header starts with a blank line: %q", got)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "menu.conf", installerSchema+
		"HOSTNAME|pigeon|Host name|string\nFS|ext4|Filesystem|choice|ext4,xfs\n")
	path := filepath.Join(dir, ".config")

	store, err := LoadStore(schema, path)
	if err != nil {
		t.Fatalf("LoadStore() error = %v", err)
	}
	store.Set(0, "/dev/nvme0n1")
	store.Toggle(1)
	store.Set(2, "my host")
	store.Set(3, "xfs")

	if err := Save(path, store, DefaultHeader); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := LoadStore(schema, path)
	if err != nil {
		t.Fatalf("LoadStore() after save error = %v", err)
	}
	for i, want := range store.All() {
		if got := reloaded.At(i); got.Value != want.Value {
			t.Errorf("%s = %q after round trip, want %q", want.Name, got.Value, want.Value)
		}
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("Save() left temporary file %s", e.Name())
		}
	}
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".config", "STALE=\"1\"\n")

	if err := Save(path, option.Defaults(), nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "STALE") {
		t.Errorf("Save() kept old content: %q", data)
	}
}

func TestSave_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ".config")

	err := Save(path, option.Defaults(), DefaultHeader)
	if err == nil {
		t.Fatal("Save() error = nil, want error")
	}

	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Save() error = %T, want *SaveError", err)
	}
	if saveErr.Path != path {
		t.Errorf("SaveError.Path = %q, want %q", saveErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save() error does not wrap the cause: %v", err)
	}
}

func TestSave_ReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err := Save(filepath.Join(dir, ".config"), option.Defaults(), nil)

	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Save() error = %v, want *SaveError", err)
	}
	if saveErr.Op != "create" {
		t.Errorf("SaveError.Op = %q, want create", saveErr.Op)
	}
}
