package dotconfig

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"

	"github.com/pigeonlinux/menuconfig/internal/logging"
	"github.com/pigeonlinux/menuconfig/internal/option"
)

// DefaultHeader is written above the saved values when no header is configured
var DefaultHeader = []string{
	"PigeonLinux Installation Configuration",
	"Generated by menuconfig",
}

// Encode renders the saved values file: one comment line per header line, a
// blank line, then NAME="value" for every option in store order.
func Encode(store *option.Store, header []string) []byte {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	for _, line := range header {
		w.WriteString("# " + line + "\n")
	}
	if len(header) > 0 {
		w.WriteString("\n")
	}
	for _, opt := range store.All() {
		w.WriteString(opt.Name + "=" + option.Quote(opt.Value) + "\n")
	}

	w.Flush()
	return buf.Bytes()
}

// Save writes every option to path, replacing the previous file.
// The data goes to a temporary file in the same directory first and is
// renamed into place, so a failed save leaves the old file intact.
func Save(path string, store *option.Store, header []string) (err error) {
	defer func() {
		logging.LogSave(path, store.Len(), err)
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &SaveError{Path: path, Op: "create", Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(Encode(store, header)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &SaveError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &SaveError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: path, Op: "write", Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: path, Op: "rename", Err: err}
	}

	return nil
}
