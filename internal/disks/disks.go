package disks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pigeonlinux/menuconfig/internal/logging"
)

// MaxDisks caps the number of devices returned by a scan
const MaxDisks = 20

// DefaultDir is the directory scanned when Scanner.Dir is empty
const DefaultDir = "/dev"

// DefaultPrefixes are the device name prefixes treated as disks
var DefaultPrefixes = []string{"sd", "hd", "nvme", "vd"}

// Fallback is returned when a scan finds no devices
var Fallback = []string{"/dev/sda", "/dev/sdb", "/dev/nvme0n1"}

// Provider supplies the device paths offered by the disk picker.
type Provider interface {
	List() []string
}

// Scanner finds block devices in a device directory.
// The zero value scans /dev with the default prefixes.
type Scanner struct {
	Dir      string                 // Directory to scan (default /dev)
	Prefixes []string               // Name prefixes to keep (default DefaultPrefixes)
	Max      int                    // Result cap (default MaxDisks)
	IsBlock  func(path string) bool // Block device test (default os.Stat mode check)
}

// List returns matching device paths in directory order, at most Max of
// them, or a copy of Fallback when none match.
func (s Scanner) List() []string {
	dir := s.Dir
	if dir == "" {
		dir = DefaultDir
	}

	found := s.scan(dir)
	if len(found) == 0 {
		logging.LogDiskScan(dir, 0, true)
		return append([]string(nil), Fallback...)
	}

	logging.LogDiskScan(dir, len(found), false)
	return found
}

func (s Scanner) scan(dir string) []string {
	prefixes := s.Prefixes
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	limit := s.Max
	if limit <= 0 {
		limit = MaxDisks
	}
	isBlock := s.IsBlock
	if isBlock == nil {
		isBlock = IsBlockDevice
	}

	// ReadDir returns entries sorted by name
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var found []string
	for _, entry := range entries {
		if len(found) >= limit {
			break
		}
		if !hasAnyPrefix(entry.Name(), prefixes) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if isBlock(path) {
			found = append(found, path)
		}
	}
	return found
}

// IsBlockDevice reports whether path is a block device, following symlinks
func IsBlockDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Static is a Provider with a fixed device list
type Static []string

// List returns a copy of the list, or Fallback when it is empty.
// Lists longer than MaxDisks are truncated.
func (s Static) List() []string {
	if len(s) == 0 {
		return append([]string(nil), Fallback...)
	}
	n := len(s)
	if n > MaxDisks {
		n = MaxDisks
	}
	return append([]string(nil), s[:n]...)
}
