// Package version reports the build version of menuconfig.
package version

import (
	"runtime/debug"
	"sync"
)

// Set at build time with:
//
//	go build -ldflags="-X github.com/pigeonlinux/menuconfig/internal/version.Version=v1.0.0 \
//	                   -X github.com/pigeonlinux/menuconfig/internal/version.Commit=abc1234"
//
// Values left empty are filled from the module build info on first use.
var (
	Version = ""
	Commit  = ""
)

const (
	devVersion    = "dev"
	unknownCommit = "unknown"
	shortHashLen  = 7
)

var resolveOnce sync.Once

// Get returns the version and commit, resolving them on the first call
func Get() (version, commit string) {
	resolveOnce.Do(func() {
		info, _ := debug.ReadBuildInfo()
		Version, Commit = resolve(Version, Commit, info)
	})
	return Version, Commit
}

// String returns "version (commit)"
func String() string {
	v, c := Get()
	return v + " (" + c + ")"
}

// resolve fills empty version and commit values from build info
func resolve(version, commit string, info *debug.BuildInfo) (string, string) {
	if info != nil {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		if commit == "" {
			commit = vcsCommit(info.Settings)
		}
	}

	if version == "" {
		version = devVersion
	}
	if commit == "" {
		commit = unknownCommit
	}
	return version, commit
}

// vcsCommit returns the short revision, marked -dirty for modified trees
func vcsCommit(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return ""
	}
	if len(revision) > shortHashLen {
		revision = revision[:shortHashLen]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}
