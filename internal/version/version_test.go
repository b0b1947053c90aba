package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	vcs := func(rev, modified string) []debug.BuildSetting {
		return []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: rev},
			{Key: "vcs.modified", Value: modified},
		}
	}

	tests := []struct {
		name        string
		version     string
		commit      string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "no build info",
			info:        nil,
			wantVersion: "dev",
			wantCommit:  "unknown",
		},
		{
			name:        "ldflags win",
			version:     "v1.0.0",
			commit:      "abc1234",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}, Settings: vcs("fffffffffff", "false")},
			wantVersion: "v1.0.0",
			wantCommit:  "abc1234",
		},
		{
			name:        "module version",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			wantVersion: "v1.2.3",
			wantCommit:  "unknown",
		},
		{
			name:        "devel build with vcs",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: vcs("0123456789abcdef", "false")},
			wantVersion: "dev",
			wantCommit:  "0123456",
		},
		{
			name:        "dirty tree",
			info:        &debug.BuildInfo{Settings: vcs("0123456789abcdef", "true")},
			wantVersion: "dev",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "short revision",
			info:        &debug.BuildInfo{Settings: vcs("abc", "false")},
			wantVersion: "dev",
			wantCommit:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotVersion, gotCommit := resolve(tt.version, tt.commit, tt.info)
			if gotVersion != tt.wantVersion {
				t.Errorf("version = %q, want %q", gotVersion, tt.wantVersion)
			}
			if gotCommit != tt.wantCommit {
				t.Errorf("commit = %q, want %q", gotCommit, tt.wantCommit)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	v, c := Get()
	if v == "" || c == "" {
		t.Fatalf("Get() = %q, %q; want non-empty values", v, c)
	}
	if !strings.HasPrefix(s, v+" (") || !strings.HasSuffix(s, c+")") {
		t.Errorf("String() = %q", s)
	}
}
