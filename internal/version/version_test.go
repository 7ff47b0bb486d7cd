package version

import (
	"testing"

	"github.com/fatih/color"
)

func withValues(t *testing.T, v, commit, date string) {
	t.Helper()
	origV, origC, origD := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = origV, origC, origD })
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestPretty(t *testing.T) {
	noColor(t)
	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.2.3", "", "", "1.2.3"},
		{"0.1.0-dev", "", "", "0.1.0-dev"},
		{"1.2.3", "abc123", "2024-01-15", "1.2.3 (commit abc123, built 2024-01-15)"},
		{"nightly", "", "", "nightly"},
	}
	for _, tt := range tests {
		withValues(t, tt.version, tt.commit, tt.date)
		if got := Pretty(); got != tt.want {
			t.Errorf("Pretty() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	withValues(t, "2.0.0", "deadbeef", "")
	info := Current()
	if info.Version != "2.0.0" || info.GitCommit != "deadbeef" || info.BuildDate != "" {
		t.Errorf("Current() = %+v", info)
	}
}
