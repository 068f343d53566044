package version

import (
	"strings"
	"testing"
)

func TestIsVersionGreaterOrEqualThan(t *testing.T) {
	tests := []struct {
		version  string
		target   string
		expected bool
	}{
		{"0.1.0", "0.1.0", true},
		{"0.2.0", "0.1.0", true},
		{"0.1.1", "0.1.0", true},
		{"1.0.0", "0.9.9", true},
		{"0.1.0", "0.2.0", false},
		{"0.1.0", "0.1.1", false},
		{"0.9.9", "1.0.0", false},
		{"0.1.0-dev", "0.1.0", false},
		{"0.0.0-dev", "0.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version+" vs "+tt.target, func(t *testing.T) {
			if got := IsVersionGreaterOrEqualThan(tt.version, tt.target); got != tt.expected {
				t.Errorf("IsVersionGreaterOrEqualThan(%q, %q): expected %v, got %v",
					tt.version, tt.target, tt.expected, got)
			}
		})
	}
}

func TestGetCurrentVersion(t *testing.T) {
	if got := GetCurrentVersion("dev"); got != DevVersion {
		t.Errorf("dev mode: expected %q, got %q", DevVersion, got)
	}
	if got := GetCurrentVersion("demo"); got != DevVersion {
		t.Errorf("demo mode: expected %q, got %q", DevVersion, got)
	}
	if got := GetCurrentVersion("prod"); got != Version {
		t.Errorf("prod mode: expected %q, got %q", Version, got)
	}
}

func TestStringIncludesShortCommit(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() {
		Version, GitCommit = origVersion, origCommit
	}()

	Version = "0.1.0"
	GitCommit = "unknown"
	if got := String(); got != "0.1.0" {
		t.Errorf("without commit: expected %q, got %q", "0.1.0", got)
	}

	GitCommit = "abcdef0123456789"
	if got := String(); got != "0.1.0-abcdef01" {
		t.Errorf("with commit: expected %q, got %q", "0.1.0-abcdef01", got)
	}
}

func TestStringFull(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	defer func() {
		Version, GitCommit, BuildTime = origVersion, origCommit, origBuildTime
	}()

	Version = "0.1.0"
	GitCommit = "abcdef0123456789"
	BuildTime = "2026-08-30T00:00:00Z"

	got := StringFull()
	for _, want := range []string{"Version=0.1.0", "Commit=abcdef01", "BuildTime=2026-08-30T00:00:00Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("StringFull(): expected %q to contain %q", got, want)
		}
	}
}
