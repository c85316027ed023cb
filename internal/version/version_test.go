package version

import (
	"strings"
	"testing"
)

func TestVersionBanner(t *testing.T) {
	if Version == "" {
		t.Fatalf("version banner must not be empty")
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Fatalf("default banner carries the -dev suffix, got %q", Version)
	}
	for _, digit := range []string{"0", "1"} {
		if !strings.Contains(Version, digit) {
			t.Fatalf("banner lost component %q: %q", digit, Version)
		}
	}
}

func TestBuildMetadataInjection(t *testing.T) {
	if GitCommit != "" || BuildDate != "" {
		t.Fatalf("commit and date default empty until -ldflags injects them, got %q and %q", GitCommit, BuildDate)
	}
	origCommit, origDate := GitCommit, BuildDate
	GitCommit, BuildDate = "abc123", "2026-01-15T10:30:00Z"
	if GitCommit != "abc123" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Fatalf("build metadata must be assignable, got %q and %q", GitCommit, BuildDate)
	}
	GitCommit, BuildDate = origCommit, origDate
}
