package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion, origBuild, origCommit := Version, BuildTime, GitCommit
	defer func() { Version, BuildTime, GitCommit = origVersion, origBuild, origCommit }()

	tests := []struct {
		name      string
		version   string
		buildTime string
		commit    string
		want      string
	}{
		{"development build", "dev", "unknown", "unknown", "dev (development build)"},
		{"unparseable build time", "v1.2.0", "yesterday", "unknown", "v1.2.0 (built yesterday)"},
		{"release without commit", "v1.2.0", "2025-03-01T10:00:00Z", "unknown", "v1.2.0 (built 2025-03-01 10:00:00 UTC)"},
		{"release with commit", "v1.2.0", "2025-03-01T10:00:00Z", "0123456789abcdef", "v1.2.0 (built 2025-03-01 10:00:00 UTC, commit 0123456)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildTime, GitCommit = tt.version, tt.buildTime, tt.commit
			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetBuildInfoPlatform(t *testing.T) {
	info := GetBuildInfo()
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}
