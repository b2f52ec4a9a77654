package app

import (
	"fmt"
	"log/slog"
)

// Set via ldflags, e.g.
// -X github.com/heartmarshall/anonboard-backend/internal/app.Version=1.0.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo identifies the running binary in logs and on /health.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Build returns the ldflags-stamped build info.
func Build() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.BuildTime)
}

// LogValue renders the build as a group so every process log line carries
// build.version and build.commit.
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
	)
}
