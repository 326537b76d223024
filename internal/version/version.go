// Package version provides build-time version information.
package version

// These variables are set at build time via ldflags:
//
//	-X github.com/vomodo/microtools/internal/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line shown by --version.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
