// Package version holds build information injected via ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
