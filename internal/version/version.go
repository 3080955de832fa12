// Package version carries build metadata injected via -ldflags.
package version

import "time"

var (
	// Version is the release version (set via -ldflags).
	Version = ""
	// Commit is the git commit hash (set via -ldflags).
	Commit = ""
	// BuildTime is the build timestamp (set via -ldflags).
	BuildTime = ""
)

// String renders "version (commit)" with sensible fallbacks when the
// binary was built without ldflags.
func String() string {
	v := Version
	if v == "" {
		if BuildTime != "" {
			v = BuildTime
		} else {
			v = "dev-" + time.Now().UTC().Format("20060102")
		}
	}
	if Commit == "" {
		return v
	}
	c := Commit
	if len(c) > 12 {
		c = c[:12]
	}
	return v + " (" + c + ")"
}
