// Package version reports the build version of the sheet binary.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/Tiku57/spreadsheet-app/internal/version.Version=v0.3.0 \
//	                   -X github.com/Tiku57/spreadsheet-app/internal/version.Commit=abc123"
//
// Unset values are filled from VCS build info, then fall back to "dev".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified, vcsTime string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}
	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
