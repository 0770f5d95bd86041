// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using ldflags.
var (
	// Version is the semantic version (e.g., "0.1.0", "0.1.0-alpha.1").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// String formats b as a one-line summary.
func (b Build) String() string {
	return fmt.Sprintf("modelgen version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.Go)
}

// Get returns the build information, filling unset ldflags values from the
// module build info when the binary was built with "go install".
func Get() Build {
	b := Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(setting.Value) >= 7 {
				b.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = setting.Value
			}
		}
	}
	return b
}

// Info returns formatted version information.
func Info() string {
	return Get().String()
}

// Short returns just the version string.
func Short() string {
	return Get().Version
}
