package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
// Binaries built with `go install` carry no ldflags, so the module version
// recorded by the toolchain is used instead.
func Info() string {
	version, commit, date := Version, Commit, Date
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if v := info.Main.Version; v != "" && v != "(devel)" {
				version = v
			}
			for _, s := range info.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "none":
					commit = s.Value
				case s.Key == "vcs.time" && date == "unknown":
					date = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
