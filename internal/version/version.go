package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X ...version.Commit=<sha>". Builds
// without ldflags fall back to the VCS stamp recorded by the go tool.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by --version.
func String() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			commit, built = fromBuildSettings(info.Settings, built)
		}
	}
	return fmt.Sprintf("ticketdesk dev (commit: %s, built: %s)", short(commit), built)
}

func fromBuildSettings(settings []debug.BuildSetting, built string) (string, string) {
	commit := "unknown"
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && commit != "unknown" {
		commit = short(commit) + "-dirty"
	}
	return commit, built
}

func short(commit string) string {
	if len(commit) > 7 && commit[7] != '-' {
		return commit[:7]
	}
	return commit
}
