package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release build time; development builds fall back to
// the module build info below.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the release version, or whatever the Go module
// system knows about this build.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the git revision baked into the build.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	return buildSetting("vcs.revision", "unknown")
}

// GetBuildDate returns when the binary was built.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	return buildSetting("vcs.time", "unknown")
}

func buildSetting(key, fallback string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return fallback
}

// GetFullVersion returns the one-line version string shown by --version.
func GetFullVersion() string {
	version, commit, date := GetVersion(), GetCommit(), GetBuildDate()
	if commit != "unknown" && len(commit) > 7 {
		if date != "unknown" {
			return fmt.Sprintf("%s (%s, built %s)", version, commit[:7], date)
		}
		return fmt.Sprintf("%s (%s)", version, commit[:7])
	}
	return version
}
