package common

import (
	"runtime/debug"
)

// Set with -ldflags "-X github.com/stayhub/stayctl/internal/common.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type BuildInfo struct {
	Version string
	Commit  string
}

// ShortCommit is the first eight characters of the commit, or empty when
// the commit is not known.
func (b BuildInfo) ShortCommit() string {
	if b.Commit == "unknown" || len(b.Commit) == 0 {
		return ""
	}
	if len(b.Commit) > 8 {
		return b.Commit[:8]
	}
	return b.Commit
}

// ReadBuildInfo prefers ldflags values and falls back to the module and
// vcs data embedded by the go tool.
func ReadBuildInfo() (BuildInfo, bool) {
	if Version != "dev" {
		return BuildInfo{Version: Version, Commit: GitCommit}, true
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{}, false
	}

	build := BuildInfo{Version: info.Main.Version}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			build.Commit = setting.Value
		}
	}
	return build, true
}
