package version

import (
	"fmt"
	"runtime"
)

// Name of the service as reported by the CLI and /health.
const Name = "Offering Engine"

// Build information. Populated at build-time via ldflags:
//
//	-X frizo/offering_engine/internal/version.Version=v1.2.0
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains all the build-time information.
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information.
func Get() BuildInfo {
	return BuildInfo{
		Name:      Name,
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
	}
}

// String multi-line report for `version`.
func String() string {
	info := Get()
	return fmt.Sprintf("%s %s\nBuild Time: %s\nGit Commit: %s\nGo Version: %s",
		info.Name, Short(), info.BuildTime, info.GitCommit, info.GoVersion)
}

// Short returns version plus abbreviated commit when known.
func Short() string {
	if GitCommit != "unknown" && len(GitCommit) > 7 {
		return fmt.Sprintf("%s (%s)", Version, GitCommit[:7])
	}
	return Version
}
