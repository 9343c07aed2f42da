package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set by ldflags during release builds
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

// Info is the build information reported by the version command and /health
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersion prefers the ldflags version and falls back to module build info.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

// String renders a one-line summary, with the short commit hash when known.
func (i Info) String() string {
	v := i.Version
	if len(i.GitCommit) >= 7 {
		v = fmt.Sprintf("%s-%s", v, i.GitCommit[:7])
	}
	return fmt.Sprintf("ticket-classifier %s (%s, %s)", v, i.GoVersion, i.Platform)
}
