package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

var (
	// These variables are set at build time using ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"

	nameColor = color.New(color.FgCyan, color.Bold)
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns version information. Values not set through ldflags fall back
// to the module build info (go install), then to moduleVersion.
func Get(moduleVersion string) Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	bi, ok := debug.ReadBuildInfo()
	var buildVersion string
	if ok {
		buildVersion = bi.Main.Version
	}
	info.Version = resolveVersion(info.Version, buildVersion, moduleVersion)
	if ok && info.GitCommit == "unknown" {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.GitCommit = s.Value
			}
		}
	}
	return info
}

// resolveVersion picks the first real version: ldflags, build info, then the caller's
func resolveVersion(candidates ...string) string {
	for _, v := range candidates {
		if v != "" && v != "dev" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// Short returns the one-line form, e.g. "impsort v1.2.0 (abc1234)"
func (i Info) Short() string {
	commit := i.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s %s (%s)", nameColor.Sprint("impsort"), i.Version, commit)
}

// String returns a human-readable version string
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", i.Short())
	fmt.Fprintf(&b, "Git tag: %s\n", i.GitTag)
	fmt.Fprintf(&b, "Build date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "Go version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform: %s", i.Platform)
	return b.String()
}
