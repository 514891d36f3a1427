// Package version reports the build identity of the infohub binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/infohub/infohub/internal/version.Version=v0.3.0 \
//	                   -X github.com/infohub/infohub/internal/version.Commit=abc123"
//
// When left empty they are filled from the module's VCS stamp, then from a
// dev-<timestamp> fallback.
var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(debug.ReadBuildInfo())
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills Version and Commit from the vcs.* build settings.
func fromBuildInfo(info *debug.BuildInfo, ok bool) {
	if !ok || info == nil {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && rev != "" {
		Commit = shortRevision(rev, settings["vcs.modified"] == "true")
	}

	if Version == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		} else if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", ts.Format("20060102"))
		}
	}
}

func shortRevision(rev string, dirty bool) string {
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// Get returns the resolved build identity.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// String renders the identity as printed by `infohub version`.
func (i Info) String() string {
	return fmt.Sprintf("infohub %s (commit: %s, %s, %s)", i.Version, i.Commit, i.GoVersion, i.Platform)
}
