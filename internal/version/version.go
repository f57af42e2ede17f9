// Package version reports the rn build version from module build info.
package version

import (
	"regexp"
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// pseudoVersion matches the timestamp-hash suffix of Go pseudo-versions,
// e.g. v0.0.0-20250101120000-abcdef123456.
var pseudoVersion = regexp.MustCompile(`-(\d+\.)?\d{14}-[0-9a-fA-F]{12,}$`)

// String returns the tagged module version, or "(devel)" for local and
// untagged builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromModule(info.Main.Version)
}

// Revision returns the short VCS revision stamped into the binary, if any.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}

func fromModule(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") {
		return devel
	}
	base, _, _ := strings.Cut(v, "+")
	if pseudoVersion.MatchString(base) {
		return devel
	}
	return v
}
