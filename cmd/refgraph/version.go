package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

// The VERSION file is the fallback for builds that carry no stamped
// module version, such as a plain `go build` in a working tree.
//
//go:embed VERSION
var embeddedVersion string

// Version reports the stamped module version when one exists, and
// otherwise the embedded fallback marked as a development build, with
// the VCS revision appended when the build recorded one.
func Version() string {
	fallback := "v" + strings.TrimSpace(embeddedVersion) + "-dev"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return fallback + "+" + s.Value[:7]
		}
	}
	return fallback
}
