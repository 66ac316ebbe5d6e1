package utils

import (
	"runtime/debug"
	"strings"
)

// version is injected with -ldflags "-X .../internal/utils.version=..." on release builds
var version string

// GetVersion returns the build version without a leading "v".
// Falls back to the module version from build info, then "dev".
func GetVersion() string {
	v := version
	if v == "" {
		v = "dev"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return strings.TrimPrefix(v, "v")
}
