// Package version reports the mpdev build version.
package version

import "runtime/debug"

// String returns the module version recorded in the build info, or "(devel)"
// for local builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	v := info.Main.Version
	if v == "" {
		return "(devel)"
	}
	return v
}
