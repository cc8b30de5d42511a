// Package version reports the build version, set at link time with
//
//	-ldflags "-X grop/internal/version.Version=v1.2.3 -X grop/internal/version.Commit=abc123"
package version

import "runtime/debug"

var (
	Version = "dev"
	Commit  = ""
)

func String() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if Commit != "" {
		return v + " (" + Commit + ")"
	}
	return v
}
