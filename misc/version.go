// Package misc holds small program identity helpers.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "cssb"

var readBuildInfo = sync.OnceValues(func() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
})

// GetAppName returns program name to be used everywhere.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in the build info.
func GetVersion() string {
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns short vcs revision recorded in the build info.
func GetGitHash() string {
	bi, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
