package version

import (
	"runtime"
	"strings"
)

func New(version string, commit string) *Version {
	return &Version{
		Version:   strings.TrimSpace(version),
		Commit:    strings.TrimSpace(commit),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (version *Version) String() string {
	if version.Commit == "" {
		return version.Version
	}

	return version.Version + " (" + version.Commit + ")"
}
