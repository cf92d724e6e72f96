package common

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// GetVersionInfo fills in placeholders for values not set by ldflags.
func GetVersionInfo(build, commit, date string) VersionInfo {
	if build == "" {
		build = "dev"
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return VersionInfo{Version: build, Commit: commit, Date: date}
}

// Semver parses the build version. Development builds return an error.
func (v VersionInfo) Semver() (*semver.Version, error) {
	sv, err := semver.NewVersion(v.Version)
	if err != nil {
		return nil, fmt.Errorf("version %q is not semver: %w", v.Version, err)
	}
	return sv, nil
}

// Short returns the normalized semantic version, or the raw build string
// when it does not parse.
func (v VersionInfo) Short() string {
	sv, err := v.Semver()
	if err != nil {
		return v.Version
	}
	return sv.String()
}

// IsRelease reports whether the build carries a semver without prerelease.
func (v VersionInfo) IsRelease() bool {
	sv, err := v.Semver()
	return err == nil && sv.Prerelease() == ""
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("webapp %s (commit %s, built %s)", v.Short(), v.Commit, v.Date)
}

// BuildConfig returns the ldflags-derived part of the configuration.
func (v VersionInfo) BuildConfig() BuildConfig {
	return BuildConfig{
		BuildVersion: v.Version,
		BuildCommit:  v.Commit,
		BuildDate:    v.Date,
	}
}
