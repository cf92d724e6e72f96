package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo_Defaults(t *testing.T) {
	v := GetVersionInfo("", "", "")

	assert.Equal(t, "dev", v.Version)
	assert.Equal(t, "none", v.Commit)
	assert.Equal(t, "unknown", v.Date)
	assert.Equal(t, "dev", v.Short())
	assert.False(t, v.IsRelease())
}

func TestVersionInfo_Short(t *testing.T) {
	tests := []struct {
		build   string
		want    string
		release bool
	}{
		{build: "v1.2.3", want: "1.2.3", release: true},
		{build: "1.2", want: "1.2.0", release: true},
		{build: "v2.0.0-rc.1", want: "2.0.0-rc.1", release: false},
		{build: "nightly", want: "nightly", release: false},
	}

	for _, tt := range tests {
		t.Run(tt.build, func(t *testing.T) {
			v := GetVersionInfo(tt.build, "abc123", "2026-01-01")
			assert.Equal(t, tt.want, v.Short())
			assert.Equal(t, tt.release, v.IsRelease())
		})
	}
}

func TestVersionInfo_Semver(t *testing.T) {
	sv, err := GetVersionInfo("v1.4.0", "", "").Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sv.Major())
	assert.Equal(t, uint64(4), sv.Minor())

	_, err = GetVersionInfo("dev", "", "").Semver()
	assert.Error(t, err)
}

func TestVersionInfo_String(t *testing.T) {
	v := GetVersionInfo("v1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "webapp 1.0.0 (commit abc123, built 2026-01-01)", v.String())

	b := v.BuildConfig()
	assert.Equal(t, "v1.0.0", b.BuildVersion)
	assert.Equal(t, "abc123", b.BuildCommit)
	assert.Equal(t, "2026-01-01", b.BuildDate)
}
