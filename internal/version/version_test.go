package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func setVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestGet_NoBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil)
	setVars(t, "dev", "", "")

	b := Get()
	assert.Equal(t, "dev", b.Version)
	assert.Equal(t, "unknown", b.Commit)
	assert.Equal(t, "unknown", b.Date)
	assert.Equal(t, runtime.Version(), b.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, b.Platform)
}

func TestGet_FallsBackToVCS(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	setVars(t, "dev", "", "")

	b := Get()
	assert.Equal(t, "v1.2.3", b.Version)
	assert.Equal(t, "0123456789abcdef0123", b.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", b.Date)
	assert.True(t, b.Modified)
	assert.Contains(t, b.String(), "(0123456789ab-dirty, 2026-01-02T03:04:05Z,")
}

func TestGet_LinkerValuesWin(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fromvcs"}},
	})
	setVars(t, "v0.9.0", "abc123", "today")

	b := Get()
	assert.Equal(t, "v0.9.0", b.Version)
	assert.Equal(t, "abc123", b.Commit)
	assert.Equal(t, "today", b.Date)
	assert.Equal(t, "v0.9.0", Short())
	assert.Equal(t, "apidex v0.9.0 (abc123, today, "+runtime.Version()+" "+b.Platform+")", b.String())
}

func TestGet_DevelModuleKeepsDev(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	setVars(t, "dev", "", "")

	assert.Equal(t, "dev", Short())
}
