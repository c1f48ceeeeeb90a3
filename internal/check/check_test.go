package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durack1/durolib/internal/config"
)

type recordingLogger struct {
	lines map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{lines: map[string][]string{}}
}

func (l *recordingLogger) add(level, format string, args ...interface{}) {
	l.lines[level] = append(l.lines[level], fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(f string, a ...interface{})    { l.add("info", f, a...) }
func (l *recordingLogger) Success(f string, a ...interface{}) { l.add("success", f, a...) }
func (l *recordingLogger) Warn(f string, a ...interface{})    { l.add("warn", f, a...) }
func (l *recordingLogger) Error(f string, a ...interface{})   { l.add("error", f, a...) }
func (l *recordingLogger) Debug(f string, a ...interface{})   { l.add("debug", f, a...) }

func fakeNcdump(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake")
	}
	path := filepath.Join(t.TempDir(), "ncdump")
	script := "#!/bin/sh\necho 'ncdump [-c|-h] file' >&2\necho 'netcdf library version 4.9.2 of Jan  1 2024' >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRunCheck_AllGood(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NcdumpPath = fakeNcdump(t)
	cfg.Catalog = filepath.Join(t.TempDir(), "db", "catalog.db")
	cfg.InputDir = t.TempDir()
	log := newRecordingLogger()

	failed := RunCheck(context.Background(), &cfg, log)
	assert.Zero(t, failed)
	assert.Empty(t, log.lines["error"])
	require.Len(t, log.lines["success"], 3)
	assert.Contains(t, log.lines["success"][0], "netCDF 4.9.2")
	assert.FileExists(t, cfg.Catalog)
}

func TestRunCheck_Failures(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NcdumpPath = filepath.Join(t.TempDir(), "missing-ncdump")
	cfg.InputDir = filepath.Join(t.TempDir(), "absent")
	log := newRecordingLogger()

	failed := RunCheck(context.Background(), &cfg, log)
	assert.Equal(t, 2, failed)
	assert.Len(t, log.lines["error"], 2)
	assert.Contains(t, log.lines["info"], "Catalog: disabled")
}

func TestCatalogWritable_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := CatalogWritable(context.Background(), filepath.Join(blocker, "catalog.db"))
	assert.ErrorIs(t, err, ErrCatalogUnwritable)
}

func TestCheckDeps(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NcdumpPath = filepath.Join(t.TempDir(), "missing-ncdump")

	assert.NoError(t, CheckDeps(&cfg, []string{"/p/a.xml", "/p/b.xml"}))
	assert.ErrorIs(t, CheckDeps(&cfg, []string{"/p/a.xml", "/p/b.NC"}), ErrNcdumpNotFound)

	cfg.NcdumpPath = fakeNcdump(t)
	assert.NoError(t, CheckDeps(&cfg, []string{"/p/b.nc"}))
}
