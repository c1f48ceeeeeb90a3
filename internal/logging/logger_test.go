package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durack1/durolib/internal/config"
)

func newTestLogger(t *testing.T, mutate func(*config.Config)) (*Logger, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	l, err := NewWithOutput(&cfg, &buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, &buf
}

func TestLogger_LineFormat(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	l.Info("kept %d of %d", 4, 6)
	l.Success("done")
	l.Warn("odd version")
	l.Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] kept 4 of 6$`, lines[0])
	assert.Contains(t, lines[1], "[SUCCESS] done")
	assert.NotContains(t, lines[1], "label=")
	assert.Contains(t, lines[2], "[WARN] odd version")
	assert.Contains(t, lines[3], "[ERROR] boom")
}

func TestLogger_DebugFollowsLevel(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	l.Debug("hidden")
	assert.False(t, l.DebugEnabled())
	assert.Empty(t, buf.String())

	l, buf = newTestLogger(t, func(c *config.Config) { c.Verbose = true })
	l.Debug("shown")
	assert.True(t, l.DebugEnabled())
	assert.Contains(t, buf.String(), "[DEBUG] shown")
}

func TestLogger_WithField(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	l.WithField("run", "abc").WithField("group", "CESM2").Info("selected")
	assert.Contains(t, buf.String(), "[INFO] selected group=CESM2 run=abc")
}

func TestLogger_Colors(t *testing.T) {
	l, buf := newTestLogger(t, func(c *config.Config) { c.ColorMode = config.ColorAlways })
	l.Error("red")
	assert.Contains(t, buf.String(), "\033[1;91m[ERROR]\033[0m red")
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newTestLogger(t, func(c *config.Config) { c.LogFormat = config.LogJSON })
	l.WithField("inputs", 6).Success("trimmed")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "trimmed", got["msg"])
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "SUCCESS", got["label"])
	assert.Equal(t, float64(6), got["inputs"])
}

func TestLogger_BadLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	_, err := NewWithOutput(&cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trimmodels.log")
	l, _ := newTestLogger(t, func(c *config.Config) {
		c.LogFile = path
		c.ColorMode = config.ColorAlways
	})
	l.Info("to file")
	l.WithField("path", "a.xml").Warn("child")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, "[INFO] to file")
	assert.Contains(t, content, "[WARN] child path=a.xml")
	assert.NotContains(t, content, "\033[", "file sink is never colored")
}
