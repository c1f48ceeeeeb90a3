// Package logging provides the leveled console logger used by the CLI. It
// is a thin layer over logrus that keeps the timestamped "[LEVEL] message"
// line format, adds a SUCCESS label and an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Loggers derived with [Logger.WithField] share the sink of their parent.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// New builds a Logger writing to stderr. Call Close() when done if LogFile
// was set.
func New(cfg *config.Config) (*Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput builds a Logger writing console output to out.
func NewWithOutput(cfg *config.Config, out io.Writer) (*Logger, error) {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		lvl = logrus.DebugLevel
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(lvl)
	switch cfg.LogFormat {
	case config.LogJSON:
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		base.SetFormatter(&lineFormatter{palette: term.NewPalette(term.Resolve(cfg.ColorMode, out))})
	}

	l := &Logger{entry: logrus.NewEntry(base)}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		base.AddHook(newFileHook(f))
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// WithField returns a child logger that attaches key=value to every line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Success logs at INFO level under the SUCCESS label.
func (l *Logger) Success(format string, args ...interface{}) {
	l.entry.WithField(labelKey, labelSuccess).Info(fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs at DEBUG level; dropped unless the level is debug or lower.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// DebugEnabled reports whether Debug lines are emitted.
func (l *Logger) DebugEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}
