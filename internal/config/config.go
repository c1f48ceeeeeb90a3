// Package config holds runtime configuration: defaults, layered loading
// (file, environment, flags) and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// --- Enum types for validated string fields ---

// OutputFormat selects the report encoding.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // One path per line (default).
	FormatJSON OutputFormat = "json" // Array of paths plus run summary.
	FormatYAML OutputFormat = "yaml"
	FormatTOML OutputFormat = "toml"
)

// LogFormat selects the console log encoding.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is built by [Load] on top of
// [DefaultConfig] and passed by pointer to packages that need it.
type Config struct {
	// Discovery.
	InputDir   string
	Extensions []string // Default: .xml .nc .nc4 .cdf. Lower-case, dot-prefixed after Validate.
	Recursive  bool     // Default: true.

	// Resolution.
	Memoize    bool   // Default: true. Reuse creation dates within one run.
	NcdumpPath string // Default: "ncdump" from PATH.

	// Output.
	Output       string // Report path; empty or "-" writes to stdout.
	OutputFormat OutputFormat
	Catalog      string // SQLite run catalog; empty disables recording.

	// Display and logging.
	LogFile   string
	LogFormat LogFormat
	LogLevel  string // Any logrus level name. Default: "info".
	Verbose   bool   // Shorthand for LogLevel=debug.
	ColorMode ColorMode
}

// DefaultExtensions are the dataset suffixes the accessor can read.
var DefaultExtensions = []string{".xml", ".nc", ".nc4", ".cdf"}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base layer by [Load].
func DefaultConfig() Config {
	return Config{
		Extensions:   append([]string(nil), DefaultExtensions...),
		Recursive:    true,
		Memoize:      true,
		NcdumpPath:   "ncdump",
		OutputFormat: FormatText,
		LogFormat:    LogText,
		LogLevel:     "info",
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and canonicalises Extensions, InputDir and
// LogLevel in place.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		// valid
	default:
		return fmt.Errorf("invalid output format %q (use 'text', 'json', 'yaml' or 'toml')", c.OutputFormat)
	}

	switch c.LogFormat {
	case LogText, LogJSON:
		// valid
	default:
		return fmt.Errorf("invalid log format %q (use 'text' or 'json')", c.LogFormat)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Verbose {
		c.LogLevel = logrus.DebugLevel.String()
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	c.LogLevel = lvl.String()

	if c.NcdumpPath == "" {
		return errors.New("ncdump path must not be empty")
	}

	exts, err := normalizeExtensions(c.Extensions)
	if err != nil {
		return err
	}
	c.Extensions = exts
	c.InputDir = NormalizeDirArg(c.InputDir)
	return nil
}

// normalizeExtensions lower-cases, dot-prefixes and de-duplicates exts.
// Accepted forms: "xml", ".XML", " .nc ".
func normalizeExtensions(exts []string) ([]string, error) {
	if len(exts) == 0 {
		return nil, errors.New("at least one dataset extension is required")
	}
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, raw := range exts {
		e := strings.ToLower(strings.TrimSpace(raw))
		if e == "" || e == "." {
			return nil, fmt.Errorf("invalid dataset extension %q", raw)
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out, nil
}
