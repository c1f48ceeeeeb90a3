package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TRIMMODELS_OUTPUT_FORMAT.
const EnvPrefix = "TRIMMODELS"

// Configuration keys. See [FlagName] for the matching command-line flags.
const (
	KeyInputDir     = "input_dir"
	KeyExtensions   = "extensions"
	KeyRecursive    = "recursive"
	KeyMemoize      = "memoize"
	KeyNcdumpPath   = "ncdump_path"
	KeyOutput       = "output"
	KeyOutputFormat = "output_format"
	KeyCatalog      = "catalog"
	KeyLogFile      = "log_file"
	KeyLogFormat    = "log_format"
	KeyLogLevel     = "log_level"
	KeyVerbose      = "verbose"
	KeyColor        = "color"
)

var allKeys = []string{
	KeyInputDir, KeyExtensions, KeyRecursive, KeyMemoize, KeyNcdumpPath,
	KeyOutput, KeyOutputFormat, KeyCatalog, KeyLogFile, KeyLogFormat,
	KeyLogLevel, KeyVerbose, KeyColor,
}

// flagNames lists keys whose flag is not simply the key with '_' -> '-'.
var flagNames = map[string]string{
	KeyInputDir:     "dir",
	KeyOutputFormat: "format",
}

// FlagName returns the command-line flag bound to key.
func FlagName(key string) string {
	if name, ok := flagNames[key]; ok {
		return name
	}
	return strings.ReplaceAll(key, "_", "-")
}

// Load layers configuration from lowest to highest precedence: defaults,
// the optional config file, TRIMMODELS_* environment variables, then any
// flag in flags that the user actually set. flags may be nil. The result
// is validated.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault(KeyInputDir, def.InputDir)
	v.SetDefault(KeyExtensions, def.Extensions)
	v.SetDefault(KeyRecursive, def.Recursive)
	v.SetDefault(KeyMemoize, def.Memoize)
	v.SetDefault(KeyNcdumpPath, def.NcdumpPath)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyOutputFormat, string(def.OutputFormat))
	v.SetDefault(KeyCatalog, def.Catalog)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyLogFormat, string(def.LogFormat))
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyVerbose, def.Verbose)
	v.SetDefault(KeyColor, string(def.ColorMode))

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file %s not found", file)
			}
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range allKeys {
			if f := flags.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := &Config{
		InputDir:     v.GetString(KeyInputDir),
		Extensions:   splitList(v.GetStringSlice(KeyExtensions)),
		Recursive:    v.GetBool(KeyRecursive),
		Memoize:      v.GetBool(KeyMemoize),
		NcdumpPath:   v.GetString(KeyNcdumpPath),
		Output:       v.GetString(KeyOutput),
		OutputFormat: OutputFormat(strings.ToLower(v.GetString(KeyOutputFormat))),
		Catalog:      v.GetString(KeyCatalog),
		LogFile:      v.GetString(KeyLogFile),
		LogFormat:    LogFormat(strings.ToLower(v.GetString(KeyLogFormat))),
		LogLevel:     v.GetString(KeyLogLevel),
		Verbose:      v.GetBool(KeyVerbose),
		ColorMode:    ColorMode(strings.ToLower(v.GetString(KeyColor))),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList flattens comma-separated entries; environment values arrive as
// a single string.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
