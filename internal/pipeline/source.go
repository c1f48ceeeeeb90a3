package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/resolver"
)

// SourceArgs labels runs whose paths came from the command line.
const SourceArgs = "args"

// ErrNoInput is returned when no paths, JSON list or input directory was
// given.
var ErrNoInput = errors.New("no input: pass dataset paths, --from-json or --dir")

// Input selects where a run takes its candidate paths from. The first
// non-empty of Paths, FromJSON and cfg.InputDir wins.
type Input struct {
	Paths    []string
	FromJSON string
}

// Collect returns the candidate paths and a label describing their source.
func Collect(cfg *config.Config, in Input) ([]string, string, error) {
	switch {
	case len(in.Paths) > 0:
		return in.Paths, SourceArgs, nil
	case in.FromJSON != "":
		paths, err := LoadJSONList(in.FromJSON)
		return paths, in.FromJSON, err
	case cfg.InputDir != "":
		paths, err := Discover(cfg.InputDir, cfg.Extensions, cfg.Recursive)
		if err != nil {
			return nil, "", fmt.Errorf("discover %s: %w", cfg.InputDir, err)
		}
		return paths, cfg.InputDir, nil
	}
	return nil, "", ErrNoInput
}

// LoadJSONList reads a JSON array of path strings from path. Any other
// document shape is rejected with resolver.ErrInvalidArgument.
func LoadJSONList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return resolver.PathsFromAny(doc)
}
