package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Identity is the tuple that defines "the same dataset, different version".
// Two records belong to the same group exactly when their identities are equal.
type Identity struct {
	Model       string
	Experiment  string
	Realization string
	GridLabel   string
}

func (id Identity) String() string {
	grid := id.GridLabel
	if grid == NoGridLabel {
		grid = "-"
	}
	return strings.Join([]string{id.Model, id.Experiment, id.Realization, grid}, ".")
}

// FileRecord is the parsed form of one dataset path.
type FileRecord struct {
	Path     string
	Dialect  Dialect
	Identity Identity
	Version  string // raw version token with any "ver-" prefix removed
}

// Classify returns the dialect of basename without validating its fields.
func Classify(basename string) (Dialect, error) {
	rule := ruleFor(strings.Split(basename, "."))
	if rule == nil {
		return DialectUnknown, &ParseError{Path: basename, Kind: ErrUnknownDialect}
	}
	return rule.Dialect, nil
}

// Parse extracts the identity fields and version token from the final
// segment of path. It has no side effects.
func Parse(path string) (FileRecord, error) {
	base := filepath.Base(path)
	tokens := strings.Split(base, ".")

	rule := ruleFor(tokens)
	if rule == nil {
		return FileRecord{}, &ParseError{Path: path, Kind: ErrUnknownDialect}
	}

	f := rule.Fields
	if len(tokens) < f.minTokens() {
		return FileRecord{}, &ParseError{
			Path:    path,
			Dialect: rule.Dialect,
			Kind:    ErrUnknownDialect,
			Detail:  fmt.Sprintf("%d dot-separated tokens, need at least %d", len(tokens), f.minTokens()),
		}
	}

	realization := tokens[f.Realization]
	if !rule.Realization.MatchString(realization) {
		return FileRecord{}, &ParseError{
			Path:    path,
			Dialect: rule.Dialect,
			Kind:    ErrInvalidRealization,
			Detail:  fmt.Sprintf("%q does not match %s", realization, rule.Realization),
		}
	}

	version := tokens[f.Version]
	if rule.VersionPrefix != "" && !strings.HasPrefix(version, rule.VersionPrefix) {
		return FileRecord{}, &ParseError{
			Path:    path,
			Dialect: rule.Dialect,
			Kind:    ErrUnknownDialect,
			Detail:  fmt.Sprintf("version token %q lacks %q prefix", version, rule.VersionPrefix),
		}
	}

	grid := NoGridLabel
	if f.GridLabel >= 0 {
		grid = tokens[f.GridLabel]
	}

	return FileRecord{
		Path:    path,
		Dialect: rule.Dialect,
		Identity: Identity{
			Model:       tokens[f.Model],
			Experiment:  tokens[f.Experiment],
			Realization: realization,
			GridLabel:   grid,
		},
		Version: strings.TrimPrefix(version, legacyVersionPrefix),
	}, nil
}
