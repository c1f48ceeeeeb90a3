package naming

import (
	"regexp"
	"slices"
	"strings"
)

// Dialect identifies one of the filename layout conventions used across
// archive generations.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectLegacy
	DialectArchiveGen5
	DialectArchiveGen6
)

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "legacy"
	case DialectArchiveGen5:
		return "archive-gen5"
	case DialectArchiveGen6:
		return "archive-gen6"
	}
	return "unknown"
}

// NoGridLabel is the grid label recorded for dialects that do not encode a
// grid in the filename.
const NoGridLabel = ""

// legacyVersionPrefix marks the version token in legacy names. It is also
// stripped from version tokens of the newer dialects when present.
const legacyVersionPrefix = "ver-"

// fieldTable holds the dot-token positions of the identity fields. A
// negative GridLabel means the dialect has no grid token.
type fieldTable struct {
	Model       int
	Experiment  int
	Realization int
	GridLabel   int
	Version     int
}

// minTokens is the smallest token count that covers every position in the table.
func (f fieldTable) minTokens() int {
	n := 0
	for _, i := range []int{f.Model, f.Experiment, f.Realization, f.GridLabel, f.Version} {
		if i+1 > n {
			n = i + 1
		}
	}
	return n
}

// DialectRule pairs a classification predicate with the dialect's field
// table and realization pattern. Rules are evaluated in order by
// [Classify]; first match wins.
type DialectRule struct {
	Dialect       Dialect
	Match         func(tokens []string) bool
	Fields        fieldTable
	VersionPrefix string // required prefix on the version token, if any
	Realization   *regexp.Regexp
}

var (
	reRealization      = regexp.MustCompile(`^r\d{1,2}i\d{1,2}p\d{1,3}$`)
	reRealizationForce = regexp.MustCompile(`^r\d{1,2}i\d{1,2}p\d{1,3}f\d{1,3}$`)
)

// archiveFields is shared by both archive generations:
// SUITE.activity.experiment.institution.model.realization.table.variable.realm.grid.version.…
var archiveFields = fieldTable{
	Model:       4,
	Experiment:  2,
	Realization: 5,
	GridLabel:   9,
	Version:     10,
}

// legacyFields: suite.model.experiment.realization.freq.realm.table.variable.ver-X.…
var legacyFields = fieldTable{
	Model:       1,
	Experiment:  2,
	Realization: 3,
	GridLabel:   -1,
	Version:     8,
}

// dialects is the ordered classification table.
var dialects = []DialectRule{
	{
		Dialect:     DialectArchiveGen6,
		Match:       suiteIs("CMIP6"),
		Fields:      archiveFields,
		Realization: reRealizationForce,
	},
	{
		Dialect:     DialectArchiveGen5,
		Match:       suiteIs("CMIP5"),
		Fields:      archiveFields,
		Realization: reRealization,
	},
	{
		Dialect:       DialectLegacy,
		Match:         hasLegacyVersion,
		Fields:        legacyFields,
		VersionPrefix: legacyVersionPrefix,
		Realization:   reRealization,
	},
}

// Dialects returns a copy of the ordered classification table.
func Dialects() []DialectRule {
	return slices.Clone(dialects)
}

func suiteIs(suite string) func([]string) bool {
	return func(tokens []string) bool {
		return len(tokens) > 0 && tokens[0] == suite
	}
}

func hasLegacyVersion(tokens []string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t, legacyVersionPrefix) {
			return true
		}
	}
	return false
}

// ruleFor returns the first rule matching tokens, or nil.
func ruleFor(tokens []string) *DialectRule {
	for i := range dialects {
		if dialects[i].Match(tokens) {
			return &dialects[i]
		}
	}
	return nil
}
