// Package report renders the outcome of a trim run. The text format is the
// bare trimmed list, one path per line; the structured formats (json, yaml,
// toml) add the run summary and per-group decisions. Files whose name ends
// in ".zst" are zstd-compressed transparently.
package report

import (
	"time"

	"github.com/durack1/durolib/internal/resolver"
)

// Document is the serialisable form of one run.
type Document struct {
	RunID         string    `json:"run_id,omitempty" yaml:"run_id,omitempty" toml:"run_id,omitempty"`
	GeneratedAt   time.Time `json:"generated_at" yaml:"generated_at" toml:"generated_at"`
	Inputs        int       `json:"inputs" yaml:"inputs" toml:"inputs"`
	Kept          int       `json:"kept" yaml:"kept" toml:"kept"`
	Dropped       int       `json:"dropped" yaml:"dropped" toml:"dropped"`
	MetadataReads int       `json:"metadata_reads" yaml:"metadata_reads" toml:"metadata_reads"`
	Files         []string  `json:"files" yaml:"files" toml:"files"`
	Groups        []Group   `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
}

// Group records how one identity was settled.
type Group struct {
	Identity     string   `json:"identity" yaml:"identity" toml:"identity"`
	Winner       string   `json:"winner" yaml:"winner" toml:"winner"`
	Reason       string   `json:"reason" yaml:"reason" toml:"reason"`
	CreationDate string   `json:"creation_date,omitempty" yaml:"creation_date,omitempty" toml:"creation_date,omitempty"`
	Candidates   []string `json:"candidates" yaml:"candidates" toml:"candidates"`
}

// FromResult builds a Document from a resolver result. Only groups with
// more than one candidate are listed under Groups.
func FromResult(runID string, at time.Time, res *resolver.Result) Document {
	doc := Document{
		RunID:         runID,
		GeneratedAt:   at.UTC().Truncate(time.Second),
		Inputs:        res.Inputs,
		Kept:          len(res.Selections),
		Dropped:       res.Dropped(),
		MetadataReads: res.MetadataReads,
		Files:         res.Paths(),
	}
	for _, sel := range res.Selections {
		if sel.Reason == resolver.ReasonSingleton {
			continue
		}
		g := Group{
			Identity:     sel.Identity.String(),
			Winner:       sel.Winner.Path,
			Reason:       string(sel.Reason),
			CreationDate: sel.Created.String(),
		}
		for _, c := range sel.Candidates {
			g.Candidates = append(g.Candidates, c.Record.Path)
		}
		doc.Groups = append(doc.Groups, g)
	}
	return doc
}
