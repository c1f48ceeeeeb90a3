package pipeline

import (
	"time"

	"github.com/durack1/durolib/internal/resolver"
)

// RunStats tracks aggregate counters for one run.
type RunStats struct {
	RunID         string
	Source        string
	Inputs        int
	Groups        int
	Duplicated    int // Groups with more than one candidate.
	Kept          int
	Dropped       int
	MetadataReads int
	ReportBytes   int64 // Zero when the report went to stdout.
	Elapsed       time.Duration
}

func statsFrom(res *resolver.Result) RunStats {
	s := RunStats{
		Inputs:        res.Inputs,
		Groups:        len(res.Selections),
		Kept:          len(res.Selections),
		Dropped:       res.Dropped(),
		MetadataReads: res.MetadataReads,
	}
	for _, sel := range res.Selections {
		if len(sel.Candidates) > 1 {
			s.Duplicated++
		}
	}
	return s
}
