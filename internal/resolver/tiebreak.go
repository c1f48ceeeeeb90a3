package resolver

import (
	"context"

	"github.com/durack1/durolib/internal/naming"
	"github.com/durack1/durolib/internal/probe"
)

// Reason records which rung of the tie-break ladder settled a group.
type Reason string

const (
	ReasonSingleton    Reason = "singleton"
	ReasonCreationDate Reason = "creation-date"
	ReasonVersion      Reason = "version"
)

// Candidate is one member of a group together with its creation date.
// Created is zero for singleton groups, which are never probed.
type Candidate struct {
	Record  naming.FileRecord
	Created probe.Date
}

// Selection is the outcome for one identity group.
type Selection struct {
	Identity   naming.Identity
	Winner     naming.FileRecord
	Created    probe.Date
	Candidates []Candidate
	Reason     Reason
}

// dateFunc fetches the creation date for one path.
type dateFunc func(ctx context.Context, path string) (probe.Date, error)

// resolveGroup picks the single winner of g. Records must be in ascending
// path order.
func (r *Resolver) resolveGroup(ctx context.Context, g Group, dates dateFunc) (Selection, error) {
	sel := Selection{Identity: g.Identity}

	if len(g.Records) == 1 {
		sel.Winner = g.Records[0]
		sel.Candidates = []Candidate{{Record: g.Records[0]}}
		sel.Reason = ReasonSingleton
		return sel, nil
	}

	sel.Candidates = make([]Candidate, len(g.Records))
	var newest probe.Date
	for i, rec := range g.Records {
		d, err := dates(ctx, rec.Path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Selection{}, ctxErr
			}
			return Selection{}, &Error{Kind: probe.ErrAccess, Path: rec.Path, Err: err}
		}
		sel.Candidates[i] = Candidate{Record: rec, Created: d}
		if i == 0 || d > newest {
			newest = d
		}
	}

	var latest []Candidate
	for _, c := range sel.Candidates {
		if c.Created == newest {
			latest = append(latest, c)
		}
	}

	if len(latest) == 1 {
		sel.Winner = latest[0].Record
		sel.Created = newest
		sel.Reason = ReasonCreationDate
		return sel, nil
	}

	best := latest[0]
	bestOrd := r.ordinal(best.Record)
	for _, c := range latest[1:] {
		// >= so that exact ties go to the later path.
		if ord := r.ordinal(c.Record); ord >= bestOrd {
			best, bestOrd = c, ord
		}
	}
	sel.Winner = best.Record
	sel.Created = newest
	sel.Reason = ReasonVersion
	return sel, nil
}

func (r *Resolver) ordinal(rec naming.FileRecord) float64 {
	ord, ok := VersionOrdinal(rec.Version)
	if !ok {
		r.log.Warn("Unrecognised version token %q in %s; ranking below %q", rec.Version, rec.Path, latestToken)
	}
	return ord
}
