package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/durack1/durolib/internal/resolver"
)

// ErrInvalidRun is returned by RecordRun for runs that cannot be stored.
var ErrInvalidRun = errors.New("invalid run")

// Run is one recorded trim invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Source     string // Where the input list came from: a directory, a JSON file or "args".
	Inputs     int
	Kept       int
}

// Selection is one kept file of a run.
type Selection struct {
	RunID       string
	Path        string
	Model       string
	Experiment  string
	Realization string
	GridLabel   string
	Version     string
	Candidates  int
	Reason      string
}

// NewRun returns a Run with a fresh identifier.
func NewRun(source string, started time.Time) Run {
	return Run{ID: uuid.NewString(), Source: source, StartedAt: started}
}

// SelectionsFrom flattens a resolver result into catalog rows for runID.
func SelectionsFrom(runID string, res *resolver.Result) []Selection {
	out := make([]Selection, 0, len(res.Selections))
	for _, s := range res.Selections {
		out = append(out, Selection{
			RunID:       runID,
			Path:        s.Winner.Path,
			Model:       s.Identity.Model,
			Experiment:  s.Identity.Experiment,
			Realization: s.Identity.Realization,
			GridLabel:   s.Identity.GridLabel,
			Version:     s.Winner.Version,
			Candidates:  len(s.Candidates),
			Reason:      string(s.Reason),
		})
	}
	return out
}

// RecordRun stores run and its selections in a single transaction.
func (c *Catalog) RecordRun(ctx context.Context, run Run, sels []Selection) error {
	if _, err := uuid.Parse(run.ID); err != nil {
		return fmt.Errorf("%w: id %q: %v", ErrInvalidRun, run.ID, err)
	}
	return c.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, started_at, finished_at, source, inputs, kept) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, formatTime(run.StartedAt), formatTime(run.FinishedAt), run.Source, run.Inputs, run.Kept)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO selections (run_id, path, model, experiment, realization, grid_label, version, candidates, reason)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range sels {
			if s.RunID != "" && s.RunID != run.ID {
				return fmt.Errorf("%w: selection %s belongs to run %s", ErrInvalidRun, s.Path, s.RunID)
			}
			if _, err := stmt.ExecContext(ctx, run.ID, s.Path, s.Model, s.Experiment,
				s.Realization, s.GridLabel, s.Version, s.Candidates, s.Reason); err != nil {
				return fmt.Errorf("insert selection %s: %w", s.Path, err)
			}
		}
		return nil
	})
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (c *Catalog) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := c.conn.QueryContext(ctx,
		`SELECT id, started_at, finished_at, source, inputs, kept
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished, &r.Source, &r.Inputs, &r.Kept); err != nil {
			return nil, err
		}
		if r.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if r.FinishedAt, err = parseTime(finished); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Selections returns the kept files of runID ordered by path.
func (c *Catalog) Selections(ctx context.Context, runID string) ([]Selection, error) {
	rows, err := c.conn.QueryContext(ctx,
		`SELECT run_id, path, model, experiment, realization, grid_label, version, candidates, reason
		 FROM selections WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.RunID, &s.Path, &s.Model, &s.Experiment, &s.Realization,
			&s.GridLabel, &s.Version, &s.Candidates, &s.Reason); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) { return time.Parse(timeLayout, s) }
