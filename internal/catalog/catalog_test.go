package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durack1/durolib/internal/naming"
	"github.com/durack1/durolib/internal/resolver"
)

func openTest(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "state", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sampleResult() *resolver.Result {
	id := naming.Identity{Model: "CESM2", Experiment: "historical", Realization: "r1i1p1f1", GridLabel: "glb-l-gr"}
	win := naming.FileRecord{Path: "/p/b.xml", Identity: id, Version: "v20190601"}
	lose := naming.FileRecord{Path: "/p/a.xml", Identity: id, Version: "v20190101"}
	legacyID := naming.Identity{Model: "ACCESS1-0", Experiment: "historical", Realization: "r1i1p1"}
	legacy := naming.FileRecord{Path: "/w/c.xml", Identity: legacyID, Version: "1"}
	return &resolver.Result{
		Inputs: 3,
		Selections: []resolver.Selection{
			{Identity: id, Winner: win, Reason: resolver.ReasonCreationDate,
				Candidates: []resolver.Candidate{{Record: lose}, {Record: win}}},
			{Identity: legacyID, Winner: legacy, Reason: resolver.ReasonSingleton,
				Candidates: []resolver.Candidate{{Record: legacy}}},
		},
	}
}

func TestRecordRun_RoundTrip(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()

	started := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	run := NewRun("/p/user_pub/xclim", started)
	run.FinishedAt = started.Add(2 * time.Second)
	run.Inputs, run.Kept = 3, 2
	sels := SelectionsFrom(run.ID, sampleResult())

	require.NoError(t, c.RecordRun(ctx, run, sels))

	runs, err := c.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.True(t, started.Equal(runs[0].StartedAt))
	assert.True(t, run.FinishedAt.Equal(runs[0].FinishedAt))
	assert.Equal(t, "/p/user_pub/xclim", runs[0].Source)
	assert.Equal(t, 3, runs[0].Inputs)
	assert.Equal(t, 2, runs[0].Kept)

	got, err := c.Selections(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/p/b.xml", got[0].Path)
	assert.Equal(t, "glb-l-gr", got[0].GridLabel)
	assert.Equal(t, 2, got[0].Candidates)
	assert.Equal(t, "creation-date", got[0].Reason)
	assert.Equal(t, "/w/c.xml", got[1].Path)
	assert.Equal(t, naming.NoGridLabel, got[1].GridLabel)
	assert.Equal(t, "singleton", got[1].Reason)
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		run := NewRun("args", base.Add(time.Duration(i)*time.Hour))
		run.FinishedAt = run.StartedAt
		require.NoError(t, c.RecordRun(ctx, run, nil))
		ids = append(ids, run.ID)
	}

	runs, err := c.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)
}

func TestRecordRun_RejectsBadInput(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()

	err := c.RecordRun(ctx, Run{ID: "not-a-uuid"}, nil)
	assert.ErrorIs(t, err, ErrInvalidRun)

	run := NewRun("args", time.Now())
	sels := []Selection{{RunID: NewRun("", time.Now()).ID, Path: "/p/x.xml"}}
	err = c.RecordRun(ctx, run, sels)
	assert.ErrorIs(t, err, ErrInvalidRun)

	runs, err := c.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs, "failed transaction leaves no run behind")
}

func TestRecordRun_DuplicateIDFails(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()
	run := NewRun("args", time.Now())

	require.NoError(t, c.RecordRun(ctx, run, nil))
	assert.Error(t, c.RecordRun(ctx, run, nil))
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path)
	require.NoError(t, err)
	run := NewRun("args", time.Now())
	require.NoError(t, c.RecordRun(context.Background(), run, nil))
	require.NoError(t, c.Close())

	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, path, c.Path())
	runs, err := c.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestSelections_UnknownRun(t *testing.T) {
	c := openTest(t)
	got, err := c.Selections(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
