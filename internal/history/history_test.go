package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func sampleRun(id string, started time.Time) Run {
	return Run{
		ID:           id,
		Project:      "/src/gmp",
		StartedAt:    started,
		Duration:     1500 * time.Millisecond,
		FilesScanned: 12,
		Blocks:       40,
		Entities:     38,
		Outputs:      17,
		Warnings:     2,
		Failures:     0,
	}
}

func TestStore_RecordAndReadBack(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	started := time.Now().Truncate(time.Second)
	run := sampleRun("run-1", started)
	require.NoError(t, s.RecordRun(ctx, run, []string{"a.cpp:3: orphaned method", "b.cpp:9: unknown kind"}))

	runs, err := s.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	require.Equal(t, run.ID, got.ID)
	require.Equal(t, run.Project, got.Project)
	require.Equal(t, started.Unix(), got.StartedAt.Unix())
	require.Equal(t, run.Duration, got.Duration)
	require.Equal(t, run.FilesScanned, got.FilesScanned)
	require.Equal(t, run.Outputs, got.Outputs)
	require.Equal(t, run.Warnings, got.Warnings)

	msgs, err := s.RunWarnings(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, []string{"a.cpp:3: orphaned method", "b.cpp:9: unknown kind"}, msgs)
}

func TestStore_RecentRunsNewestFirstWithLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		run := sampleRun(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.RecordRun(ctx, run, nil))
	}

	runs, err := s.RecentRuns(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Equal(t, "e", runs[0].ID)
	require.Equal(t, "d", runs[1].ID)
	require.Equal(t, "c", runs[2].ID)
}

func TestStore_RunWarningsEmptyForUnknownRun(t *testing.T) {
	s := openStore(t)

	msgs, err := s.RunWarnings(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.RecordRun(ctx, sampleRun("persist", time.Now()), nil))
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	runs, err := s.RecentRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "persist", runs[0].ID)
}
