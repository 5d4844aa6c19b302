package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "stress_test", "echocardiogram"))
	require.NoError(t, store.Record(ctx, "stress_test", "echocardiogram"))
	// A one-off correction stays below the recurrence threshold.
	require.NoError(t, store.Record(ctx, "generic", "lab_results"))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, CorrectionStat{
		DetectedType:  "stress_test",
		CorrectedType: "echocardiogram",
		Count:         2,
	}, stats[0])
}

func TestSQLiteStoreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestSQLiteStoreFeedsCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for range 3 {
		require.NoError(t, store.Record(ctx, "generic", "carotid_doppler"))
	}

	snap := NewCorrectionCache(store).Snapshot(ctx)
	assert.InDelta(t, 0.31, snap.Adjust("generic", 0.40), 1e-9)
	assert.InDelta(t, 0.49, snap.Adjust("carotid_doppler", 0.40), 1e-9)
}
