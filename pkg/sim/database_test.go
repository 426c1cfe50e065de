package sim

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoadRuns(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	defer store.Close()

	first := RunSummary{
		SessionID:   "run-one",
		Apples:      2,
		LengthGain:  2,
		GirthGain:   3,
		FinalLength: 5,
		FinalGirth:  7,
		FinalColor:  "yellow",
		CreatedAt:   time.Now().Add(-time.Minute).UTC(),
	}
	second := RunSummary{
		SessionID:   "run-two",
		Apples:      6,
		LengthGain:  1,
		GirthGain:   1,
		FinalLength: 7,
		FinalGirth:  7,
		FinalColor:  "red",
		CreatedAt:   time.Now().UTC(),
	}

	require.NoError(t, store.SaveRun(first))
	require.NoError(t, store.SaveRun(second))

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, "run-two", runs[0].SessionID)
	assert.Equal(t, "run-one", runs[1].SessionID)

	assert.Equal(t, 2, runs[1].Apples)
	assert.Equal(t, 5, runs[1].FinalLength)
	assert.Equal(t, 7, runs[1].FinalGirth)
	assert.Equal(t, "yellow", runs[1].FinalColor)
}

func TestStore_RecentRunsHonorsLimit(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveRun(RunSummary{
			SessionID: "run",
			Apples:    i,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	runs, err := store.RecentRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
	assert.Equal(t, 4, runs[0].Apples, "newest run first")
}

func TestStore_EmptyHistory(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
