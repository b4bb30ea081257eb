package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tably/internal/settings"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tably.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_LoadMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", "v1"))
	v, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// Save overwrites.
	require.NoError(t, s.Save(ctx, "k", "v2"))
	v, ok, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tably.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSettingsRecord_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cfg := settings.Settings{
		MultiplicationTables: []int{2, 5},
		DivisionTables:       []int{3},
		ExerciseCount:        settings.CountAll,
	}
	require.NoError(t, SaveSettings(ctx, s, cfg))

	got, err := LoadSettings(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, got.MultiplicationTables)
	assert.Equal(t, []int{3}, got.DivisionTables)
	assert.Equal(t, settings.CountAll, got.ExerciseCount)
}

func TestLoadSettings_MissingReturnsDefaults(t *testing.T) {
	s := openTestStore(t)

	got, err := LoadSettings(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)
}

func TestLoadSettings_CorruptReturnsDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, SettingsKey, "{not json"))

	got, err := LoadSettings(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)
}

func TestLoadSettings_NormalizesStoredValues(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Out-of-range tables and a zero division table, written by hand.
	raw := `{"multiplicationTables":[12,3,3],"divisionTables":[0,4],"exerciseCount":20}`
	require.NoError(t, s.Save(ctx, SettingsKey, raw))

	got, err := LoadSettings(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.MultiplicationTables)
	assert.Equal(t, []int{4}, got.DivisionTables)
	assert.Equal(t, settings.Count(20), got.ExerciseCount)
}

func TestScoresRecord_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := map[string]int{"multiplication-5": 7, "division-3": 2}
	require.NoError(t, SaveScores(ctx, s, in))

	got, err := LoadScores(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestLoadScores_MissingOrCorrupt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := LoadScores(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, ScoresKey, "[]"))
	got, err = LoadScores(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, got)
}
