package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaport/qaport/internal/progress"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "progress.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadOrInitDefaults(t *testing.T) {
	s := testStore(t)

	rec, err := s.LoadOrInit()
	require.NoError(t, err)
	assert.Empty(t, rec.CurrentModule)
	assert.Empty(t, rec.CompletedModules)
	assert.Equal(t, "custom", rec.LearningPath)
	assert.True(t, rec.Preferences.HandsOnPreference)

	// Nothing was written to disk by a read.
	_, statErr := os.Stat(s.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	rec := progress.NewRecord()
	rec.CurrentModule = "programming_with_ai"
	rec.CurrentProgress = 40
	rec.Bookmarks = []string{"programming_with_ai/1"}
	rec.Notes["programming_with_ai/1"] = "good examples here"
	rec.ModuleStates["programming_with_ai"] = &progress.ModuleState{
		Status:        progress.StatusInProgress,
		SlidePosition: 1,
		Progress:      40,
	}
	require.NoError(t, s.Save(rec))

	back, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "programming_with_ai", back.CurrentModule)
	assert.Equal(t, 40, back.CurrentProgress)
	assert.Equal(t, rec.Bookmarks, back.Bookmarks)
	assert.Equal(t, "good examples here", back.Notes["programming_with_ai/1"])
	st := back.ModuleStates["programming_with_ai"]
	require.NotNil(t, st)
	assert.Equal(t, progress.StatusInProgress, st.Status)
	assert.Equal(t, 1, st.SlidePosition)
}

func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)

	rec := progress.NewRecord()
	require.NoError(t, s.Save(rec))

	rec.CurrentProgress = 60
	rec.CurrentModule = "qa_ai_integration"
	rec.ModuleStates["qa_ai_integration"] = &progress.ModuleState{
		Status:   progress.StatusInProgress,
		Progress: 60,
	}
	require.NoError(t, s.Save(rec))

	back, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 60, back.CurrentProgress)

	// The atomic write leaves no temp files behind.
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "nested", "deeper", "progress.json"))

	require.NoError(t, s.Save(progress.NewRecord()))

	_, err := s.Load()
	require.NoError(t, err)
}

func TestSaveRejectsInvalidRecord(t *testing.T) {
	s := testStore(t)

	rec := progress.NewRecord()
	rec.CurrentProgress = 150
	err := s.Save(rec)

	var invalid *progress.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
	_, statErr := os.Stat(s.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "invalid record must not reach disk")
}

func TestLoadRejectsCorruptJSON(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"current_module": `), 0o644))

	_, err := s.Load()
	var invalid *progress.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
}

func TestLoadRejectsInvalidRecord(t *testing.T) {
	s := testStore(t)
	raw := `{
  "current_module": "",
  "completed_modules": ["m1", "m1"],
  "current_progress": 0,
  "overall_completion": 0
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	_, err := s.Load()
	var invalid *progress.ErrInvalidRecord
	require.ErrorAs(t, err, &invalid)
}

func TestReset(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(progress.NewRecord()))
	require.NoError(t, s.Reset())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	// Resetting an already-empty store is fine.
	require.NoError(t, s.Reset())
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("QAPORT_DATA", "/tmp/custom/progress.json")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/progress.json", p)
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("QAPORT_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "qaport", "progress.json"), p)
}
