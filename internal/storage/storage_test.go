package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"eventscheduler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "events.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := tempStore(t)
	events := []models.Event{
		{
			ID:          "a",
			Title:       "Standup",
			Description: "Daily sync",
			StartTime:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "b",
			Title:       "Retro",
			Description: "",
			StartTime:   time.Date(2024, 1, 5, 16, 30, 0, 500000000, time.UTC),
			EndTime:     time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, fs.Save(events))
	loaded := fs.Load()

	assert.Equal(t, events, loaded)
}

func TestSaveWritesPrettyPrintedArray(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save([]models.Event{{
		ID:        "a",
		Title:     "Standup",
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}}))

	data, err := os.ReadFile(fs.Path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "["))
	assert.Contains(t, text, "    \"id\": \"a\"")
	assert.Contains(t, text, "\"start_time\": \"2024-01-01T09:00:00\"")
}

func TestSaveNilCollectionWritesEmptyArray(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save(nil))

	data, err := os.ReadFile(fs.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLoadMissingFile(t *testing.T) {
	fs := tempStore(t)
	assert.Empty(t, fs.Load())
}

func TestLoadEmptyFile(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path, []byte("  \n"), 0o644))
	assert.Empty(t, fs.Load())
}

func TestLoadMalformedJSON(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path, []byte("{not json"), 0o644))
	assert.Empty(t, fs.Load())
}

func TestLoadAssignsMissingIDs(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path, []byte(`[
    {
        "title": "Legacy",
        "description": "written before ids existed",
        "start_time": "2024-01-01T09:00:00",
        "end_time": "2024-01-01T10:00:00"
    }
]`), 0o644))

	loaded := fs.Load()
	require.Len(t, loaded, 1)
	assert.NotEmpty(t, loaded[0].ID)
	assert.Equal(t, "Legacy", loaded[0].Title)
}

func TestLoadSkipsUnparsableTimestamps(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path, []byte(`[
    {
        "id": "bad",
        "title": "Broken",
        "start_time": "sometime",
        "end_time": "2024-01-01T10:00:00"
    },
    {
        "id": "good",
        "title": "Fine",
        "start_time": "2024-01-01T09:00:00",
        "end_time": "2024-01-01T10:00:00"
    }
]`), 0o644))

	loaded := fs.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "good", loaded[0].ID)
}

func TestSaveReplacesExistingContent(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path, []byte("stale content"), 0o644))

	require.NoError(t, fs.Save([]models.Event{}))

	data, err := os.ReadFile(fs.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// The temp file used for atomic replace must not linger.
	entries, err := os.ReadDir(filepath.Dir(fs.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveErrorOnUnwritableDirectory(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "events.json"))
	err := fs.Save([]models.Event{})
	assert.Error(t, err)
}
