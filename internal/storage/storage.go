package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"eventscheduler/internal/models"
	"eventscheduler/internal/timeparse"

	"github.com/google/uuid"
)

// FileStore persists the full event collection as a pretty-printed JSON
// array in a single flat file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// eventRecord mirrors the on-disk shape. Load decodes records individually
// so one bad record degrades to a warning instead of losing the whole file.
type eventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// Load reads the backing file into a collection. It never fails: an absent
// or empty file is an empty collection, malformed JSON degrades to an empty
// collection with a warning, records without an id get a fresh one, and
// records with unparsable timestamps are skipped with a warning.
func (f *FileStore) Load() []models.Event {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: reading %s: %v", f.Path, err)
		}
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var records []eventRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("WARN: decoding %s: %v", f.Path, err)
		return nil
	}

	events := make([]models.Event, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			// Older files were written without ids.
			rec.ID = uuid.NewString()
		}
		start, err := timeparse.Parse("start_time", rec.StartTime)
		if err != nil {
			log.Printf("WARN: malformed time data in event ID %s: %v", rec.ID, err)
			continue
		}
		end, err := timeparse.Parse("end_time", rec.EndTime)
		if err != nil {
			log.Printf("WARN: malformed time data in event ID %s: %v", rec.ID, err)
			continue
		}
		events = append(events, models.Event{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			StartTime:   start,
			EndTime:     end,
		})
	}
	return events
}

// Save writes the whole collection, replacing the file atomically via a
// temp file and rename so a reader never sees a half-written state.
func (f *FileStore) Save(events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	data, err := json.MarshalIndent(events, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize events: %w", err)
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write events: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}
