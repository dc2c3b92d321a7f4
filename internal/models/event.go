package models

import (
	"encoding/json"
	"time"

	"eventscheduler/internal/timeparse"
)

// Event is a single scheduled item. StartTime is always strictly before
// EndTime for every event held by the store.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// eventJSON is the wire and on-disk representation: timestamps are ISO 8601
// strings, field names match the HTTP API.
type eventJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   timeparse.Format(e.StartTime),
		EndTime:     timeparse.Format(e.EndTime),
	})
}
