package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalWireShape(t *testing.T) {
	event := Event{
		ID:          "abc",
		Title:       "Standup",
		Description: "Daily sync",
		StartTime:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 1, 9, 15, 0, 500000000, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "abc",
		"title": "Standup",
		"description": "Daily sync",
		"start_time": "2024-01-01T09:00:00",
		"end_time": "2024-01-01T09:15:00.5"
	}`, string(data))
}
