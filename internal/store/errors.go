package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPersistence wraps any failure to write the collection to disk. The
// in-memory mutation is kept regardless; see EventStore.
var ErrPersistence = errors.New("failed to persist events")

// ValidationError carries the full list of validation messages for a request,
// including the ordering rule violations only the store can detect.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NotFoundError reports an unknown event id on update or delete.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Event with ID '%s' not found.", e.ID)
}
