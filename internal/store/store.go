package store

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"eventscheduler/internal/models"
	"eventscheduler/internal/validate"

	"github.com/google/uuid"
)

const (
	msgStartBeforeEnd        = "Start time must be strictly before end time."
	msgUpdatedStartBeforeEnd = "Updated start time must be strictly before updated end time."
)

// Saver persists the full collection after every mutation.
type Saver interface {
	Save(events []models.Event) error
}

// EventStore owns the in-memory event collection. All access goes through its
// methods; each mutating method holds the lock across read, mutate and
// persist so no caller ever observes a half-applied change.
//
// A failed save still returns the mutated event alongside ErrPersistence:
// the in-memory collection stays authoritative for this process even when
// durability failed.
type EventStore struct {
	mu     sync.Mutex
	events []models.Event
	saver  Saver
}

func NewEventStore(initial []models.Event, saver Saver) *EventStore {
	return &EventStore{events: initial, saver: saver}
}

// Create validates the payload, assigns a fresh id and appends the event.
func (s *EventStore) Create(data map[string]any) (models.Event, error) {
	patch, errs := validate.Validate(data, false)
	if len(errs) > 0 {
		return models.Event{}, &ValidationError{Messages: errs}
	}
	// Validation in create mode guarantees all four fields parsed.
	if !patch.StartTime.Before(*patch.EndTime) {
		return models.Event{}, &ValidationError{Messages: []string{msgStartBeforeEnd}}
	}

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       *patch.Title,
		Description: *patch.Description,
		StartTime:   *patch.StartTime,
		EndTime:     *patch.EndTime,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return event, s.persist()
}

// List returns every event sorted by ascending start time. Events that share
// a start time keep their insertion order.
func (s *EventStore) List() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]models.Event, len(s.events))
	copy(sorted, s.events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// Update merges the supplied fields onto the stored event and swaps the
// merged candidate in only if it still satisfies start<end. A rejected
// update leaves the stored event untouched.
func (s *EventStore) Update(id string, data map[string]any) (models.Event, error) {
	patch, errs := validate.Validate(data, true)
	if len(errs) > 0 {
		return models.Event{}, &ValidationError{Messages: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Event{}, &NotFoundError{ID: id}
	}

	candidate := s.events[idx]
	if patch.Title != nil {
		candidate.Title = *patch.Title
	}
	if patch.Description != nil {
		candidate.Description = *patch.Description
	}
	if patch.StartTime != nil {
		candidate.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		candidate.EndTime = *patch.EndTime
	}

	if !candidate.StartTime.Before(candidate.EndTime) {
		return models.Event{}, &ValidationError{Messages: []string{msgUpdatedStartBeforeEnd}}
	}

	s.events[idx] = candidate
	return candidate, s.persist()
}

// Delete removes the event with the given id and returns it for the
// confirmation message.
func (s *EventStore) Delete(id string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Event{}, &NotFoundError{ID: id}
	}

	removed := s.events[idx]
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	return removed, s.persist()
}

func (s *EventStore) indexOf(id string) int {
	for i, event := range s.events {
		if event.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection through the saver. Callers must hold
// the lock.
func (s *EventStore) persist() error {
	snapshot := make([]models.Event, len(s.events))
	copy(snapshot, s.events)
	if err := s.saver.Save(snapshot); err != nil {
		log.Printf("ERROR: saving events: %v", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
