package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository is the balance-tuning event log. The engine records one event
// per notable gameplay action; stats aggregation reads them back for the
// stats endpoint.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the session's events in memory, in record order.
// Telemetry is tuning data, not part of the save, so nothing here persists
// across restarts.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	meta, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(meta),
	})
	r.nextID++
	return nil
}

// GetEvents returns events at or after since. An empty eventTypes slice
// means every type.
func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var wanted map[EventType]bool
	if len(eventTypes) > 0 {
		wanted = make(map[EventType]bool, len(eventTypes))
		for _, t := range eventTypes {
			wanted[t] = true
		}
	}

	result := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Timestamp.Before(since) {
			continue
		}
		if wanted != nil && !wanted[ev.Type] {
			continue
		}
		result = append(result, ev)
	}
	return result, nil
}

// Clear drops all events and resets IDs.
func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.nextID = 1
	return nil
}
