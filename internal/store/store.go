// Package store keeps a bounded local history of authored sessions.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zhoulin/matchquiz/internal/model/quiz"
)

// HistoryLimit caps how many authored sessions the slot retains.
const HistoryLimit = 10

// Store is an ordered, bounded, append-with-eviction collection of
// authoring-time payloads, persisted synchronously to an injected Slot on
// every write. Entries are kept most-recent-first.
type Store struct {
	mu   sync.Mutex
	slot Slot
}

// New returns a Store backed by the supplied slot.
func New(slot Slot) *Store {
	return &Store{slot: slot}
}

// Save assigns the payload a fresh identifier, strips any partner response
// (the history holds authoring-time payloads only), prepends it, truncates
// to HistoryLimit, and writes the slot back. The stored copy is returned.
func (s *Store) Save(p quiz.Payload) (quiz.Payload, error) {
	entry := p.Clone()
	entry.ID = newID()
	entry.Partner = nil

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append([]quiz.Payload{entry}, s.load()...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	if err := s.write(history); err != nil {
		return quiz.Payload{}, fmt.Errorf("persist session history: %w", err)
	}
	return entry, nil
}

// List returns the saved sessions most-recent-first. A missing, unreadable,
// or corrupt slot reads as empty history, never as an error.
func (s *Store) List() []quiz.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Find returns the saved session with the given identifier.
func (s *Store) Find(id string) (quiz.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.load() {
		if entry.ID == id {
			return entry, true
		}
	}
	return quiz.Payload{}, false
}

// Delete removes the session with the given identifier. Deleting an unknown
// identifier is a no-op, not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.load()
	kept := make([]quiz.Payload, 0, len(history))
	for _, entry := range history {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(history) {
		return nil
	}
	if err := s.write(kept); err != nil {
		return fmt.Errorf("persist session history: %w", err)
	}
	return nil
}

func (s *Store) load() []quiz.Payload {
	raw, err := s.slot.Load()
	if err != nil || len(raw) == 0 {
		return nil
	}
	var history []quiz.Payload
	if err := json.Unmarshal(raw, &history); err != nil {
		// Corrupt data degrades to "no history".
		return nil
	}
	return history
}

func (s *Store) write(history []quiz.Payload) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.slot.Store(raw)
}

// newID produces a monotonic creation-time-derived identifier. UUIDv7 sorts
// by timestamp, so saves within the same millisecond still get distinct ids.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
