package mockapi

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps created leads in memory, keyed by public id.
type Store struct {
	mu    sync.RWMutex
	leads map[string]map[string]any
}

func NewStore() *Store {
	return &Store{leads: make(map[string]map[string]any)}
}

// Create stores rec under a fresh id and returns the id.
func (s *Store) Create(rec map[string]any) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.leads[id] = rec
	s.mu.Unlock()
	return id
}

// All returns a copy of every stored lead.
func (s *Store) All() map[string]map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]any, len(s.leads))
	for id, rec := range s.leads {
		out[id] = rec
	}
	return out
}
