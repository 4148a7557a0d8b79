package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store. It backs tests and ephemeral runs, and
// serializes values through JSON like the durable backends so that type
// round-trip behavior is identical.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, v any) error {
	s.mu.RLock()
	data, ok := s.slots[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse slot %q: %w", key, err)
	}
	return nil
}

func (s *MemStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal slot %q: %w", key, err)
	}
	s.mu.Lock()
	s.slots[key] = data
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a slot with unparsable bytes. Tests use it to exercise
// the fallback-to-default path.
func (s *MemStore) Corrupt(key string) {
	s.mu.Lock()
	s.slots[key] = []byte("{not json")
	s.mu.Unlock()
}
