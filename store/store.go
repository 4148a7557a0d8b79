// Package store persists named slots of JSON-serializable application
// state. Each slot holds one whole collection; Save always rewrites the
// full value, so a slot is atomic-looking to its single caller but nothing
// is transactional across slots. There is no locking: one process (one
// "open till") is assumed, and concurrent writers race with last-write-wins
// semantics.
package store

import (
	"errors"
	"log"
)

// ErrNotFound reports a slot that has never been saved.
var ErrNotFound = errors.New("slot not found")

// Store binds slot keys to durable storage.
type Store interface {
	// Load unmarshals the slot 'key' into 'v'. It returns ErrNotFound when
	// the slot is absent.
	Load(key string, v any) error
	// Save marshals 'v' and writes it to the slot 'key' synchronously.
	Save(key string, v any) error
}

// Get loads the slot 'key' and returns its value, falling back to 'def'
// when the slot is absent or unreadable. Parse failures are logged, never
// surfaced: a corrupt slot degrades to the default value.
func Get[T any](s Store, key string, def T) T {
	var v T
	err := s.Load(key, &v)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("warning: cannot read slot %q, using default: %v", key, err)
	}
	return def
}
