// ABOUTME: Backend interface for string-keyed record storage.
// ABOUTME: Defines the collection keys and the not-found sentinel.
package storage

import (
	"errors"
)

// Collection keys. Each names one independently persisted, independently
// clearable record set.
const (
	KeyHabits    = "habits"
	KeyWorkouts  = "workouts"
	KeyWellbeing = "wellbeingLog"
	KeyNotes     = "pastNotes"
)

// CollectionKeys lists every collection key in display order.
var CollectionKeys = []string{KeyHabits, KeyWorkouts, KeyWellbeing, KeyNotes}

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a durable string-keyed byte store.
// This interface allows swapping implementations (e.g., for testing).
type Backend interface {
	// Get returns the value under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists every stored key in ascending order.
	Keys() ([]string, error)

	Close() error
}
