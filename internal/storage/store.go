// ABOUTME: RecordStore loads and saves whole collections as JSON under string keys.
// ABOUTME: Corrupt or missing values fall back to the caller's default; write failures are returned.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// RecordStore persists serialized values in a Backend.
type RecordStore struct {
	backend Backend
	logger  *zap.Logger
}

// NewRecordStore wraps backend. A nil logger discards log output.
func NewRecordStore(backend Backend, logger *zap.Logger) *RecordStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordStore{backend: backend, logger: logger}
}

// Load reads the value stored under key. A missing key, a read failure or a
// value that does not decode as T all yield def; none of these reach the caller.
func Load[T any](s *RecordStore, key string, def T) T {
	data, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("read failed, using default", zap.String("key", key), zap.Error(err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Warn("corrupt value, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Save serializes v and writes it under key.
func (s *RecordStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: encode: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.logger.Debug("saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Remove deletes key. Removing a missing key is a no-op.
func (s *RecordStore) Remove(key string) error {
	if err := s.backend.Delete(key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Backend exposes the underlying backend, e.g. for migrations.
func (s *RecordStore) Backend() Backend {
	return s.backend
}

// Close closes the underlying backend.
func (s *RecordStore) Close() error {
	return s.backend.Close()
}
