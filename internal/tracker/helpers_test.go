// ABOUTME: Shared fixtures for tracker tests.
// ABOUTME: Builds components over an in-memory store with a controllable clock.
package tracker

import (
	"testing"
	"time"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/storage"
	"go.uber.org/zap"
)

var monday = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

// clock lets a test advance the resolver's notion of now.
type clock struct {
	now time.Time
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func setupTracker(t *testing.T) (*Tracker, *clock) {
	t.Helper()
	c := &clock{now: monday}
	days := &daykey.Resolver{
		Now:      func() time.Time { return c.now },
		Location: time.UTC,
	}
	store := storage.NewRecordStore(storage.NewMemoryStore(), zap.NewNop())
	t.Cleanup(func() { _ = store.Close() })
	return New(store, days, DefaultOptions()), c
}

func ptr[T any](v T) *T {
	return &v
}
