// ABOUTME: WorkoutLog is the append-only list of logged exercises.
// ABOUTME: Display order is newest first; removal translates display indices to storage order.
package tracker

import (
	"strings"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/storage"
)

// WorkoutLog owns the workouts collection.
type WorkoutLog struct {
	store *storage.RecordStore
	days  *daykey.Resolver
}

// NewWorkoutLog creates a log over store.
func NewWorkoutLog(store *storage.RecordStore, days *daykey.Resolver) *WorkoutLog {
	return &WorkoutLog{store: store, days: days}
}

// All returns the entries in storage (oldest first) order.
func (w *WorkoutLog) All() []models.WorkoutEntry {
	return storage.Load(w.store, storage.KeyWorkouts, []models.WorkoutEntry{})
}

// Add appends an entry logged today.
func (w *WorkoutLog) Add(name string, sets, reps, restSeconds int) (*models.WorkoutEntry, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, reject("exercise name is empty")
	case sets < 1:
		return nil, reject("sets must be at least 1, got %d", sets)
	case reps < 1:
		return nil, reject("reps must be at least 1, got %d", reps)
	case restSeconds < 0:
		return nil, reject("rest must not be negative, got %d", restSeconds)
	}

	entries := w.All()
	e := models.NewWorkoutEntry(name, sets, reps, w.days.TodayDateKey()).WithRest(restSeconds)
	entries = append(entries, *e)
	if err := w.store.Save(storage.KeyWorkouts, entries); err != nil {
		return nil, err
	}
	return e, nil
}

// Remove deletes the entry at storage index.
func (w *WorkoutLog) Remove(index int) (*models.WorkoutEntry, error) {
	entries := w.All()
	if index < 0 || index >= len(entries) {
		return nil, outOfRange(index, len(entries))
	}

	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	if err := w.store.Save(storage.KeyWorkouts, entries); err != nil {
		return nil, err
	}
	return &removed, nil
}

// RemoveDisplayed deletes the entry at displayIndex of the newest-first view.
func (w *WorkoutLog) RemoveDisplayed(displayIndex int) (*models.WorkoutEntry, error) {
	n := len(w.All())
	if displayIndex < 0 || displayIndex >= n {
		return nil, outOfRange(displayIndex, n)
	}
	return w.Remove(n - 1 - displayIndex)
}

// ListNewestFirst returns a reversed copy of the log.
func (w *WorkoutLog) ListNewestFirst() []models.WorkoutEntry {
	entries := w.All()
	out := make([]models.WorkoutEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// CountToday counts entries logged today.
func (w *WorkoutLog) CountToday() int {
	return w.CountOn(w.days.TodayDateKey())
}

// CountOn counts entries logged on day.
func (w *WorkoutLog) CountOn(day string) int {
	n := 0
	for _, e := range w.All() {
		if e.LoggedOn == day {
			n++
		}
	}
	return n
}

// ClearAll empties the log.
func (w *WorkoutLog) ClearAll() error {
	return w.store.Remove(storage.KeyWorkouts)
}
