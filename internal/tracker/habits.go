// ABOUTME: HabitLedger manages the positional list of daily habits.
// ABOUTME: Supports add, toggle, remove, bulk clear, and completion counts per day.
package tracker

import (
	"fmt"
	"strings"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/storage"
)

// HabitFilter selects which habits List returns.
type HabitFilter string

const (
	FilterAll       HabitFilter = "all"
	FilterCompleted HabitFilter = "completed"
	FilterPending   HabitFilter = "pending"
)

// ParseHabitFilter converts user input to a HabitFilter. Empty input means all.
func ParseHabitFilter(s string) (HabitFilter, error) {
	switch HabitFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterCompleted:
		return FilterCompleted, nil
	case FilterPending:
		return FilterPending, nil
	}
	return "", fmt.Errorf("unknown filter %q (use all, completed or pending)", s)
}

// IndexedHabit pairs a habit with its position in the ledger.
type IndexedHabit struct {
	Index int
	models.Habit
}

// HabitLedger owns the habits collection.
type HabitLedger struct {
	store *storage.RecordStore
	days  *daykey.Resolver
}

// NewHabitLedger creates a ledger over store.
func NewHabitLedger(store *storage.RecordStore, days *daykey.Resolver) *HabitLedger {
	return &HabitLedger{store: store, days: days}
}

// All returns the habits in storage order.
func (l *HabitLedger) All() []models.Habit {
	return storage.Load(l.store, storage.KeyHabits, []models.Habit{})
}

// Add appends a pending habit created today.
func (l *HabitLedger) Add(name string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, reject("habit name is empty")
	}

	habits := l.All()
	h := models.NewHabit(name, l.days.TodayDateKey())
	habits = append(habits, *h)
	if err := l.store.Save(storage.KeyHabits, habits); err != nil {
		return nil, err
	}
	return h, nil
}

// Toggle flips the done flag of the habit at index.
func (l *HabitLedger) Toggle(index int) (*models.Habit, error) {
	habits := l.All()
	if index < 0 || index >= len(habits) {
		return nil, outOfRange(index, len(habits))
	}

	habits[index].Toggle()
	if err := l.store.Save(storage.KeyHabits, habits); err != nil {
		return nil, err
	}
	h := habits[index]
	return &h, nil
}

// Remove deletes the habit at index. Later habits shift down by one.
func (l *HabitLedger) Remove(index int) (*models.Habit, error) {
	habits := l.All()
	if index < 0 || index >= len(habits) {
		return nil, outOfRange(index, len(habits))
	}

	removed := habits[index]
	habits = append(habits[:index], habits[index+1:]...)
	if err := l.store.Save(storage.KeyHabits, habits); err != nil {
		return nil, err
	}
	return &removed, nil
}

// ClearAll empties the ledger.
func (l *HabitLedger) ClearAll() error {
	return l.store.Remove(storage.KeyHabits)
}

// CompletedToday counts habits created today and marked done.
func (l *HabitLedger) CompletedToday() int {
	return l.CompletedOn(l.days.TodayDateKey())
}

// CompletedOn counts habits created on day and marked done.
func (l *HabitLedger) CompletedOn(day string) int {
	n := 0
	for _, h := range l.All() {
		if h.Done && h.CreatedOn == day {
			n++
		}
	}
	return n
}

// List returns the habits matching filter, each with its ledger index.
func (l *HabitLedger) List(filter HabitFilter) []IndexedHabit {
	var out []IndexedHabit
	for i, h := range l.All() {
		switch filter {
		case FilterCompleted:
			if !h.Done {
				continue
			}
		case FilterPending:
			if h.Done {
				continue
			}
		}
		out = append(out, IndexedHabit{Index: i, Habit: h})
	}
	return out
}
