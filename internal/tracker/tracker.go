// ABOUTME: Tracker bundles the components built once at startup.
// ABOUTME: Presentation layers receive it explicitly instead of reaching for globals.
package tracker

import (
	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/storage"
)

const (
	DefaultWindow    = 7
	DefaultRetention = 30
)

// Options tunes the components. Retention 0 keeps every wellbeing entry.
type Options struct {
	Window    int
	Retention int
}

// DefaultOptions returns a 7-entry window and 30-entry retention.
func DefaultOptions() Options {
	return Options{Window: DefaultWindow, Retention: DefaultRetention}
}

// Tracker holds one instance of each component, all sharing a store.
type Tracker struct {
	Habits    *HabitLedger
	Workouts  *WorkoutLog
	Wellbeing *WellbeingJournal
	Notes     *NoteJournal
	Summary   *SummaryAggregator
}

// New wires the components over store. A nil resolver uses the wall clock.
func New(store *storage.RecordStore, days *daykey.Resolver, opts Options) *Tracker {
	if days == nil {
		days = daykey.New()
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}

	t := &Tracker{
		Habits:    NewHabitLedger(store, days),
		Workouts:  NewWorkoutLog(store, days),
		Wellbeing: NewWellbeingJournal(store, days, opts.Retention),
		Notes:     NewNoteJournal(store, days),
	}
	t.Summary = NewSummaryAggregator(t.Habits, t.Workouts, t.Wellbeing, days, opts.Window)
	return t
}
