// ABOUTME: SummaryAggregator derives the read-only daily summary.
// ABOUTME: Recomputed from the stored collections on every call; nothing is cached.
package tracker

import (
	"github.com/harperreed/daylog/internal/daykey"
)

// SummaryView is the derived state shown after every mutation.
type SummaryView struct {
	DayKey        string
	Window        int
	Wellbeing     Averages
	WorkoutsToday int
	HabitsDone    int
	HabitsTotal   int
}

// NoData reports whether the wellbeing window is empty.
func (v SummaryView) NoData() bool {
	return v.Wellbeing.Count == 0
}

// SummaryAggregator reads the habit, workout and wellbeing components.
type SummaryAggregator struct {
	habits    *HabitLedger
	workouts  *WorkoutLog
	wellbeing *WellbeingJournal
	days      *daykey.Resolver
	window    int
}

// NewSummaryAggregator creates an aggregator averaging the last window entries.
func NewSummaryAggregator(h *HabitLedger, w *WorkoutLog, wb *WellbeingJournal, days *daykey.Resolver, window int) *SummaryAggregator {
	return &SummaryAggregator{habits: h, workouts: w, wellbeing: wb, days: days, window: window}
}

// Summarize evaluates the summary for today.
func (s *SummaryAggregator) Summarize() SummaryView {
	return s.summarize(s.days.TodayDateKey())
}

// SummarizeFor evaluates habit completion and workout count for day, which
// must be a YYYY-MM-DD date or "today". Weekday names are rejected because
// habits and workouts are dated, not weekday-keyed.
func (s *SummaryAggregator) SummarizeFor(day string) (SummaryView, error) {
	key, ok := s.days.Normalize(day)
	if !ok || !daykey.IsDateKey(key) {
		return SummaryView{}, reject("%q is not a YYYY-MM-DD date", day)
	}
	return s.summarize(key), nil
}

func (s *SummaryAggregator) summarize(day string) SummaryView {
	return SummaryView{
		DayKey:        day,
		Window:        s.window,
		Wellbeing:     s.wellbeing.Averages(s.window),
		WorkoutsToday: s.workouts.CountOn(day),
		HabitsDone:    s.habits.CompletedOn(day),
		HabitsTotal:   len(s.habits.All()),
	}
}
