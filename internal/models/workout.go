// ABOUTME: WorkoutEntry model for logged exercise sets.
// ABOUTME: Entries are tagged with the date key they were logged on.
package models

// WorkoutEntry is one logged exercise with its set/rep scheme.
type WorkoutEntry struct {
	Name        string `json:"name" yaml:"name"`
	Sets        int    `json:"sets" yaml:"sets"`
	Reps        int    `json:"reps" yaml:"reps"`
	RestSeconds int    `json:"restSeconds" yaml:"rest_seconds"`
	LoggedOn    string `json:"loggedOn" yaml:"logged_on"`
}

// NewWorkoutEntry creates an entry with no rest period.
func NewWorkoutEntry(name string, sets, reps int, loggedOn string) *WorkoutEntry {
	return &WorkoutEntry{
		Name:     name,
		Sets:     sets,
		Reps:     reps,
		LoggedOn: loggedOn,
	}
}

// WithRest sets the rest period between sets.
func (w *WorkoutEntry) WithRest(seconds int) *WorkoutEntry {
	w.RestSeconds = seconds
	return w
}

// TotalReps returns sets * reps.
func (w *WorkoutEntry) TotalReps() int {
	return w.Sets * w.Reps
}
