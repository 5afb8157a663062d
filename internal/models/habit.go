// ABOUTME: Habit model for the daily habit ledger.
// ABOUTME: A habit is identified by its position in the ledger, not by an ID.
package models

// Habit is a named daily habit with a completion flag.
type Habit struct {
	Name      string `json:"name" yaml:"name"`
	Done      bool   `json:"done" yaml:"done"`
	CreatedOn string `json:"createdOn" yaml:"created_on"`
}

// NewHabit creates a pending habit created on the given date key.
func NewHabit(name, createdOn string) *Habit {
	return &Habit{
		Name:      name,
		CreatedOn: createdOn,
	}
}

// Toggle flips the completion flag.
func (h *Habit) Toggle() *Habit {
	h.Done = !h.Done
	return h
}
