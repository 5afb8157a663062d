// ABOUTME: Note model for the free-text journal.
package models

import (
	"time"
)

// NoteTimeFormat is the layout used when a note's timestamp is displayed.
const NoteTimeFormat = "2006-01-02 15:04"

// Note is a timestamped free-text entry.
type Note struct {
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// NewNote creates a note stamped with the current time.
func NewNote(text string) *Note {
	return &Note{
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// WithCreatedAt sets a custom creation timestamp.
func (n *Note) WithCreatedAt(t time.Time) *Note {
	n.CreatedAt = t
	return n
}

// Stamp returns the creation time formatted for display.
func (n *Note) Stamp() string {
	return n.CreatedAt.Format(NoteTimeFormat)
}
