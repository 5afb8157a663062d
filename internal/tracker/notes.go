// ABOUTME: NoteJournal stores free-text notes in append order.
// ABOUTME: Notes are shown newest first and can only be cleared in bulk.
package tracker

import (
	"strings"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/storage"
)

// NoteJournal owns the notes collection.
type NoteJournal struct {
	store *storage.RecordStore
	days  *daykey.Resolver
}

// NewNoteJournal creates a journal over store.
func NewNoteJournal(store *storage.RecordStore, days *daykey.Resolver) *NoteJournal {
	return &NoteJournal{store: store, days: days}
}

// Add stores a note stamped with the current time.
func (j *NoteJournal) Add(text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, reject("note is empty")
	}

	notes := storage.Load(j.store, storage.KeyNotes, []models.Note{})
	n := models.NewNote(text).WithCreatedAt(j.days.Current())
	notes = append(notes, *n)
	if err := j.store.Save(storage.KeyNotes, notes); err != nil {
		return nil, err
	}
	return n, nil
}

// ListNewestFirst returns the notes, most recent first.
func (j *NoteJournal) ListNewestFirst() []models.Note {
	notes := storage.Load(j.store, storage.KeyNotes, []models.Note{})
	out := make([]models.Note, 0, len(notes))
	for i := len(notes) - 1; i >= 0; i-- {
		out = append(out, notes[i])
	}
	return out
}

// ClearAll deletes every note. Callers confirm with the user first.
func (j *NoteJournal) ClearAll() error {
	return j.store.Remove(storage.KeyNotes)
}
