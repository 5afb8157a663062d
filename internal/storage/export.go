// ABOUTME: Export and import functionality for tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; JSON import.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the version stamped on every export.
const ExportVersion = "1.0"

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	DeviceID   string                  `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	Habits     []models.Habit          `json:"habits" yaml:"habits"`
	Workouts   []models.WorkoutEntry   `json:"workouts" yaml:"workouts"`
	Wellbeing  []models.WellbeingEntry `json:"wellbeing" yaml:"wellbeing"`
	Notes      []models.Note           `json:"notes" yaml:"notes"`
}

// ImportSummary counts the records written by an import. Skipped counts
// records dropped because they failed validation.
type ImportSummary struct {
	Habits    int
	Workouts  int
	Wellbeing int
	Notes     int
	Skipped   int
}

// GetAllData collects every collection for export.
func (s *RecordStore) GetAllData() *ExportData {
	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "daylog",
		Habits:     Load(s, KeyHabits, []models.Habit{}),
		Workouts:   Load(s, KeyWorkouts, []models.WorkoutEntry{}),
		Wellbeing:  Load(s, KeyWellbeing, []models.WellbeingEntry{}),
		Notes:      Load(s, KeyNotes, []models.Note{}),
	}
}

// ImportData replaces each collection present in data. Collections missing
// from the file (null or absent) are left untouched. Records are held to the
// same rules as entries added by hand: invalid ones are skipped, water and
// sleep are clamped, and unknown moods are dropped. The wellbeing log keeps at
// most retention entries; 0 keeps everything.
func (s *RecordStore) ImportData(data *ExportData, retention int) (*ImportSummary, error) {
	summary := &ImportSummary{}

	if data.Habits != nil {
		habits := cleanHabits(data.Habits)
		summary.Skipped += len(data.Habits) - len(habits)
		if err := s.Save(KeyHabits, habits); err != nil {
			return summary, fmt.Errorf("import habits: %w", err)
		}
		summary.Habits = len(habits)
	}
	if data.Workouts != nil {
		workouts := cleanWorkouts(data.Workouts)
		summary.Skipped += len(data.Workouts) - len(workouts)
		if err := s.Save(KeyWorkouts, workouts); err != nil {
			return summary, fmt.Errorf("import workouts: %w", err)
		}
		summary.Workouts = len(workouts)
	}
	if data.Wellbeing != nil {
		entries := cleanWellbeing(data.Wellbeing)
		if retention > 0 && len(entries) > retention {
			entries = entries[len(entries)-retention:]
		}
		summary.Skipped += len(data.Wellbeing) - len(entries)
		if err := s.Save(KeyWellbeing, entries); err != nil {
			return summary, fmt.Errorf("import wellbeing: %w", err)
		}
		summary.Wellbeing = len(entries)
	}
	if data.Notes != nil {
		notes := cleanNotes(data.Notes)
		summary.Skipped += len(data.Notes) - len(notes)
		if err := s.Save(KeyNotes, notes); err != nil {
			return summary, fmt.Errorf("import notes: %w", err)
		}
		summary.Notes = len(notes)
	}

	return summary, nil
}

// ImportJSON imports data from JSON bytes.
func (s *RecordStore) ImportJSON(data []byte, retention int) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(&exportData, retention)
}

func cleanHabits(in []models.Habit) []models.Habit {
	out := make([]models.Habit, 0, len(in))
	for _, h := range in {
		h.Name = strings.TrimSpace(h.Name)
		if h.Name == "" || !daykey.IsDateKey(h.CreatedOn) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func cleanWorkouts(in []models.WorkoutEntry) []models.WorkoutEntry {
	out := make([]models.WorkoutEntry, 0, len(in))
	for _, w := range in {
		w.Name = strings.TrimSpace(w.Name)
		if w.Name == "" || w.Sets < 1 || w.Reps < 1 || w.RestSeconds < 0 {
			continue
		}
		if !daykey.IsDateKey(w.LoggedOn) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func cleanWellbeing(in []models.WellbeingEntry) []models.WellbeingEntry {
	out := make([]models.WellbeingEntry, 0, len(in))
	for _, e := range in {
		if !daykey.IsDayKey(e.Day) {
			continue
		}
		e.Water = models.ClampWater(e.Water)
		if e.Sleep != nil {
			e.WithSleep(*e.Sleep)
		}
		if e.Mood != nil {
			e.WithMood(*e.Mood)
		}
		out = append(out, e)
	}
	return out
}

func cleanNotes(in []models.Note) []models.Note {
	out := make([]models.Note, 0, len(in))
	for _, n := range in {
		n.Text = strings.TrimSpace(n.Text)
		if n.Text == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// JSON renders the export as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML renders the export as YAML.
func (e *ExportData) YAML() ([]byte, error) {
	out := struct {
		Version    string                `yaml:"version"`
		ExportedAt string                `yaml:"exported_at"`
		Tool       string                `yaml:"tool"`
		DeviceID   string                `yaml:"device_id,omitempty"`
		Habits     []models.Habit        `yaml:"habits"`
		Workouts   []models.WorkoutEntry `yaml:"workouts"`
		Wellbeing  []yamlWellbeing       `yaml:"wellbeing"`
		Notes      []yamlNote            `yaml:"notes"`
	}{
		Version:    e.Version,
		ExportedAt: e.ExportedAt.Format(time.RFC3339),
		Tool:       e.Tool,
		DeviceID:   e.DeviceID,
		Habits:     e.Habits,
		Workouts:   e.Workouts,
		Wellbeing:  make([]yamlWellbeing, 0, len(e.Wellbeing)),
		Notes:      make([]yamlNote, 0, len(e.Notes)),
	}

	for _, w := range e.Wellbeing {
		yw := yamlWellbeing{
			Day:      w.Day,
			Water:    w.Water,
			Sleep:    w.Sleep,
			LoggedAt: w.LoggedAt.Format(time.RFC3339),
		}
		if w.Mood != nil {
			yw.Mood = w.Mood.Label()
		}
		out.Wellbeing = append(out.Wellbeing, yw)
	}
	for _, n := range e.Notes {
		out.Notes = append(out.Notes, yamlNote{
			Text:      n.Text,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	return yaml.Marshal(out)
}

type yamlWellbeing struct {
	Day      string   `yaml:"day"`
	Water    int      `yaml:"water"`
	Sleep    *float64 `yaml:"sleep,omitempty"`
	Mood     string   `yaml:"mood,omitempty"`
	LoggedAt string   `yaml:"logged_at"`
}

type yamlNote struct {
	Text      string `yaml:"text"`
	CreatedAt string `yaml:"created_at"`
}

// Markdown renders the export as Markdown tables. A non-empty since (YYYY-MM-DD)
// drops records dated before it. Weekday-keyed wellbeing entries are dated by
// when they were logged.
//
//nolint:gocognit,gocyclo // This function has clear, linear logic despite complexity metrics.
func (e *ExportData) Markdown(since string) string {
	keep := func(dateKey string) bool {
		return since == "" || dateKey >= since
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Daylog Export - %s\n\n", e.ExportedAt.Format(daykey.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("## Habits\n\n")
	sb.WriteString("| Created | Habit | Done |\n")
	sb.WriteString("|---------|-------|------|\n")
	for _, h := range e.Habits {
		if !keep(h.CreatedOn) {
			continue
		}
		done := " "
		if h.Done {
			done = "x"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", h.CreatedOn, mdCell(h.Name), done))
	}
	sb.WriteString("\n")

	sb.WriteString("## Workouts\n\n")
	sb.WriteString("| Date | Exercise | Sets x Reps | Rest |\n")
	sb.WriteString("|------|----------|-------------|------|\n")
	for _, w := range e.Workouts {
		if !keep(w.LoggedOn) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d x %d | %ds |\n",
			w.LoggedOn, mdCell(w.Name), w.Sets, w.Reps, w.RestSeconds))
	}
	sb.WriteString("\n")

	sb.WriteString("## Wellbeing\n\n")
	sb.WriteString("| Day | Water | Sleep | Mood | Logged |\n")
	sb.WriteString("|-----|-------|-------|------|--------|\n")
	for _, w := range e.Wellbeing {
		dated := w.Day
		if !daykey.IsDateKey(dated) {
			dated = daykey.DateKey(w.LoggedAt)
		}
		if !keep(dated) {
			continue
		}
		sleep := "-"
		if w.Sleep != nil {
			sleep = fmt.Sprintf("%.1f h", *w.Sleep)
		}
		mood := "-"
		if w.Mood != nil {
			mood = w.Mood.Label()
		}
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
			w.Day, w.Water, sleep, mood, w.LoggedAt.Format(models.NoteTimeFormat)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	for i := len(e.Notes) - 1; i >= 0; i-- {
		n := e.Notes[i]
		if !keep(daykey.DateKey(n.CreatedAt)) {
			continue
		}
		sb.WriteString(fmt.Sprintf("- **%s** %s\n", n.Stamp(), mdCell(n.Text)))
	}

	return sb.String()
}

var mdEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// mdCell escapes pipes and flattens newlines so free text stays inside one
// table cell or list item.
func mdCell(s string) string {
	return mdEscaper.Replace(s)
}
