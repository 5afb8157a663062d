// ABOUTME: WellbeingJournal is the append-only log of water, sleep and mood entries.
// ABOUTME: Lookups scan from the end so the most recent entry for a day key wins.
package tracker

import (
	"fmt"
	"math"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/storage"
)

// NoData is printed for a statistic with no samples.
const NoData = "no data"

// Stat is a mean over a window of Samples entries.
type Stat struct {
	Mean    float64
	Samples int
}

// Valid reports whether the stat has at least one sample.
func (s Stat) Valid() bool {
	return s.Samples > 0
}

func (s Stat) String() string {
	if !s.Valid() {
		return NoData
	}
	return fmt.Sprintf("%.1f", s.Mean)
}

// MoodStat is the mean mood rounded to the nearest defined level.
type MoodStat struct {
	Level   models.Mood
	Mean    float64
	Samples int
}

// Valid reports whether the stat has at least one sample.
func (m MoodStat) Valid() bool {
	return m.Samples > 0
}

func (m MoodStat) String() string {
	if !m.Valid() {
		return NoData
	}
	return m.Level.Label()
}

// Averages summarizes a trailing window of the log.
type Averages struct {
	Water Stat
	Sleep Stat
	Mood  MoodStat
	Count int
}

// WellbeingJournal owns the wellbeing log.
type WellbeingJournal struct {
	store     *storage.RecordStore
	days      *daykey.Resolver
	retention int
}

// NewWellbeingJournal creates a journal that keeps at most retention entries.
// A retention of 0 keeps everything.
func NewWellbeingJournal(store *storage.RecordStore, days *daykey.Resolver, retention int) *WellbeingJournal {
	if retention < 0 {
		retention = 0
	}
	return &WellbeingJournal{store: store, days: days, retention: retention}
}

// Entries returns the log in storage (append) order.
func (j *WellbeingJournal) Entries() []models.WellbeingEntry {
	return storage.Load(j.store, storage.KeyWellbeing, []models.WellbeingEntry{})
}

// LogEntry appends an entry for day. Water is clamped to [0,50] and sleep to
// [0,24]; a nil sleep or a mood outside 1..4 is stored as absent.
func (j *WellbeingJournal) LogEntry(day string, water int, sleep *float64, mood *int) (*models.WellbeingEntry, error) {
	if day == "" {
		return nil, reject("select a day or date before saving")
	}
	key, ok := j.days.Normalize(day)
	if !ok {
		return nil, reject("%q is not a weekday name or YYYY-MM-DD date", day)
	}

	e := models.NewWellbeingEntry(key, water).WithLoggedAt(j.days.Current())
	if sleep != nil {
		e.WithSleep(*sleep)
	}
	if mood != nil {
		e.WithMood(models.Mood(*mood))
	}

	entries := append(j.Entries(), *e)
	if j.retention > 0 && len(entries) > j.retention {
		entries = entries[len(entries)-j.retention:]
	}
	if err := j.store.Save(storage.KeyWellbeing, entries); err != nil {
		return nil, err
	}
	return e, nil
}

// LatestFor returns the most recently appended entry for day.
func (j *WellbeingJournal) LatestFor(day string) (*models.WellbeingEntry, bool) {
	key, ok := j.days.Normalize(day)
	if !ok {
		return nil, false
	}
	entries := j.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Day == key {
			e := entries[i]
			return &e, true
		}
	}
	return nil, false
}

// ClearAll empties the log.
func (j *WellbeingJournal) ClearAll() error {
	return j.store.Remove(storage.KeyWellbeing)
}

// Averages computes means over the last n entries. Every field averages over
// the whole window; an entry without sleep or mood counts as zero for it, and
// the mood mean is rounded and clamped to a defined level. An empty window
// yields no-data stats.
func (j *WellbeingJournal) Averages(n int) Averages {
	entries := j.Entries()
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	var (
		avg                     Averages
		water, sleep, moodTotal float64
	)
	for _, e := range entries {
		water += float64(e.Water)
		if e.Sleep != nil {
			sleep += *e.Sleep
		}
		if e.Mood != nil && e.Mood.Valid() {
			moodTotal += float64(*e.Mood)
		}
	}

	count := len(entries)
	avg.Count = count
	if count == 0 {
		return avg
	}

	avg.Water = Stat{Mean: water / float64(count), Samples: count}
	avg.Sleep = Stat{Mean: sleep / float64(count), Samples: count}
	avg.Mood.Samples = count
	avg.Mood.Mean = moodTotal / float64(count)
	avg.Mood.Level = roundMood(avg.Mood.Mean)
	return avg
}

func roundMood(mean float64) models.Mood {
	level := models.Mood(math.Round(mean))
	if level < models.MoodVeryLow {
		return models.MoodVeryLow
	}
	if level > models.MoodGreat {
		return models.MoodGreat
	}
	return level
}
