// ABOUTME: WellbeingEntry model and the four-level Mood scale.
// ABOUTME: Defines the water/sleep ranges every entry is clamped to.
package models

import (
	"math"
	"time"
)

const (
	// MinWater and MaxWater bound the glasses-of-water count.
	MinWater = 0
	MaxWater = 50

	// MinSleepHours and MaxSleepHours bound a night's sleep.
	MinSleepHours = 0.0
	MaxSleepHours = 24.0
)

// Mood is an ordered four-level mood rating.
type Mood int

const (
	MoodVeryLow Mood = 1
	MoodLow     Mood = 2
	MoodGood    Mood = 3
	MoodGreat   Mood = 4
)

// MoodLabels maps each mood level to its display label.
var MoodLabels = map[Mood]string{
	MoodVeryLow: "very low",
	MoodLow:     "low",
	MoodGood:    "good",
	MoodGreat:   "great",
}

// AllMoods returns the mood levels in ascending order.
var AllMoods = []Mood{MoodVeryLow, MoodLow, MoodGood, MoodGreat}

// Valid reports whether m is one of the four defined levels.
func (m Mood) Valid() bool {
	return m >= MoodVeryLow && m <= MoodGreat
}

// Label returns the display label, or "" for an undefined level.
func (m Mood) Label() string {
	return MoodLabels[m]
}

// WellbeingEntry records water, sleep and mood against a day key.
// Day holds either a weekday name or a YYYY-MM-DD date key.
type WellbeingEntry struct {
	Day      string    `json:"day" yaml:"day"`
	Water    int       `json:"water" yaml:"water"`
	Sleep    *float64  `json:"sleep" yaml:"sleep,omitempty"`
	Mood     *Mood     `json:"mood" yaml:"mood,omitempty"`
	LoggedAt time.Time `json:"loggedAt" yaml:"logged_at"`
}

// NewWellbeingEntry creates an entry with the water count clamped to range.
func NewWellbeingEntry(day string, water int) *WellbeingEntry {
	return &WellbeingEntry{
		Day:      day,
		Water:    ClampWater(water),
		LoggedAt: time.Now(),
	}
}

// WithSleep sets hours slept, clamped to [0,24]. NaN leaves sleep absent.
func (e *WellbeingEntry) WithSleep(hours float64) *WellbeingEntry {
	if math.IsNaN(hours) {
		e.Sleep = nil
		return e
	}
	h := ClampSleep(hours)
	e.Sleep = &h
	return e
}

// WithMood sets the mood. Undefined levels leave the mood absent.
func (e *WellbeingEntry) WithMood(m Mood) *WellbeingEntry {
	if !m.Valid() {
		e.Mood = nil
		return e
	}
	e.Mood = &m
	return e
}

// WithLoggedAt sets a custom logged_at timestamp.
func (e *WellbeingEntry) WithLoggedAt(t time.Time) *WellbeingEntry {
	e.LoggedAt = t
	return e
}

// ClampWater limits a water count to [MinWater, MaxWater].
func ClampWater(n int) int {
	if n < MinWater {
		return MinWater
	}
	if n > MaxWater {
		return MaxWater
	}
	return n
}

// ClampSleep limits hours slept to [MinSleepHours, MaxSleepHours].
func ClampSleep(h float64) float64 {
	if h < MinSleepHours {
		return MinSleepHours
	}
	if h > MaxSleepHours {
		return MaxSleepHours
	}
	return h
}
