// ABOUTME: Resolves "now" to the day keys that bucket daily records.
// ABOUTME: Produces YYYY-MM-DD date keys and Monday..Sunday weekday names.
package daykey

import (
	"strings"
	"time"
)

// DateLayout is the locale-independent calendar date format.
const DateLayout = "2006-01-02"

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Resolver maps the current instant to day keys in a fixed location.
type Resolver struct {
	Now      func() time.Time
	Location *time.Location
}

// New returns a Resolver using the wall clock and local time zone.
func New() *Resolver {
	return &Resolver{Now: time.Now, Location: time.Local}
}

// Fixed returns a Resolver that always reports t. Used by tests and backfills.
func Fixed(t time.Time) *Resolver {
	return &Resolver{
		Now:      func() time.Time { return t },
		Location: t.Location(),
	}
}

// Current returns the resolver's current instant in its location.
func (r *Resolver) Current() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// TodayDateKey returns today's YYYY-MM-DD key.
func (r *Resolver) TodayDateKey() string {
	return DateKey(r.Current())
}

// TodayWeekdayName returns today's weekday name.
func (r *Resolver) TodayWeekdayName() string {
	return WeekdayName(r.Current())
}

// Normalize converts user input into a canonical day key.
// Accepts "today", weekday names in any case, and YYYY-MM-DD dates.
func (r *Resolver) Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.EqualFold(s, "today") {
		return r.TodayDateKey(), true
	}
	if IsDateKey(s) {
		return s, true
	}
	for _, wd := range weekdays {
		if strings.EqualFold(s, wd) {
			return wd, true
		}
	}
	return "", false
}

// DateKey formats t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayName returns the English weekday name of t.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// IsDateKey reports whether s is a valid YYYY-MM-DD date.
func IsDateKey(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsWeekdayName reports whether s is exactly one of Monday..Sunday.
func IsWeekdayName(s string) bool {
	for _, wd := range weekdays {
		if s == wd {
			return true
		}
	}
	return false
}

// IsDayKey reports whether s is either a date key or a weekday name.
func IsDayKey(s string) bool {
	return IsDateKey(s) || IsWeekdayName(s)
}

// Weekdays returns the weekday names, Monday first.
func Weekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays)
	return out
}
