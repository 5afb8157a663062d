// ABOUTME: Tests for day key resolution.
// ABOUTME: Uses fixed clocks so results do not depend on the wall clock.
package daykey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayDateKey(t *testing.T) {
	r := Fixed(time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-10", r.TodayDateKey())
	assert.Equal(t, "Monday", r.TodayWeekdayName())
}

func TestTodayDateKeyStableWithinDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	morning := Fixed(time.Date(2025, time.March, 10, 0, 1, 0, 0, loc))
	night := Fixed(time.Date(2025, time.March, 10, 23, 58, 0, 0, loc))

	assert.Equal(t, morning.TodayDateKey(), night.TodayDateKey())
}

func TestResolverUsesLocation(t *testing.T) {
	instant := time.Date(2025, time.March, 11, 2, 0, 0, 0, time.UTC)
	r := &Resolver{
		Now:      func() time.Time { return instant },
		Location: time.FixedZone("UTC-5", -5*3600),
	}

	assert.Equal(t, "2025-03-10", r.TodayDateKey())
	assert.Equal(t, "Monday", r.TodayWeekdayName())
}

func TestNormalize(t *testing.T) {
	r := Fixed(time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"today", "2025-03-12", true},
		{"TODAY", "2025-03-12", true},
		{"tuesday", "Tuesday", true},
		{" Sunday ", "Sunday", true},
		{"2025-01-31", "2025-01-31", true},
		{"2025-02-30", "", false},
		{"someday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.Normalize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDayKey(t *testing.T) {
	assert.True(t, IsDayKey("Monday"))
	assert.True(t, IsDayKey("2025-03-10"))
	assert.False(t, IsDayKey("monday"))
	assert.False(t, IsDayKey("2025-3-10"))
}

func TestWeekdaysIsACopy(t *testing.T) {
	wd := Weekdays()
	wd[0] = "Funday"
	assert.Equal(t, "Monday", Weekdays()[0])
	assert.Len(t, wd, 7)
}
