//go:build unit

package timespan_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/timespan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) timespan.DateRange {
	t.Helper()
	s, err := timespan.ParseDate(start)
	require.NoError(t, err)
	e, err := timespan.ParseDate(end)
	require.NoError(t, err)
	r, err := timespan.NewDateRange(s, e)
	require.NoError(t, err)
	return r
}

func TestParseDate(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		d, err := timespan.ParseDate("2026-07-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"07/01/2026", "2026-7-1", "2026-07-01T00:00:00Z", "tomorrow", ""} {
			_, err := timespan.ParseDate(s)
			assert.ErrorIs(t, err, timespan.ErrInvalidDateFormat, s)
		}
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("truncates to calendar dates", func(t *testing.T) {
		start := time.Date(2026, 7, 1, 15, 30, 0, 0, time.UTC)
		end := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)
		r, err := timespan.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), r.End())
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("rejects inverted and empty ranges", func(t *testing.T) {
		day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

		_, err := timespan.NewDateRange(day, day)
		assert.ErrorIs(t, err, timespan.ErrInvertedRange)

		_, err = timespan.NewDateRange(day.AddDate(0, 0, 1), day)
		assert.ErrorIs(t, err, timespan.ErrInvertedRange)
	})
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2026-07-01", "2026-07-05")

	tests := []struct {
		name  string
		other timespan.DateRange
		want  bool
	}{
		{"identical range", mustRange(t, "2026-07-01", "2026-07-05"), true},
		{"fully inside", mustRange(t, "2026-07-02", "2026-07-04"), true},
		{"fully containing", mustRange(t, "2026-06-30", "2026-07-06"), true},
		{"overlapping tail", mustRange(t, "2026-07-04", "2026-07-08"), true},
		{"overlapping head", mustRange(t, "2026-06-28", "2026-07-02"), true},
		{"starts on checkout day", mustRange(t, "2026-07-05", "2026-07-08"), false},
		{"ends on check-in day", mustRange(t, "2026-06-28", "2026-07-01"), false},
		{"disjoint after", mustRange(t, "2026-07-10", "2026-07-12"), false},
		{"disjoint before", mustRange(t, "2026-06-01", "2026-06-05"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestContainsDay(t *testing.T) {
	r := mustRange(t, "2026-07-01", "2026-07-05")

	assert.True(t, r.ContainsDay(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.ContainsDay(time.Date(2026, 7, 4, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.ContainsDay(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)), "end day is excluded")
	assert.False(t, r.ContainsDay(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)))
}

func TestDays(t *testing.T) {
	r := mustRange(t, "2026-07-01", "2026-07-04")

	var days []string
	r.Days(func(day time.Time) bool {
		days = append(days, timespan.FormatDate(day))
		return true
	})
	assert.Equal(t, []string{"2026-07-01", "2026-07-02", "2026-07-03"}, days)

	// early stop
	count := 0
	r.Days(func(time.Time) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
