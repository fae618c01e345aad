package timespan

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvertedRange     = errors.New("end date must be after start date")
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date into a UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Truncate normalizes an instant to its UTC calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is a half-open calendar date interval [start, end): the end date
// itself is excluded. Every overlap decision in the system goes through
// Overlaps so that booking, ledger and availability math cannot drift apart.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = Truncate(start)
	end = Truncate(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvertedRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Nights is the number of billable nights, i.e. the number of days in [start, end).
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one day.
// A range starting exactly where another ends does not overlap, so a
// checkout day is immediately reusable as a check-in day.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// ContainsDay reports whether day falls inside [start, end).
func (r DateRange) ContainsDay(day time.Time) bool {
	day = Truncate(day)
	return !day.Before(r.start) && day.Before(r.end)
}

// Days walks every day of [start, end) in order, stopping early if fn
// returns false.
func (r DateRange) Days(fn func(day time.Time) bool) {
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}

func (r DateRange) String() string {
	return FormatDate(r.start) + ".." + FormatDate(r.end)
}
