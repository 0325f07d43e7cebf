package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date key. Lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

var (
	ErrInvalidMonth = errors.New("month must be in 0..11")
	ErrInvalidYear  = errors.New("year must be in 1..9999")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
)

// Month is an inclusive range of calendar dates [Start, End], both at UTC midnight.
type Month struct {
	Start time.Time
	End   time.Time
}

// NewMonth builds the range for a zero-indexed month: 0 is January, 11 is December.
func NewMonth(year, month int) (Month, error) {
	if year < 1 || year > 9999 {
		return Month{}, ErrInvalidYear
	}
	if month < 0 || month > 11 {
		return Month{}, ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Month{Start: start, End: end}, nil
}

// MonthOf returns the month containing d.
func MonthOf(d time.Time) Month {
	m, _ := NewMonth(d.Year(), int(d.Month())-1)
	return m
}

// Days returns every date of the month in order.
func (m Month) Days() []time.Time {
	days := make([]time.Time, 0, 31)
	for d := m.Start; !d.After(m.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether d falls inside the month.
func (m Month) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(m.Start) && !d.After(m.End)
}

// Validity is a schedule's own date range. A nil Until is open ended.
type Validity struct {
	From  time.Time
	Until *time.Time
}

// Contains reports whether d is on or after From and, when set, on or before Until.
func (v Validity) Contains(d time.Time) bool {
	d = DateOnly(d)
	if d.Before(DateOnly(v.From)) {
		return false
	}
	if v.Until != nil && d.After(DateOnly(*v.Until)) {
		return false
	}
	return true
}

// Overlaps reports whether the validity range shares at least one day with m.
func (v Validity) Overlaps(m Month) bool {
	if DateOnly(v.From).After(m.End) {
		return false
	}
	if v.Until != nil && DateOnly(*v.Until).Before(m.Start) {
		return false
	}
	return true
}

// MatchingDays returns the days of m that fall on wd and inside v.
func MatchingDays(m Month, wd time.Weekday, v Validity) []time.Time {
	var out []time.Time
	for _, d := range m.Days() {
		if d.Weekday() != wd || !v.Contains(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DateOnly drops the clock part and pins the date to UTC.
func DateOnly(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the canonical YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// SlotKey is the composite "scheduleId:YYYY-MM-DD" key of one schedule slot.
func SlotKey(scheduleID fmt.Stringer, date time.Time) string {
	return scheduleID.String() + ":" + FormatDate(date)
}
