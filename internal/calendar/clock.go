package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("time of day must be HH:MM")

// ErrInvalidTimeRange is returned when a slot does not end after it starts.
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// ParseClock converts a zero-padded "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hh, mm, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// ValidateSlot checks both ends are valid clocks and that end is after start.
func ValidateSlot(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}
	if e <= s {
		return ErrInvalidTimeRange
	}
	return nil
}

// SlotMinutes returns the slot length in minutes. Invalid slots yield 0.
func SlotMinutes(start, end string) int {
	s, err := ParseClock(start)
	if err != nil {
		return 0
	}
	e, err := ParseClock(end)
	if err != nil || e <= s {
		return 0
	}
	return e - s
}

// SlotsOverlap reports whether two half-open slots [aStart, aEnd) and [bStart, bEnd) on the
// same day intersect. Invalid clocks never overlap.
func SlotsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, err1 := ParseClock(aStart)
	ae, err2 := ParseClock(aEnd)
	bs, err3 := ParseClock(bStart)
	be, err4 := ParseClock(bEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return as < be && bs < ae
}
