package calendar

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("14:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if m != 14*60+30 {
		t.Fatalf("expected 870, got %d", m)
	}

	for _, s := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-00"} {
		if _, err := ParseClock(s); !errors.Is(err, ErrInvalidClock) {
			t.Fatalf("ParseClock(%q): expected ErrInvalidClock, got %v", s, err)
		}
	}
}

func TestValidateSlot(t *testing.T) {
	if err := ValidateSlot("14:00", "15:30"); err != nil {
		t.Fatalf("expected valid slot, got %v", err)
	}
	if err := ValidateSlot("15:00", "15:00"); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
	if err := ValidateSlot("15:00", "1500"); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if got := SlotMinutes("14:00", "15:30"); got != 90 {
		t.Fatalf("SlotMinutes = %d, want 90", got)
	}
}

func TestSlotsOverlap(t *testing.T) {
	if !SlotsOverlap("10:00", "11:00", "10:30", "11:30") {
		t.Fatalf("expected overlap")
	}
	// touching ends do not overlap
	if SlotsOverlap("10:00", "11:00", "11:00", "12:00") {
		t.Fatalf("expected no overlap for adjacent slots")
	}
}
