package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const virtualPrefix = "virtual"

var ErrInvalidOccurrenceID = errors.New("invalid occurrence id")

// VirtualOccurrenceID encodes a schedule slot as "virtual:<scheduleId>:<YYYY-MM-DD>". The
// prefix keeps it disjoint from session UUIDs.
func VirtualOccurrenceID(scheduleID uuid.UUID, date time.Time) string {
	return virtualPrefix + ":" + scheduleID.String() + ":" + FormatDate(date)
}

// IsVirtualID reports whether id carries the virtual prefix.
func IsVirtualID(id string) bool {
	return strings.HasPrefix(id, virtualPrefix+":")
}

// OccurrenceRef is a parsed occurrence id. For real occurrences only SessionID is set; for
// virtual ones ScheduleID and Date are set.
type OccurrenceRef struct {
	Virtual    bool
	SessionID  uuid.UUID
	ScheduleID uuid.UUID
	Date       time.Time
}

// ParseOccurrenceID decodes either a session UUID or a virtual token.
func ParseOccurrenceID(id string) (OccurrenceRef, error) {
	if !IsVirtualID(id) {
		sid, err := uuid.Parse(id)
		if err != nil {
			return OccurrenceRef{}, fmt.Errorf("%w: %q", ErrInvalidOccurrenceID, id)
		}
		return OccurrenceRef{SessionID: sid}, nil
	}

	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return OccurrenceRef{}, fmt.Errorf("%w: %q", ErrInvalidOccurrenceID, id)
	}
	scheduleID, err := uuid.Parse(parts[1])
	if err != nil {
		return OccurrenceRef{}, fmt.Errorf("%w: %q", ErrInvalidOccurrenceID, id)
	}
	date, err := ParseDate(parts[2])
	if err != nil {
		return OccurrenceRef{}, fmt.Errorf("%w: %q", ErrInvalidOccurrenceID, id)
	}
	return OccurrenceRef{Virtual: true, ScheduleID: scheduleID, Date: date}, nil
}

// Occurrence is the unit the reservation calendar renders and books.
type Occurrence struct {
	ID          string `json:"id"`
	ScheduleID  string `json:"schedule_id"`
	SessionDate string `json:"session_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	IsVirtual   bool   `json:"is_virtual"`
	Capacity    int    `json:"capacity"`
	SpotsLeft   int    `json:"spots_left"`

	SubClass SubClassInfo `json:"sub_class"`
	Teacher  TeacherInfo  `json:"teacher"`
	Room     *RoomInfo    `json:"room,omitempty"`

	OnlineLink *string `json:"online_link,omitempty"`
}

type SubClassInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Level           *string `json:"level,omitempty"`
	AgeGroup        *string `json:"age_group,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Capacity        int     `json:"capacity"`
	CoverURL        *string `json:"cover_url,omitempty"`
	ClassName       string  `json:"class_name"`
	ClassIconURL    *string `json:"class_icon_url,omitempty"`
}

type TeacherInfo struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Bio         *string  `json:"bio,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Specialties []string `json:"specialties"`
}

type RoomInfo struct {
	Name             string `json:"name"`
	LocationName     string `json:"location_name"`
	LocationIsOnline bool   `json:"location_is_online"`
}

// SpotsLeft clamps capacity - taken at zero.
func SpotsLeft(capacity, taken int) int {
	if left := capacity - taken; left > 0 {
		return left
	}
	return 0
}

// Less orders occurrences by date, then start time, then id.
func Less(a, b Occurrence) bool {
	if a.SessionDate != b.SessionDate {
		return a.SessionDate < b.SessionDate
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.ID < b.ID
}
