package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var dayOfWeekToWeekday = map[DayOfWeek]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// Weekday maps d to time.Weekday. ok is false for unknown values.
func (d DayOfWeek) Weekday() (time.Weekday, bool) {
	wd, ok := dayOfWeekToWeekday[d]
	return wd, ok
}

// DayOfWeekFrom is the inverse of Weekday.
func DayOfWeekFrom(wd time.Weekday) DayOfWeek {
	for d, w := range dayOfWeekToWeekday {
		if w == wd {
			return d
		}
	}
	return ""
}

type ClassStatus string

const (
	ClassStatusActive    ClassStatus = "ACTIVE"
	ClassStatusPaused    ClassStatus = "PAUSED"
	ClassStatusCancelled ClassStatus = "CANCELLED"
	ClassStatusCompleted ClassStatus = "COMPLETED"
)

// class_schedules: a weekly recurring rule. Dates are pure calendar dates; StartTime and
// EndTime are "HH:MM" in academy local time.
type ClassSchedule struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	SubClassID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeacherID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RoomID     *uuid.UUID `gorm:"type:uuid;index"`

	DayOfWeek DayOfWeek `gorm:"type:varchar(16);not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`

	StartDate datatypes.Date  `gorm:"type:date;not null"`
	EndDate   *datatypes.Date `gorm:"type:date"`

	MaxCapacity     int  `gorm:"not null"`
	CurrentEnrolled int  `gorm:"not null;default:0"`
	IsRecurring     bool `gorm:"not null;default:true"`

	OnlineLink *string     `gorm:"type:text"`
	Status     ClassStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	SubClass *SubClass       `gorm:"foreignKey:SubClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Teacher  *TeacherProfile `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Room     *Room           `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (s *ClassSchedule) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
