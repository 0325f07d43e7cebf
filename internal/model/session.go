package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCancelled SessionStatus = "CANCELLED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

// class_sessions: one concrete occurrence. A row for (schedule, date) overrides the weekly
// projection: ACTIVE/COMPLETED rows replace it, CANCELLED rows suppress it.
type ClassSession struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ScheduleID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_class_sessions_schedule_date,priority:1"`
	SessionDate datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_class_sessions_schedule_date,priority:2;index"`

	StartTime string `gorm:"type:varchar(5);not null"`
	EndTime   string `gorm:"type:varchar(5);not null"`

	Status SessionStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';index"`

	// nil means the schedule's max_capacity applies
	MaxCapacity  *int    `gorm:"type:integer"`
	CancelReason *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Schedule *ClassSchedule `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (s *ClassSession) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// Capacity is the seat limit for the session.
func (s *ClassSession) Capacity() int {
	if s.MaxCapacity != nil {
		return *s.MaxCapacity
	}
	if s.Schedule != nil {
		return s.Schedule.MaxCapacity
	}
	return 0
}
