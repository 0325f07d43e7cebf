package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditBookingCreated   AuditAction = "booking_created"
	AuditBookingCancelled AuditAction = "booking_cancelled"
	AuditPaymentConfirmed AuditAction = "payment_confirmed"
	AuditSlotCancelled    AuditAction = "slot_cancelled"
	AuditSlotOverridden   AuditAction = "slot_overridden"
)

// audit_logs
type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Action AuditAction `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	BookingID *uuid.UUID `gorm:"type:uuid;index"`
	SessionID *uuid.UUID `gorm:"type:uuid;index"`

	Details string `gorm:"type:text"`
}

func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
