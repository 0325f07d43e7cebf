package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeEmail NotificationType = "EMAIL"
	NotificationTypeSMS   NotificationType = "SMS"
	NotificationTypePush  NotificationType = "PUSH"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// notifications: outbox rows. Nothing in this service delivers them.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	BookingID *uuid.UUID `gorm:"type:uuid;index"`

	Type    NotificationType   `gorm:"type:varchar(8);not null;default:'EMAIL'"`
	Status  NotificationStatus `gorm:"type:varchar(8);not null;default:'PENDING';index"`
	Subject string             `gorm:"type:varchar(255);not null"`
	Body    string             `gorm:"type:text;not null"`

	ScheduledFor *time.Time `gorm:"type:timestamp"`
	SentAt       *time.Time `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
