package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// bookings
type Booking struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	StudentID uuid.UUID     `gorm:"type:uuid;not null;index"`
	SessionID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status    BookingStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	BookedAt  time.Time     `gorm:"not null"`
	CanCancel bool          `gorm:"not null;default:true"`

	CancelledAt  *time.Time `gorm:"type:timestamp"`
	CancelReason *string    `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Student *StudentProfile `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Session *ClassSession   `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Payment *Payment        `gorm:"foreignKey:BookingID"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// payments: Amount and Currency are copied from the sub class when the booking is made.
type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	InvoiceID *uuid.UUID `gorm:"type:uuid;index"`

	Amount   float64       `gorm:"type:numeric(10,3);not null"`
	Currency string        `gorm:"type:varchar(3);not null;default:'OMR'"`
	Status   PaymentStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	Method   *string       `gorm:"type:varchar(32)"`
	PaidAt   *time.Time    `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Invoice *Invoice `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (p *Payment) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// invoices
type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNo string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`

	Amount      float64       `gorm:"type:numeric(10,3);not null"`
	Tax         float64       `gorm:"type:numeric(10,3);not null;default:0"`
	TotalAmount float64       `gorm:"type:numeric(10,3);not null"`
	Currency    string        `gorm:"type:varchar(3);not null;default:'OMR'"`
	Status      InvoiceStatus `gorm:"type:varchar(16);not null;default:'DRAFT'"`

	IssuedAt *time.Time      `gorm:"type:timestamp"`
	DueDate  *datatypes.Date `gorm:"type:date"`
	PaidAt   *time.Time      `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Student *StudentProfile `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (i *Invoice) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
