package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories over one handle. Inside Transaction every repository shares
// the same transaction.
type Store struct {
	db *gorm.DB

	Catalog       CatalogRepository
	Schedules     ScheduleRepository
	Sessions      SessionRepository
	Bookings      BookingRepository
	Payments      PaymentRepository
	Notifications NotificationRepository
	Audit         AuditRepository
	Users         UserRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Catalog:       NewGormCatalogRepository(db),
		Schedules:     NewGormScheduleRepository(db),
		Sessions:      NewGormSessionRepository(db),
		Bookings:      NewGormBookingRepository(db),
		Payments:      NewGormPaymentRepository(db),
		Notifications: NewGormNotificationRepository(db),
		Audit:         NewGormAuditRepository(db),
		Users:         NewGormUserRepository(db),
	}
}

// DB exposes the underlying handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn in a single database transaction. fn's error rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
