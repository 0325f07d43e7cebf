package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	// GetByID loads a booking with its payment.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// UpdateStatus moves a booking to status. cancelledAt and reason are only written when set.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus, cancelledAt *time.Time, reason *string) error
	// CountActive counts non-cancelled bookings of one session.
	CountActive(ctx context.Context, sessionID uuid.UUID) (int64, error)
	// CountActiveBySessions counts non-cancelled bookings per session in one query.
	CountActiveBySessions(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// ListActiveBySession returns non-cancelled bookings with their payments and students.
	ListActiveBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Booking, error)
	// ListByStudent pages a student's bookings, newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID, limit, offset int) ([]model.Booking, int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return wrap(r.db.WithContext(ctx).Omit("Payment", "Session", "Student").Create(booking).Error, "create booking")
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("Payment").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err, "get booking")
	}
	return &b, nil
}

func (r *GormBookingRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status model.BookingStatus,
	cancelledAt *time.Time,
	reason *string,
) error {
	update := map[string]any{
		"status": status,
	}
	if cancelledAt != nil {
		update["cancelled_at"] = *cancelledAt
	}
	if reason != nil {
		update["cancel_reason"] = *reason
	}
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(update).
		Error
	return wrap(err, "update booking status")
}

func (r *GormBookingRepository) CountActive(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("session_id = ? AND status <> ?", sessionID, model.BookingStatusCancelled).
		Count(&n).Error
	if err != nil {
		return 0, wrap(err, "count bookings")
	}
	return n, nil
}

func (r *GormBookingRepository) CountActiveBySessions(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		SessionID uuid.UUID
		Total     int
	}
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("session_id, COUNT(*) AS total").
		Where("session_id IN ? AND status <> ?", sessionIDs, model.BookingStatusCancelled).
		Group("session_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err, "count bookings by session")
	}
	for _, row := range rows {
		counts[row.SessionID] = row.Total
	}
	return counts, nil
}

func (r *GormBookingRepository) ListActiveBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Preload("Student").
		Where("session_id = ? AND status <> ?", sessionID, model.BookingStatusCancelled).
		Order("booked_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, wrap(err, "list session bookings")
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByStudent(
	ctx context.Context,
	studentID uuid.UUID,
	limit, offset int,
) ([]model.Booking, int64, error) {
	var (
		bookings []model.Booking
		total    int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("student_id = ?", studentID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "count student bookings")
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	err := q.
		Preload("Payment").
		Preload("Session.Schedule.SubClass").
		Order("booked_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, wrap(err, "list student bookings")
	}

	return bookings, total, nil
}
