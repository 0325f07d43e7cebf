package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type AuditRepository interface {
	Record(ctx context.Context, entry *model.AuditLog) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]model.AuditLog, error)
}

type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

func (r *GormAuditRepository) Record(ctx context.Context, entry *model.AuditLog) error {
	return wrap(r.db.WithContext(ctx).Create(entry).Error, "record audit")
}

func (r *GormAuditRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]model.AuditLog, error) {
	var out []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, wrap(err, "list audit")
	}
	return out, nil
}
