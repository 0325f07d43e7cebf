package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type NotificationRepository interface {
	// Enqueue stores a PENDING notification.
	Enqueue(ctx context.Context, n *model.Notification) error
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Enqueue(ctx context.Context, n *model.Notification) error {
	n.Status = model.NotificationStatusPending
	if n.Type == "" {
		n.Type = model.NotificationTypeEmail
	}
	return wrap(r.db.WithContext(ctx).Omit("User").Create(n).Error, "enqueue notification")
}

func (r *GormNotificationRepository) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.NotificationStatusPending).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, wrap(err, "list notifications")
	}
	return out, nil
}
