package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type ScheduleRepository interface {
	// GetByID loads a schedule with its sub class.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSchedule, error)
	// ListActiveOverlapping returns ACTIVE schedules whose validity overlaps [from, to], with
	// display relations preloaded.
	ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]model.ClassSchedule, error)
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSchedule, error) {
	var s model.ClassSchedule
	err := r.db.WithContext(ctx).
		Preload("SubClass").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err, "get schedule")
	}
	return &s, nil
}

func (r *GormScheduleRepository) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]model.ClassSchedule, error) {
	var schedules []model.ClassSchedule
	err := r.db.WithContext(ctx).
		Preload("SubClass.Class").
		Preload("Teacher").
		Preload("Room.Location").
		Where("status = ?", model.ClassStatusActive).
		Where("start_date <= ?", to).
		Where("end_date IS NULL OR end_date >= ?", from).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, wrap(err, "list active schedules")
	}
	return schedules, nil
}
