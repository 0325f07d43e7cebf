package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type SessionRepository interface {
	// ListInRange returns every session dated within [from, to], any status, with the owning
	// schedule and its display relations preloaded.
	ListInRange(ctx context.Context, from, to time.Time) ([]model.ClassSession, error)
	// GetByID loads a session with its schedule and sub class.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSession, error)
	// FindBySlot looks a session up by its (schedule, date) key.
	FindBySlot(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*model.ClassSession, error)
	// InsertIfAbsent inserts s unless a row for the same (schedule, date) exists. It reports
	// whether the row was written.
	InsertIfAbsent(ctx context.Context, s *model.ClassSession) (bool, error)
	// LockByID reloads the session row FOR UPDATE.
	LockByID(ctx context.Context, id uuid.UUID) (*model.ClassSession, error)
	// Update saves the mutable columns of s.
	Update(ctx context.Context, s *model.ClassSession) error
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) ListInRange(ctx context.Context, from, to time.Time) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Schedule.SubClass.Class").
		Preload("Schedule.Teacher").
		Preload("Schedule.Room.Location").
		Where("session_date >= ? AND session_date <= ?", from, to).
		Order("session_date ASC").
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, wrap(err, "list sessions")
	}
	return sessions, nil
}

func (r *GormSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSession, error) {
	var s model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Schedule.SubClass").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err, "get session")
	}
	return &s, nil
}

func (r *GormSessionRepository) FindBySlot(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*model.ClassSession, error) {
	var s model.ClassSession
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND session_date = ?", scheduleID, date).
		First(&s).Error
	if err != nil {
		return nil, wrap(err, "find session by slot")
	}
	return &s, nil
}

func (r *GormSessionRepository) InsertIfAbsent(ctx context.Context, s *model.ClassSession) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "schedule_id"}, {Name: "session_date"}},
			DoNothing: true,
		}).
		Create(s)
	if res.Error != nil {
		return false, wrap(res.Error, "insert session")
	}
	return res.RowsAffected == 1, nil
}

func (r *GormSessionRepository) LockByID(ctx context.Context, id uuid.UUID) (*model.ClassSession, error) {
	var s model.ClassSession
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err, "lock session")
	}
	return &s, nil
}

func (r *GormSessionRepository) Update(ctx context.Context, s *model.ClassSession) error {
	err := r.db.WithContext(ctx).
		Model(&model.ClassSession{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"start_time":    s.StartTime,
			"end_time":      s.EndTime,
			"status":        s.Status,
			"max_capacity":  s.MaxCapacity,
			"cancel_reason": s.CancelReason,
		}).Error
	return wrap(err, "update session")
}
