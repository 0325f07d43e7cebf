package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

// CatalogRepository manages the static academy catalogue: classes, teachers, rooms and the
// weekly schedules built from them.
type CatalogRepository interface {
	CreateClass(ctx context.Context, c *model.Class) error
	CreateTeacher(ctx context.Context, t *model.TeacherProfile) error
	CreateLocation(ctx context.Context, l *model.Location) error
	CreateSchedule(ctx context.Context, s *model.ClassSchedule) error
	GetSubClass(ctx context.Context, id uuid.UUID) (*model.SubClass, error)
	// ListSubClasses pages sub classes with class and teacher preloaded.
	ListSubClasses(ctx context.Context, onlyActive bool, limit, offset int) ([]model.SubClass, int64, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// CreateClass also inserts c.SubClasses.
func (r *GormCatalogRepository) CreateClass(ctx context.Context, c *model.Class) error {
	return wrap(r.db.WithContext(ctx).Create(c).Error, "create class")
}

// CreateTeacher also inserts t.Availability.
func (r *GormCatalogRepository) CreateTeacher(ctx context.Context, t *model.TeacherProfile) error {
	return wrap(r.db.WithContext(ctx).Omit("User").Create(t).Error, "create teacher")
}

// CreateLocation also inserts l.Rooms.
func (r *GormCatalogRepository) CreateLocation(ctx context.Context, l *model.Location) error {
	return wrap(r.db.WithContext(ctx).Create(l).Error, "create location")
}

func (r *GormCatalogRepository) CreateSchedule(ctx context.Context, s *model.ClassSchedule) error {
	return wrap(r.db.WithContext(ctx).Omit("SubClass", "Teacher", "Room").Create(s).Error, "create schedule")
}

func (r *GormCatalogRepository) GetSubClass(ctx context.Context, id uuid.UUID) (*model.SubClass, error) {
	var s model.SubClass
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "get sub class")
	}
	return &s, nil
}

func (r *GormCatalogRepository) ListSubClasses(ctx context.Context, onlyActive bool, limit, offset int) ([]model.SubClass, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.SubClass{})
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "count sub classes")
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var out []model.SubClass
	err := q.
		Preload("Class").
		Preload("Teacher").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, 0, wrap(err, "list sub classes")
	}
	return out, total, nil
}
