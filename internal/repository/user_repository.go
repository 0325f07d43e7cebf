package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindByEmail matches case-insensitively and preloads the student profile.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentProfile, error)
	CreateStudent(ctx context.Context, p *model.StudentProfile) error
	// MarkVerified records a confirmed email and reactivates the account.
	MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormUserRepository) Create(ctx context.Context, u *model.User) error {
	u.Email = NormalizeEmail(u.Email)
	return wrap(r.db.WithContext(ctx).Create(u).Error, "create user")
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, wrap(err, "find user")
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	n := NormalizeEmail(email)
	if n == "" {
		return nil, wrap(gorm.ErrRecordNotFound, "find user by email")
	}

	var u model.User
	err := r.db.WithContext(ctx).
		Preload("StudentProfile").
		Where("email = ?", n).
		First(&u).Error
	if err != nil {
		return nil, wrap(err, "find user by email")
	}
	return &u, nil
}

func (r *GormUserRepository) GetStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentProfile, error) {
	var p model.StudentProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", studentID).Error; err != nil {
		return nil, wrap(err, "get student")
	}
	return &p, nil
}

func (r *GormUserRepository) CreateStudent(ctx context.Context, p *model.StudentProfile) error {
	return wrap(r.db.WithContext(ctx).Omit("User").Create(p).Error, "create student")
}

func (r *GormUserRepository) MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified":       true,
			"email_verified_at": at,
			"is_active":         true,
		})
	if res.Error != nil {
		return wrap(res.Error, "mark user verified")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "mark user verified")
	}
	return nil
}
