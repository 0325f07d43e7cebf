package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// users: the account known to the identity provider. ID matches the provider's subject.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string `gorm:"type:varchar(32)"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Role         Role   `gorm:"type:varchar(16);not null;default:'STUDENT';index"`

	IsActive        bool       `gorm:"not null;default:true"`
	IsVerified      bool       `gorm:"not null;default:false"`
	EmailVerifiedAt *time.Time `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	StudentProfile *StudentProfile `gorm:"foreignKey:UserID"`
	TeacherProfile *TeacherProfile `gorm:"foreignKey:UserID"`
	AdminProfile   *AdminProfile   `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// student_profiles
type StudentProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	FirstName   string          `gorm:"type:varchar(128);not null"`
	LastName    string          `gorm:"type:varchar(128);not null"`
	DateOfBirth *datatypes.Date `gorm:"type:date"`
	Gender      *Gender         `gorm:"type:varchar(16)"`
	Address     string          `gorm:"type:text"`
	City        string          `gorm:"type:varchar(128)"`
	Country     string          `gorm:"type:varchar(128)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (s *StudentProfile) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// admin_profiles
type AdminProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	FirstName string `gorm:"type:varchar(128);not null"`
	LastName  string `gorm:"type:varchar(128);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (a *AdminProfile) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
