package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeacherProfile: an instructor. Linked to the user base through UserID.
type TeacherProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	FirstName string  `gorm:"type:varchar(128);not null"`
	LastName  string  `gorm:"type:varchar(128);not null"`
	Bio       *string `gorm:"type:text"`
	PhotoURL  *string `gorm:"type:text"`

	// Ballet, Piano, Watercolor, ...
	Specialties datatypes.JSONSlice[string]

	IsAvailable bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Availability []TeacherAvailability `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (t *TeacherProfile) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// FullName returns "First Last".
func (t *TeacherProfile) FullName() string {
	if t == nil {
		return ""
	}
	return t.FirstName + " " + t.LastName
}

// teacher_availabilities: weekly windows a teacher can be scheduled in.
type TeacherAvailability struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	TeacherID uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek DayOfWeek `gorm:"type:varchar(16);not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (a *TeacherAvailability) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
