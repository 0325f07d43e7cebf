package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// classes: top level disciplines such as Dance, Music and Painting.
type Class struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	IconURL     *string `gorm:"type:text"`

	IsActive  bool `gorm:"not null;default:true;index"`
	SortOrder int  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	SubClasses []SubClass `gorm:"foreignKey:ClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (c *Class) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// sub_classes: the bookable offering (Ballet for Kids, Piano, ...). Price is the live list
// price; payments copy it at booking time.
type SubClass struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ClassID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name            string  `gorm:"type:varchar(255);not null"`
	Description     *string `gorm:"type:text"`
	Capacity        int     `gorm:"not null"`
	DurationMinutes int     `gorm:"not null"`
	Price           float64 `gorm:"type:numeric(10,3);not null"`
	Currency        string  `gorm:"type:varchar(3);not null;default:'OMR'"`
	Level           *string `gorm:"type:varchar(64)"`
	AgeGroup        *string `gorm:"type:varchar(64)"`
	CoverURL        *string `gorm:"type:text"`

	IsActive bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Class   *Class          `gorm:"foreignKey:ClassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Teacher *TeacherProfile `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (s *SubClass) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// locations
type Location struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string `gorm:"type:varchar(255);not null"`
	Address  string `gorm:"type:text"`
	City     string `gorm:"type:varchar(128)"`
	Country  string `gorm:"type:varchar(128)"`
	IsOnline bool   `gorm:"not null;default:false"`
	IsActive bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Rooms []Room `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (l *Location) BeforeCreate(*gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

// rooms
type Room struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Capacity   int       `gorm:"not null"`
	HasOnline  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Location *Location `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (r *Room) BeforeCreate(*gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
