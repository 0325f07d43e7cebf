package model

import "gorm.io/gorm"

// AutoMigrate creates or updates every academy table. Order follows foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&StudentProfile{},
		&TeacherProfile{},
		&AdminProfile{},
		&TeacherAvailability{},
		&Location{},
		&Room{},
		&Class{},
		&SubClass{},
		&ClassSchedule{},
		&ClassSession{},
		&Invoice{},
		&Booking{},
		&Payment{},
		&Notification{},
		&AuditLog{},
	)
}
