// Package testutil builds small in-memory academies for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/db"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// OpenDB returns a migrated in-memory sqlite handle closed at test cleanup.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.NewGormDB(&config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// Date parses YYYY-MM-DD as a UTC date.
func Date(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

// Academy is one teacher, one ballet sub class priced 25.000 OMR, a Monday schedule running
// 2025-03-01..2025-12-31 with capacity 12, and one student.
type Academy struct {
	DB    *gorm.DB
	Store *repository.Store

	Teacher     model.TeacherProfile
	Class       model.Class
	Ballet      model.SubClass
	Room        model.Room
	Monday      model.ClassSchedule
	StudentUser model.User
	Student     model.StudentProfile
}

func NewAcademy(t testing.TB) *Academy {
	t.Helper()
	gdb := OpenDB(t)
	a := &Academy{DB: gdb, Store: repository.NewStore(gdb)}
	ctx := context.Background()

	teacherUser := model.User{Email: "sara@royalacademy.om", Role: model.RoleTeacher, IsActive: true, IsVerified: true}
	if err := a.Store.Users.Create(ctx, &teacherUser); err != nil {
		t.Fatalf("seed teacher user: %v", err)
	}
	a.Teacher = model.TeacherProfile{
		UserID:      teacherUser.ID,
		FirstName:   "Sara",
		LastName:    "Al-Balushi",
		Specialties: datatypes.JSONSlice[string]{"Ballet", "Contemporary"},
		IsAvailable: true,
	}
	if err := a.Store.Catalog.CreateTeacher(ctx, &a.Teacher); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}

	loc := model.Location{
		Name:     "Royal Academy Muscat",
		City:     "Muscat",
		Country:  "Oman",
		IsActive: true,
		Rooms:    []model.Room{{Name: "Studio A", Capacity: 15}},
	}
	if err := a.Store.Catalog.CreateLocation(ctx, &loc); err != nil {
		t.Fatalf("seed location: %v", err)
	}
	a.Room = loc.Rooms[0]

	a.Class = model.Class{Name: "Dance", IsActive: true, SortOrder: 1}
	if err := a.Store.Catalog.CreateClass(ctx, &a.Class); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	a.Ballet = model.SubClass{
		ClassID:         a.Class.ID,
		TeacherID:       a.Teacher.ID,
		Name:            "Ballet for Kids",
		Capacity:        12,
		DurationMinutes: 60,
		Price:           25,
		Currency:        "OMR",
		IsActive:        true,
	}
	if err := a.DB.Create(&a.Ballet).Error; err != nil {
		t.Fatalf("seed sub class: %v", err)
	}

	a.Monday = a.AddSchedule(t, func(s *model.ClassSchedule) {})

	a.StudentUser, a.Student = a.AddStudent(t, "fatima@example.com", "Fatima")
	return a
}

// AddSchedule inserts a ballet schedule. Defaults: MONDAY 10:00-11:00, 2025-03-01..2025-12-31,
// capacity 12, ACTIVE. mutate adjusts it before insert.
func (a *Academy) AddSchedule(t testing.TB, mutate func(s *model.ClassSchedule)) model.ClassSchedule {
	t.Helper()
	end := datatypes.Date(Date(t, "2025-12-31"))
	roomID := a.Room.ID
	s := model.ClassSchedule{
		SubClassID:  a.Ballet.ID,
		TeacherID:   a.Teacher.ID,
		RoomID:      &roomID,
		DayOfWeek:   model.Monday,
		StartTime:   "10:00",
		EndTime:     "11:00",
		StartDate:   datatypes.Date(Date(t, "2025-03-01")),
		EndDate:     &end,
		MaxCapacity: 12,
		IsRecurring: true,
		Status:      model.ClassStatusActive,
	}
	mutate(&s)
	if err := a.Store.Catalog.CreateSchedule(context.Background(), &s); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return s
}

// AddSession inserts a concrete session for schedule on date using the schedule's times.
func (a *Academy) AddSession(t testing.TB, schedule model.ClassSchedule, date string, status model.SessionStatus) model.ClassSession {
	t.Helper()
	s := model.ClassSession{
		ScheduleID:  schedule.ID,
		SessionDate: datatypes.Date(Date(t, date)),
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		Status:      status,
	}
	if err := a.DB.Omit("Schedule").Create(&s).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s
}

// AddStudent inserts an active user with a student profile.
func (a *Academy) AddStudent(t testing.TB, email, firstName string) (model.User, model.StudentProfile) {
	t.Helper()
	ctx := context.Background()
	u := model.User{Email: email, Role: model.RoleStudent, IsActive: true, IsVerified: true}
	if err := a.Store.Users.Create(ctx, &u); err != nil {
		t.Fatalf("seed student user: %v", err)
	}
	p := model.StudentProfile{UserID: u.ID, FirstName: firstName, LastName: "Student"}
	if err := a.Store.Users.CreateStudent(ctx, &p); err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return u, p
}

// AddBooking inserts a booking without a payment.
func (a *Academy) AddBooking(t testing.TB, studentID, sessionID uuid.UUID, status model.BookingStatus) model.Booking {
	t.Helper()
	b := model.Booking{
		StudentID: studentID,
		SessionID: sessionID,
		Status:    status,
		BookedAt:  time.Now().UTC(),
		CanCancel: true,
	}
	if err := a.Store.Bookings.Create(context.Background(), &b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

// Count returns the row count of the table behind m.
func (a *Academy) Count(t testing.TB, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := a.DB.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
