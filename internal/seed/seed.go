// Package seed loads the demo academy used by local development and the web front end: three
// teachers across Dance, Music and Painting, two students, weekly schedules for spring 2025
// and a couple of confirmed bookings.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

type Options struct {
	// HashCost is the bcrypt cost for demo passwords. Zero means bcrypt.DefaultCost.
	HashCost int
	// Now stamps invoices, payments and notifications. Nil means time.Now.
	Now func() time.Time
}

// Result carries the ids callers usually want after seeding.
type Result struct {
	AdminUserID uuid.UUID
	StudentIDs  []uuid.UUID

	BalletScheduleID uuid.UUID
	PianoScheduleID  uuid.UUID
	OilScheduleID    uuid.UUID
}

const (
	adminPassword   = "Admin@1234"
	teacherPassword = "Teacher@1234"
	studentPassword = "Student@1234"
)

var (
	scheduleStart = mustDate("2025-03-01")
	scheduleEnd   = mustDate("2025-12-31")
)

// Run wipes every academy table and loads the demo data in one transaction.
func Run(ctx context.Context, store *repository.Store, opts Options) (*Result, error) {
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &seeder{opts: opts, hashes: map[string]string{}}
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		if err := reset(tx.DB().WithContext(ctx)); err != nil {
			return err
		}
		log.Printf("[seed] database cleaned")
		return s.load(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	return &s.res, nil
}

// reset deletes children before parents.
func reset(db *gorm.DB) error {
	all := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	tables := []any{
		&model.AuditLog{},
		&model.Notification{},
		&model.Payment{},
		&model.Booking{},
		&model.Invoice{},
		&model.ClassSession{},
		&model.ClassSchedule{},
		&model.SubClass{},
		&model.Class{},
		&model.Room{},
		&model.Location{},
		&model.TeacherAvailability{},
		&model.AdminProfile{},
		&model.TeacherProfile{},
		&model.StudentProfile{},
		&model.User{},
	}
	for _, t := range tables {
		if err := all.Delete(t).Error; err != nil {
			return fmt.Errorf("reset %T: %w", t, err)
		}
	}
	return nil
}

type seeder struct {
	opts   Options
	hashes map[string]string
	res    Result

	sara, ahmed, lina model.TeacherProfile
	mona, khalid      model.User
	rooms             map[string]model.Room
	subClasses        map[string]model.SubClass
}

func (s *seeder) load(ctx context.Context, tx *repository.Store) error {
	steps := []struct {
		name string
		fn   func(context.Context, *repository.Store) error
	}{
		{"users", s.users},
		{"locations", s.locations},
		{"classes", s.classes},
		{"schedules", s.schedules},
		{"bookings", s.bookings},
	}
	for _, step := range steps {
		if err := step.fn(ctx, tx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Printf("[seed] %s created", step.name)
	}
	return nil
}

func (s *seeder) hash(password string) (string, error) {
	if h, ok := s.hashes[password]; ok {
		return h, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.HashCost)
	if err != nil {
		return "", err
	}
	s.hashes[password] = string(h)
	return string(h), nil
}

func (s *seeder) users(ctx context.Context, tx *repository.Store) error {
	pwd, err := s.hash(adminPassword)
	if err != nil {
		return err
	}
	admin := model.User{
		Email:        "admin@royalacademy.com",
		Phone:        "+96891000001",
		PasswordHash: pwd,
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsVerified:   true,
		AdminProfile: &model.AdminProfile{FirstName: "Royal", LastName: "Admin"},
	}
	if err := tx.Users.Create(ctx, &admin); err != nil {
		return err
	}
	s.res.AdminUserID = admin.ID

	teachers := []struct {
		profile      *model.TeacherProfile
		email, phone string
		first, last  string
		bio          string
		specialties  []string
		availability []model.TeacherAvailability
	}{
		{
			profile: &s.sara, email: "sara.dance@royalacademy.com", phone: "+96891000002",
			first: "Sara", last: "Al Balushi",
			bio:         "Professional ballet and contemporary dance instructor with 10 years of experience.",
			specialties: []string{"Ballet", "Contemporary", "Jazz"},
			availability: []model.TeacherAvailability{
				window(model.Monday, "09:00", "17:00"),
				window(model.Wednesday, "09:00", "17:00"),
				window(model.Friday, "09:00", "14:00"),
			},
		},
		{
			profile: &s.ahmed, email: "ahmed.music@royalacademy.com", phone: "+96891000003",
			first: "Ahmed", last: "Al Rashdi",
			bio:         "Classically trained pianist with a passion for teaching kids and adults.",
			specialties: []string{"Piano", "Music Theory", "Composition"},
			availability: []model.TeacherAvailability{
				window(model.Tuesday, "10:00", "18:00"),
				window(model.Thursday, "10:00", "18:00"),
				window(model.Saturday, "10:00", "15:00"),
			},
		},
		{
			profile: &s.lina, email: "lina.art@royalacademy.com", phone: "+96891000004",
			first: "Lina", last: "Hassan",
			bio:         "Fine arts graduate specializing in oil painting and watercolor for all age groups.",
			specialties: []string{"Oil Painting", "Watercolor", "Sketching"},
			availability: []model.TeacherAvailability{
				window(model.Monday, "11:00", "17:00"),
				window(model.Wednesday, "11:00", "17:00"),
				window(model.Saturday, "09:00", "14:00"),
			},
		},
	}

	pwd, err = s.hash(teacherPassword)
	if err != nil {
		return err
	}
	for _, t := range teachers {
		u := model.User{
			Email:        t.email,
			Phone:        t.phone,
			PasswordHash: pwd,
			Role:         model.RoleTeacher,
			IsActive:     true,
			IsVerified:   true,
		}
		if err := tx.Users.Create(ctx, &u); err != nil {
			return err
		}
		*t.profile = model.TeacherProfile{
			UserID:       u.ID,
			FirstName:    t.first,
			LastName:     t.last,
			Bio:          &t.bio,
			Specialties:  datatypes.JSONSlice[string](t.specialties),
			IsAvailable:  true,
			Availability: t.availability,
		}
		if err := tx.Catalog.CreateTeacher(ctx, t.profile); err != nil {
			return err
		}
	}

	pwd, err = s.hash(studentPassword)
	if err != nil {
		return err
	}
	students := []struct {
		user        *model.User
		email       string
		phone       string
		first, last string
		born        string
		gender      model.Gender
	}{
		{&s.mona, "student1@gmail.com", "+96891000005", "Mona", "Al Siyabi", "2000-05-15", model.GenderFemale},
		{&s.khalid, "student2@gmail.com", "+96891000006", "Khalid", "Al Farsi", "1998-11-20", model.GenderMale},
	}
	for _, st := range students {
		born := datatypes.Date(mustDate(st.born))
		gender := st.gender
		*st.user = model.User{
			Email:        st.email,
			Phone:        st.phone,
			PasswordHash: pwd,
			Role:         model.RoleStudent,
			IsActive:     true,
			IsVerified:   true,
			StudentProfile: &model.StudentProfile{
				FirstName:   st.first,
				LastName:    st.last,
				DateOfBirth: &born,
				Gender:      &gender,
				Address:     "Muscat, Oman",
				City:        "Muscat",
				Country:     "Oman",
			},
		}
		if err := tx.Users.Create(ctx, st.user); err != nil {
			return err
		}
		s.res.StudentIDs = append(s.res.StudentIDs, st.user.StudentProfile.ID)
	}
	return nil
}

func (s *seeder) locations(ctx context.Context, tx *repository.Store) error {
	branch := model.Location{
		Name:     "Royal Academy Main Branch",
		Address:  "Al Khuwair Street",
		City:     "Muscat",
		Country:  "Oman",
		IsActive: true,
		Rooms: []model.Room{
			{Name: "Dance Studio A", Capacity: 15},
			{Name: "Dance Studio B", Capacity: 10},
			{Name: "Music Room 1", Capacity: 5, HasOnline: true},
			{Name: "Music Room 2", Capacity: 5, HasOnline: true},
			{Name: "Art Studio", Capacity: 12},
		},
	}
	online := model.Location{
		Name:     "Online",
		Address:  "Virtual",
		IsOnline: true,
		IsActive: true,
		Rooms:    []model.Room{{Name: "Online Room", Capacity: 20, HasOnline: true}},
	}

	s.rooms = map[string]model.Room{}
	for _, l := range []*model.Location{&branch, &online} {
		if err := tx.Catalog.CreateLocation(ctx, l); err != nil {
			return err
		}
		for _, r := range l.Rooms {
			s.rooms[r.Name] = r
		}
	}
	return nil
}

func (s *seeder) classes(ctx context.Context, tx *repository.Store) error {
	offering := func(teacher *model.TeacherProfile, name, desc string, capacity, minutes int, price float64, level, age string) model.SubClass {
		return model.SubClass{
			TeacherID:       teacher.ID,
			Name:            name,
			Description:     &desc,
			Capacity:        capacity,
			DurationMinutes: minutes,
			Price:           price,
			Currency:        "OMR",
			Level:           &level,
			AgeGroup:        &age,
			IsActive:        true,
		}
	}

	classes := []model.Class{
		{
			Name:        "Dance",
			Description: "Explore the art of movement through ballet, contemporary, and jazz.",
			SortOrder:   1,
			IsActive:    true,
			SubClasses: []model.SubClass{
				offering(&s.sara, "Ballet", "Classical ballet for all levels.", 12, 60, 15, "All Levels", "Adults"),
				offering(&s.sara, "Ballet for Kids", "Fun and structured ballet classes for children.", 10, 45, 12, "Beginner", "Kids"),
				offering(&s.sara, "Contemporary Dance", "Modern movement and expressive dance techniques.", 12, 60, 15, "Intermediate", "Adults"),
			},
		},
		{
			Name:        "Music",
			Description: "Learn music through piano, theory, and composition.",
			SortOrder:   2,
			IsActive:    true,
			SubClasses: []model.SubClass{
				offering(&s.ahmed, "Piano", "Classical and modern piano for beginners and intermediate students.", 4, 60, 20, "All Levels", "Adults"),
				offering(&s.ahmed, "Piano for Kids", "Playful and structured piano lessons designed for children.", 4, 45, 18, "Beginner", "Kids"),
			},
		},
		{
			Name:        "Painting",
			Description: "Express yourself through oil painting, watercolor, and sketching.",
			SortOrder:   3,
			IsActive:    true,
			SubClasses: []model.SubClass{
				offering(&s.lina, "Oil Painting", "Learn oil painting techniques from scratch.", 10, 90, 18, "All Levels", "Adults"),
				offering(&s.lina, "Watercolor", "Explore the delicate and expressive world of watercolor painting.", 10, 90, 18, "Beginner", "All Ages"),
			},
		},
	}

	s.subClasses = map[string]model.SubClass{}
	for i := range classes {
		if err := tx.Catalog.CreateClass(ctx, &classes[i]); err != nil {
			return err
		}
		for _, sc := range classes[i].SubClasses {
			s.subClasses[sc.Name] = sc
		}
	}
	return nil
}

func (s *seeder) schedules(ctx context.Context, tx *repository.Store) error {
	end := datatypes.Date(scheduleEnd)
	weekly := func(sub string, teacher *model.TeacherProfile, room string, day model.DayOfWeek, start, finish string, capacity int) model.ClassSchedule {
		roomID := s.rooms[room].ID
		return model.ClassSchedule{
			SubClassID:  s.subClasses[sub].ID,
			TeacherID:   teacher.ID,
			RoomID:      &roomID,
			DayOfWeek:   day,
			StartTime:   start,
			EndTime:     finish,
			StartDate:   datatypes.Date(scheduleStart),
			EndDate:     &end,
			MaxCapacity: capacity,
			IsRecurring: true,
			Status:      model.ClassStatusActive,
		}
	}

	ballet := weekly("Ballet", &s.sara, "Dance Studio A", model.Monday, "10:00", "11:00", 12)
	piano := weekly("Piano", &s.ahmed, "Music Room 1", model.Tuesday, "11:00", "12:00", 4)
	oil := weekly("Oil Painting", &s.lina, "Art Studio", model.Wednesday, "14:00", "15:30", 10)
	for _, sch := range []*model.ClassSchedule{&ballet, &piano, &oil} {
		if err := tx.Catalog.CreateSchedule(ctx, sch); err != nil {
			return err
		}
	}
	s.res.BalletScheduleID = ballet.ID
	s.res.PianoScheduleID = piano.ID
	s.res.OilScheduleID = oil.ID
	return nil
}

func (s *seeder) bookings(ctx context.Context, tx *repository.Store) error {
	session := func(scheduleID uuid.UUID, date, start, end string) (*model.ClassSession, error) {
		cs := &model.ClassSession{
			ScheduleID:  scheduleID,
			SessionDate: datatypes.Date(mustDate(date)),
			StartTime:   start,
			EndTime:     end,
			Status:      model.SessionStatusActive,
		}
		if _, err := tx.Sessions.InsertIfAbsent(ctx, cs); err != nil {
			return nil, err
		}
		return cs, nil
	}

	ballet1, err := session(s.res.BalletScheduleID, "2025-03-03", "10:00", "11:00")
	if err != nil {
		return err
	}
	if _, err := session(s.res.BalletScheduleID, "2025-03-10", "10:00", "11:00"); err != nil {
		return err
	}
	piano1, err := session(s.res.PianoScheduleID, "2025-03-04", "11:00", "12:00")
	if err != nil {
		return err
	}

	now := s.opts.Now().UTC()
	today := datatypes.Date(now)
	dueIn7 := datatypes.Date(now.AddDate(0, 0, 7))
	card := "CREDIT_CARD"

	paid := []struct {
		student  model.User
		session  *model.ClassSession
		invoice  model.Invoice
		payment  model.Payment
		reminder string
		subject  string
		body     string
	}{
		{
			student: s.mona,
			session: ballet1,
			invoice: model.Invoice{
				InvoiceNo: "INV-2025-0001", Amount: 15, TotalAmount: 15, Currency: "OMR",
				Status: model.InvoiceStatusPaid, IssuedAt: &now, DueDate: &today, PaidAt: &now,
			},
			payment:  model.Payment{Amount: 15, Currency: "OMR", Status: model.PaymentStatusPaid, Method: &card, PaidAt: &now},
			subject:  "Your Ballet class is confirmed!",
			body:     "Hi Mona, your Ballet class on March 3rd at 10:00 AM is confirmed.",
			reminder: "Reminder: Your Ballet class is tomorrow at 10:00 AM. Royal Academy.",
		},
		{
			student: s.khalid,
			session: piano1,
			invoice: model.Invoice{
				InvoiceNo: "INV-2025-0002", Amount: 20, TotalAmount: 20, Currency: "OMR",
				Status: model.InvoiceStatusIssued, IssuedAt: &now, DueDate: &dueIn7,
			},
			payment: model.Payment{Amount: 20, Currency: "OMR", Status: model.PaymentStatusPending},
			subject: "Your Piano class is confirmed!",
			body:    "Hi Khalid, your Piano class on March 4th at 11:00 AM is confirmed.",
		},
	}

	for _, p := range paid {
		b := model.Booking{
			StudentID: p.student.StudentProfile.ID,
			SessionID: p.session.ID,
			Status:    model.BookingStatusConfirmed,
			BookedAt:  now,
			CanCancel: true,
		}
		if err := tx.Bookings.Create(ctx, &b); err != nil {
			return err
		}

		inv := p.invoice
		inv.StudentID = b.StudentID
		if err := tx.Payments.CreateInvoice(ctx, &inv); err != nil {
			return err
		}

		pay := p.payment
		pay.BookingID = b.ID
		pay.InvoiceID = &inv.ID
		if err := tx.Payments.Create(ctx, &pay); err != nil {
			return err
		}

		sent := model.Notification{
			UserID:       p.student.ID,
			BookingID:    &b.ID,
			Type:         model.NotificationTypeEmail,
			Status:       model.NotificationStatusSent,
			Subject:      p.subject,
			Body:         p.body,
			ScheduledFor: &now,
			SentAt:       &now,
		}
		if err := tx.DB().WithContext(ctx).Omit("User").Create(&sent).Error; err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		if p.reminder != "" {
			at := time.Time(p.session.SessionDate).Add(-14 * time.Hour)
			if err := tx.Notifications.Enqueue(ctx, &model.Notification{
				UserID:       p.student.ID,
				BookingID:    &b.ID,
				Type:         model.NotificationTypeSMS,
				Subject:      "Class reminder",
				Body:         p.reminder,
				ScheduledFor: &at,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func window(day model.DayOfWeek, start, end string) model.TeacherAvailability {
	return model.TeacherAvailability{DayOfWeek: day, StartTime: start, EndTime: end}
}

func mustDate(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}
