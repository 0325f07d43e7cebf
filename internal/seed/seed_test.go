package seed_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
	"github.com/GulfDevInnovations/royal-academy/internal/seed"
	"github.com/GulfDevInnovations/royal-academy/internal/service"
	"github.com/GulfDevInnovations/royal-academy/internal/testutil"
)

func runSeed(t *testing.T, store *repository.Store) *seed.Result {
	t.Helper()
	now := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	res, err := seed.Run(context.Background(), store, seed.Options{
		HashCost: bcrypt.MinCost,
		Now:      func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("seed.Run: %v", err)
	}
	return res
}

func count(t *testing.T, store *repository.Store, m any) int64 {
	t.Helper()
	var n int64
	if err := store.DB().Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return n
}

func TestRun_LoadsDemoAcademy(t *testing.T) {
	store := repository.NewStore(testutil.OpenDB(t))
	res := runSeed(t, store)

	want := []struct {
		model any
		n     int64
	}{
		{&model.User{}, 6},
		{&model.AdminProfile{}, 1},
		{&model.TeacherProfile{}, 3},
		{&model.StudentProfile{}, 2},
		{&model.TeacherAvailability{}, 9},
		{&model.Location{}, 2},
		{&model.Room{}, 6},
		{&model.Class{}, 3},
		{&model.SubClass{}, 7},
		{&model.ClassSchedule{}, 3},
		{&model.ClassSession{}, 3},
		{&model.Booking{}, 2},
		{&model.Invoice{}, 2},
		{&model.Payment{}, 2},
		{&model.Notification{}, 3},
	}
	for _, w := range want {
		if got := count(t, store, w.model); got != w.n {
			t.Fatalf("%T rows = %d, want %d", w.model, got, w.n)
		}
	}

	if len(res.StudentIDs) != 2 {
		t.Fatalf("expected 2 student ids, got %d", len(res.StudentIDs))
	}
}

func TestRun_PasswordsAreHashed(t *testing.T) {
	store := repository.NewStore(testutil.OpenDB(t))
	runSeed(t, store)

	u, err := store.Users.FindByEmail(context.Background(), "Student1@Gmail.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.StudentProfile == nil || u.StudentProfile.FirstName != "Mona" {
		t.Fatalf("unexpected student profile: %+v", u.StudentProfile)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Student@1234")); err != nil {
		t.Fatalf("password hash does not match: %v", err)
	}
}

func TestRun_IsRepeatable(t *testing.T) {
	store := repository.NewStore(testutil.OpenDB(t))
	first := runSeed(t, store)
	second := runSeed(t, store)

	if first.BalletScheduleID == second.BalletScheduleID {
		t.Fatalf("expected a fresh schedule after reseeding")
	}
	if got := count(t, store, &model.User{}); got != 6 {
		t.Fatalf("users after reseed = %d, want 6", got)
	}
	if got := count(t, store, &model.Booking{}); got != 2 {
		t.Fatalf("bookings after reseed = %d, want 2", got)
	}
}

func TestRun_PaymentsAndNotifications(t *testing.T) {
	store := repository.NewStore(testutil.OpenDB(t))
	runSeed(t, store)

	var payments []model.Payment
	if err := store.DB().Order("amount ASC").Find(&payments).Error; err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if payments[0].Status != model.PaymentStatusPaid || payments[0].Method == nil || *payments[0].Method != "CREDIT_CARD" {
		t.Fatalf("unexpected first payment: %+v", payments[0])
	}
	if payments[1].Status != model.PaymentStatusPending || payments[1].InvoiceID == nil {
		t.Fatalf("unexpected second payment: %+v", payments[1])
	}

	var inv model.Invoice
	if err := store.DB().First(&inv, "invoice_no = ?", "INV-2025-0002").Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if inv.Status != model.InvoiceStatusIssued || inv.DueDate == nil {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if due := time.Time(*inv.DueDate).Format("2006-01-02"); due != "2025-02-27" {
		t.Fatalf("due date = %s, want 2025-02-27", due)
	}

	var pending int64
	store.DB().Model(&model.Notification{}).Where("status = ?", model.NotificationStatusPending).Count(&pending)
	if pending != 1 {
		t.Fatalf("pending notifications = %d, want 1", pending)
	}
}

func TestRun_MarchCalendar(t *testing.T) {
	store := repository.NewStore(testutil.OpenDB(t))
	res := runSeed(t, store)

	occs, err := service.NewReconciler(store).SessionsForMonth(context.Background(), 2025, 2)
	if err != nil {
		t.Fatalf("SessionsForMonth: %v", err)
	}
	// five Mondays, four Tuesdays, four Wednesdays
	if len(occs) != 13 {
		t.Fatalf("expected 13 occurrences, got %d", len(occs))
	}

	live := 0
	for _, o := range occs {
		if !o.IsVirtual {
			live++
		}
		switch {
		case o.ScheduleID == res.BalletScheduleID.String() && o.SessionDate == "2025-03-03":
			if o.IsVirtual || o.SpotsLeft != 11 {
				t.Fatalf("ballet 03-03: virtual=%v spots=%d, want real with 11", o.IsVirtual, o.SpotsLeft)
			}
		case o.ScheduleID == res.BalletScheduleID.String() && o.SessionDate == "2025-03-10":
			if o.IsVirtual || o.SpotsLeft != 12 {
				t.Fatalf("ballet 03-10: virtual=%v spots=%d, want real with 12", o.IsVirtual, o.SpotsLeft)
			}
		case o.ScheduleID == res.PianoScheduleID.String() && o.SessionDate == "2025-03-04":
			if o.IsVirtual || o.SpotsLeft != 3 {
				t.Fatalf("piano 03-04: virtual=%v spots=%d, want real with 3", o.IsVirtual, o.SpotsLeft)
			}
		case o.ScheduleID == res.OilScheduleID.String():
			if !o.IsVirtual || o.EndTime != "15:30" || o.SubClass.Name != "Oil Painting" {
				t.Fatalf("unexpected oil painting occurrence: %+v", o)
			}
		}
	}
	if live != 3 {
		t.Fatalf("real occurrences = %d, want 3", live)
	}
}
