package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/testutil"
)

func virtualID(t *testing.T, a *testutil.Academy, date string) string {
	t.Helper()
	return calendar.VirtualOccurrenceID(a.Monday.ID, testutil.Date(t, date))
}

// onCreate runs fn before every INSERT into table.
func onCreate(t *testing.T, db *gorm.DB, table string, fn func(tx *gorm.DB)) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:"+table+":"+t.Name(), func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == table {
			fn(tx)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func TestPromoter_BookVirtualCreatesPendingBookingAndPayment(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)

	res, err := p.Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		ScheduleID:   a.Monday.ID.String(),
		SessionDate:  "2025-03-03",
		StudentID:    a.Student.ID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !res.PaymentNeeded {
		t.Fatalf("expected payment to be needed")
	}

	var session model.ClassSession
	if err := a.DB.First(&session, "id = ?", res.SessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.ScheduleID != a.Monday.ID || calendar.FormatDate(time.Time(session.SessionDate)) != "2025-03-03" {
		t.Fatalf("materialized wrong slot: %+v", session)
	}
	if session.Status != model.SessionStatusActive || session.StartTime != "10:00" || session.EndTime != "11:00" {
		t.Fatalf("session not built from schedule: %+v", session)
	}

	var booking model.Booking
	if err := a.DB.First(&booking, "id = ?", res.BookingID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.Status != model.BookingStatusPending || booking.StudentID != a.Student.ID || booking.SessionID != session.ID {
		t.Fatalf("unexpected booking: %+v", booking)
	}

	var payment model.Payment
	if err := a.DB.First(&payment, "booking_id = ?", booking.ID).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.ID != res.PaymentID || payment.Status != model.PaymentStatusPending {
		t.Fatalf("unexpected payment: %+v", payment)
	}
	if payment.Amount != 25 || payment.Currency != "OMR" {
		t.Fatalf("payment amount = %.3f %s, want 25.000 OMR", payment.Amount, payment.Currency)
	}

	if n := a.Count(t, &model.Booking{}, ""); n != 1 {
		t.Fatalf("bookings = %d, want 1", n)
	}
	if n := a.Count(t, &model.Payment{}, ""); n != 1 {
		t.Fatalf("payments = %d, want 1", n)
	}
	if n := a.Count(t, &model.AuditLog{}, "action = ?", model.AuditBookingCreated); n != 1 {
		t.Fatalf("audit rows = %d, want 1", n)
	}
}

func TestPromoter_PriceIsSnapshotted(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)

	res, err := p.Book(context.Background(), BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), StudentID: a.Student.ID})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if err := a.DB.Model(&model.SubClass{}).Where("id = ?", a.Ballet.ID).Update("price", 40).Error; err != nil {
		t.Fatalf("raise price: %v", err)
	}

	var payment model.Payment
	if err := a.DB.First(&payment, "id = ?", res.PaymentID).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Amount != 25 {
		t.Fatalf("payment followed the live price: %.3f", payment.Amount)
	}
}

func TestPromoter_BookRealSession(t *testing.T) {
	a := testutil.NewAcademy(t)
	session := a.AddSession(t, a.Monday, "2025-03-03", model.SessionStatusActive)

	res, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: session.ID.String(),
		ScheduleID:   a.Monday.ID.String(),
		SessionDate:  "2025-03-03",
		StudentID:    a.Student.ID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if res.SessionID != session.ID {
		t.Fatalf("booked session %s, want %s", res.SessionID, session.ID)
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
}

func TestPromoter_VirtualIDResolvesToExistingSession(t *testing.T) {
	a := testutil.NewAcademy(t)
	session := a.AddSession(t, a.Monday, "2025-03-03", model.SessionStatusActive)

	res, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		StudentID:    a.Student.ID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if res.SessionID != session.ID {
		t.Fatalf("expected the existing session to be reused")
	}
}

func TestPromoter_BookingTwiceResolvesToSameSession(t *testing.T) {
	a := testutil.NewAcademy(t)
	_, other := a.AddStudent(t, "layla@example.com", "Layla")
	p := NewPromoter(a.Store)
	id := virtualID(t, a, "2025-03-10")

	first, err := p.Book(context.Background(), BookRequest{OccurrenceID: id, StudentID: a.Student.ID})
	if err != nil {
		t.Fatalf("first Book: %v", err)
	}
	second, err := p.Book(context.Background(), BookRequest{OccurrenceID: id, StudentID: other.ID})
	if err != nil {
		t.Fatalf("second Book: %v", err)
	}

	if first.SessionID != second.SessionID {
		t.Fatalf("bookings landed on different sessions: %s vs %s", first.SessionID, second.SessionID)
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
}

func TestPromoter_ConcurrentBookingsShareOneSession(t *testing.T) {
	a := testutil.NewAcademy(t)
	_, other := a.AddStudent(t, "layla@example.com", "Layla")
	p := NewPromoter(a.Store)
	id := virtualID(t, a, "2025-03-17")

	students := []uuid.UUID{a.Student.ID, other.ID}
	results := make([]*BookResult, len(students))
	errs := make([]error, len(students))

	var wg sync.WaitGroup
	for i, studentID := range students {
		wg.Add(1)
		go func(i int, studentID uuid.UUID) {
			defer wg.Done()
			results[i], errs[i] = p.Book(context.Background(), BookRequest{OccurrenceID: id, StudentID: studentID})
		}(i, studentID)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("Book %d: %v", i, err)
		}
	}
	if results[0].SessionID != results[1].SessionID {
		t.Fatalf("concurrent bookings created different sessions")
	}
	if n := a.Count(t, &model.ClassSession{}, "schedule_id = ?", a.Monday.ID); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
	if n := a.Count(t, &model.Booking{}, "session_id = ?", results[0].SessionID); n != 2 {
		t.Fatalf("bookings = %d, want 2", n)
	}
}

func TestPromoter_LosingMaterializationRaceUsesWinnerRow(t *testing.T) {
	a := testutil.NewAcademy(t)
	date := testutil.Date(t, "2025-03-24")
	winnerID := uuid.New()

	fired := false
	onCreate(t, a.DB, "class_sessions", func(tx *gorm.DB) {
		if fired {
			return
		}
		fired = true
		// another request commits the same slot between our lookup and our insert
		winner := model.ClassSession{
			ID:          winnerID,
			ScheduleID:  a.Monday.ID,
			SessionDate: datatypes.Date(date),
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      model.SessionStatusActive,
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Omit("Schedule").Create(&winner).Error; err != nil {
			t.Errorf("insert competing session: %v", err)
		}
	})

	res, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: calendar.VirtualOccurrenceID(a.Monday.ID, date),
		StudentID:    a.Student.ID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !fired {
		t.Fatalf("race was not simulated")
	}
	if res.SessionID != winnerID {
		t.Fatalf("booking attached to %s, want winner %s", res.SessionID, winnerID)
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
}

func TestPromoter_ConflictIsRetriedOnce(t *testing.T) {
	a := testutil.NewAcademy(t)
	calls := 0
	onCreate(t, a.DB, "bookings", func(tx *gorm.DB) {
		calls++
		if calls == 1 {
			_ = tx.AddError(gorm.ErrDuplicatedKey)
		}
	})

	res, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		StudentID:    a.Student.ID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if calls != 2 {
		t.Fatalf("booking insert attempts = %d, want 2", calls)
	}
	if res.BookingID == uuid.Nil {
		t.Fatalf("missing booking id")
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
	if n := a.Count(t, &model.Booking{}, ""); n != 1 {
		t.Fatalf("bookings = %d, want 1", n)
	}
	if n := a.Count(t, &model.Payment{}, ""); n != 1 {
		t.Fatalf("payments = %d, want 1", n)
	}
}

func TestPromoter_SecondConflictSurfaces(t *testing.T) {
	a := testutil.NewAcademy(t)
	calls := 0
	onCreate(t, a.DB, "bookings", func(tx *gorm.DB) {
		calls++
		_ = tx.AddError(gorm.ErrDuplicatedKey)
	})

	_, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		StudentID:    a.Student.ID,
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("attempts = %d, want 2", calls)
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 0 {
		t.Fatalf("sessions = %d, want 0 after rollback", n)
	}
}

func TestPromoter_FailedPaymentRollsBackEverything(t *testing.T) {
	a := testutil.NewAcademy(t)
	onCreate(t, a.DB, "payments", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("disk I/O error"))
	})

	_, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		StudentID:    a.Student.ID,
	})
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
	for name, m := range map[string]any{
		"sessions": &model.ClassSession{},
		"bookings": &model.Booking{},
		"payments": &model.Payment{},
		"audit":    &model.AuditLog{},
	} {
		if n := a.Count(t, m, ""); n != 0 {
			t.Fatalf("%s = %d after failed booking, want 0", name, n)
		}
	}
}

func TestPromoter_CapacityIsRecheckedAtBookingTime(t *testing.T) {
	a := testutil.NewAcademy(t)
	session := a.AddSession(t, a.Monday, "2025-03-03", model.SessionStatusActive)
	capacity := 1
	session.MaxCapacity = &capacity
	if err := a.Store.Sessions.Update(context.Background(), &session); err != nil {
		t.Fatalf("update session: %v", err)
	}
	_, other := a.AddStudent(t, "layla@example.com", "Layla")
	p := NewPromoter(a.Store)

	if _, err := p.Book(context.Background(), BookRequest{OccurrenceID: session.ID.String(), StudentID: a.Student.ID}); err != nil {
		t.Fatalf("first Book: %v", err)
	}
	_, err := p.Book(context.Background(), BookRequest{OccurrenceID: session.ID.String(), StudentID: other.ID})
	if !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity exceeded, got %v", err)
	}
	if n := a.Count(t, &model.Booking{}, ""); n != 1 {
		t.Fatalf("bookings = %d, want 1", n)
	}
	if n := a.Count(t, &model.Payment{}, ""); n != 1 {
		t.Fatalf("payments = %d, want 1", n)
	}
}

func TestPromoter_CancelledBookingFreesSeat(t *testing.T) {
	a := testutil.NewAcademy(t)
	full := a.AddSchedule(t, func(s *model.ClassSchedule) { s.MaxCapacity = 1 })
	session := a.AddSession(t, full, "2025-03-03", model.SessionStatusActive)
	a.AddBooking(t, a.Student.ID, session.ID, model.BookingStatusCancelled)

	if _, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{OccurrenceID: session.ID.String(), StudentID: a.Student.ID}); err != nil {
		t.Fatalf("Book: %v", err)
	}
}

func TestPromoter_RejectsUnbookableSlots(t *testing.T) {
	a := testutil.NewAcademy(t)
	cancelled := a.AddSession(t, a.Monday, "2025-03-10", model.SessionStatusCancelled)
	booked := a.AddSession(t, a.Monday, "2025-03-17", model.SessionStatusActive)
	p := NewPromoter(a.Store)

	cases := []struct {
		name string
		req  BookRequest
		want error
	}{
		{
			name: "cancelled real session",
			req:  BookRequest{OccurrenceID: cancelled.ID.String()},
			want: apperrors.ErrNotBookable,
		},
		{
			name: "virtual id of cancelled slot",
			req:  BookRequest{OccurrenceID: virtualID(t, a, "2025-03-10")},
			want: apperrors.ErrNotBookable,
		},
		{
			name: "wrong weekday",
			req:  BookRequest{OccurrenceID: virtualID(t, a, "2025-03-04")},
			want: apperrors.ErrNotBookable,
		},
		{
			name: "before schedule starts",
			req:  BookRequest{OccurrenceID: virtualID(t, a, "2025-02-24")},
			want: apperrors.ErrNotBookable,
		},
		{
			name: "unknown schedule",
			req:  BookRequest{OccurrenceID: calendar.VirtualOccurrenceID(uuid.New(), testutil.Date(t, "2025-03-03"))},
			want: apperrors.ErrNotFound,
		},
		{
			name: "unknown session",
			req:  BookRequest{OccurrenceID: uuid.NewString()},
			want: apperrors.ErrNotFound,
		},
		{
			name: "garbage id",
			req:  BookRequest{OccurrenceID: "virtual:nope"},
			want: apperrors.ErrInvalidArgument,
		},
		{
			name: "schedule mismatch",
			req:  BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), ScheduleID: uuid.NewString()},
			want: apperrors.ErrInvalidArgument,
		},
		{
			name: "date mismatch",
			req:  BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), SessionDate: "2025-03-10"},
			want: apperrors.ErrInvalidArgument,
		},
		{
			name: "real session date mismatch",
			req:  BookRequest{OccurrenceID: booked.ID.String(), SessionDate: "2025-03-24"},
			want: apperrors.ErrInvalidArgument,
		},
		{
			name: "real session schedule mismatch",
			req:  BookRequest{OccurrenceID: booked.ID.String(), ScheduleID: uuid.NewString()},
			want: apperrors.ErrInvalidArgument,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.StudentID = a.Student.ID
			if _, err := p.Book(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if n := a.Count(t, &model.Booking{}, ""); n != 0 {
		t.Fatalf("bookings = %d, want 0", n)
	}
}

func TestPromoter_UnknownStudent(t *testing.T) {
	a := testutil.NewAcademy(t)
	_, err := NewPromoter(a.Store).Book(context.Background(), BookRequest{
		OccurrenceID: virtualID(t, a, "2025-03-03"),
		StudentID:    uuid.New(),
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if n := a.Count(t, &model.ClassSession{}, ""); n != 0 {
		t.Fatalf("sessions = %d, want 0", n)
	}
}

func TestPromoter_ConfirmPayment(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)
	res, err := p.Book(context.Background(), BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), StudentID: a.Student.ID})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	confirmed, err := p.ConfirmPayment(context.Background(), res.BookingID, "card")
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}

	var booking model.Booking
	if err := a.DB.Preload("Payment").First(&booking, "id = ?", res.BookingID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.Status != model.BookingStatusConfirmed {
		t.Fatalf("booking status = %s", booking.Status)
	}
	if booking.Payment.Status != model.PaymentStatusPaid || booking.Payment.PaidAt == nil || booking.Payment.InvoiceID == nil {
		t.Fatalf("payment not settled: %+v", booking.Payment)
	}

	var invoice model.Invoice
	if err := a.DB.First(&invoice, "id = ?", *booking.Payment.InvoiceID).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.InvoiceNo != confirmed.InvoiceNo || invoice.Status != model.InvoiceStatusPaid || invoice.TotalAmount != 25 {
		t.Fatalf("unexpected invoice: %+v", invoice)
	}
	if len(invoice.InvoiceNo) != len("INV-2025-ABCDEF12") {
		t.Fatalf("unexpected invoice number %q", invoice.InvoiceNo)
	}

	pending, err := a.Store.Notifications.ListPendingByUser(context.Background(), a.StudentUser.ID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(pending) != 1 || pending[0].Subject != "Booking confirmed" {
		t.Fatalf("unexpected notifications: %+v", pending)
	}

	if _, err := p.ConfirmPayment(context.Background(), res.BookingID, "card"); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("second confirm: expected invalid state, got %v", err)
	}
}

func TestPromoter_CancelBooking(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)
	res, err := p.Book(context.Background(), BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), StudentID: a.Student.ID})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	_, stranger := a.AddStudent(t, "layla@example.com", "Layla")
	if err := p.CancelBooking(context.Background(), res.BookingID, stranger.ID, ""); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for another student, got %v", err)
	}

	if err := p.CancelBooking(context.Background(), res.BookingID, a.Student.ID, "travelling"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	// repeat is a no-op
	if err := p.CancelBooking(context.Background(), res.BookingID, a.Student.ID, "travelling"); err != nil {
		t.Fatalf("second CancelBooking: %v", err)
	}

	var booking model.Booking
	if err := a.DB.Preload("Payment").First(&booking, "id = ?", res.BookingID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.Status != model.BookingStatusCancelled || booking.CancelledAt == nil {
		t.Fatalf("booking not cancelled: %+v", booking)
	}
	if booking.CancelReason == nil || *booking.CancelReason != "travelling" {
		t.Fatalf("cancel reason not stored: %v", booking.CancelReason)
	}
	if booking.Payment.Status != model.PaymentStatusCancelled {
		t.Fatalf("payment status = %s, want CANCELLED", booking.Payment.Status)
	}
}

func TestPromoter_CancelPaidBookingRefunds(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)
	res, err := p.Book(context.Background(), BookRequest{OccurrenceID: virtualID(t, a, "2025-03-03"), StudentID: a.Student.ID})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := p.ConfirmPayment(context.Background(), res.BookingID, "card"); err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	if err := p.CancelBooking(context.Background(), res.BookingID, a.Student.ID, ""); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	var payment model.Payment
	if err := a.DB.First(&payment, "id = ?", res.PaymentID).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != model.PaymentStatusRefunded {
		t.Fatalf("payment status = %s, want REFUNDED", payment.Status)
	}
}

func TestPromoter_ListBookings(t *testing.T) {
	a := testutil.NewAcademy(t)
	p := NewPromoter(a.Store)
	for _, date := range []string{"2025-03-03", "2025-03-10", "2025-03-17"} {
		if _, err := p.Book(context.Background(), BookRequest{OccurrenceID: virtualID(t, a, date), StudentID: a.Student.ID}); err != nil {
			t.Fatalf("Book %s: %v", date, err)
		}
	}

	page, err := p.ListBookings(context.Background(), a.Student.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 2 || !page.HasNext {
		t.Fatalf("unexpected page: %+v", page)
	}
	item := page.Items[0]
	if item.SubClassName != "Ballet for Kids" || item.PaymentStatus != string(model.PaymentStatusPending) || item.Amount != 25 {
		t.Fatalf("unexpected view: %+v", item)
	}
	if item.SessionDate == "" || item.StartTime != "10:00" || !item.CanCancel {
		t.Fatalf("session details missing: %+v", item)
	}
}
