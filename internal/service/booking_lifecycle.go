package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

type ConfirmResult struct {
	BookingID uuid.UUID
	PaymentID uuid.UUID
	InvoiceNo string
}

// ConfirmPayment records a completed payment for a PENDING booking: the payment becomes PAID,
// a PAID invoice is issued, the booking is CONFIRMED and a confirmation is queued.
func (p *Promoter) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, method string) (*ConfirmResult, error) {
	if bookingID == uuid.Nil {
		return nil, apperrors.InvalidArgument("booking_id is required")
	}
	method = strings.TrimSpace(method)
	if method == "" {
		method = "card"
	}

	var res *ConfirmResult
	err := p.store.Transaction(ctx, func(tx *repository.Store) error {
		booking, err := tx.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return storeErr("confirm payment: booking", err)
		}
		if booking.Status != model.BookingStatusPending {
			return apperrors.InvalidState(fmt.Sprintf("booking is %s", strings.ToLower(string(booking.Status))))
		}
		payment := booking.Payment
		if payment == nil {
			return apperrors.NotFound("confirm payment: payment missing")
		}
		if payment.Status != model.PaymentStatusPending {
			return apperrors.InvalidState(fmt.Sprintf("payment is %s", strings.ToLower(string(payment.Status))))
		}
		student, err := tx.Users.GetStudent(ctx, booking.StudentID)
		if err != nil {
			return storeErr("confirm payment: student", err)
		}

		now := p.now()
		invoice := &model.Invoice{
			InvoiceNo:   invoiceNumber(now),
			StudentID:   booking.StudentID,
			Amount:      payment.Amount,
			TotalAmount: payment.Amount,
			Currency:    payment.Currency,
			Status:      model.InvoiceStatusPaid,
			IssuedAt:    &now,
			PaidAt:      &now,
		}
		if err := tx.Payments.CreateInvoice(ctx, invoice); err != nil {
			return storeErr("confirm payment: invoice", err)
		}

		payment.Status = model.PaymentStatusPaid
		payment.Method = &method
		payment.InvoiceID = &invoice.ID
		payment.PaidAt = &now
		if err := tx.Payments.Update(ctx, payment); err != nil {
			return storeErr("confirm payment: payment", err)
		}

		if err := tx.Bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed, nil, nil); err != nil {
			return storeErr("confirm payment: booking status", err)
		}

		if err := tx.Notifications.Enqueue(ctx, &model.Notification{
			UserID:    student.UserID,
			BookingID: &booking.ID,
			Subject:   "Booking confirmed",
			Body:      fmt.Sprintf("Your booking is confirmed. Invoice %s, %.3f %s.", invoice.InvoiceNo, invoice.TotalAmount, invoice.Currency),
		}); err != nil {
			return storeErr("confirm payment: notification", err)
		}

		if err := tx.Audit.Record(ctx, &model.AuditLog{
			Action:    model.AuditPaymentConfirmed,
			UserID:    &student.UserID,
			BookingID: &booking.ID,
			Details:   fmt.Sprintf("invoice=%s method=%s", invoice.InvoiceNo, method),
		}); err != nil {
			return storeErr("confirm payment: audit", err)
		}

		res = &ConfirmResult{BookingID: booking.ID, PaymentID: payment.ID, InvoiceNo: invoice.InvoiceNo}
		return nil
	})
	if err != nil {
		return nil, storeErr("confirm payment", err)
	}
	return res, nil
}

// invoiceNumber renders INV-<year>-<8 hex>.
func invoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d-%s", now.Year(), strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]))
}

// CancelBooking cancels a student's own booking. A pending payment is cancelled, a paid one
// is marked REFUNDED. Cancelling an already cancelled booking is a no-op.
func (p *Promoter) CancelBooking(ctx context.Context, bookingID, studentID uuid.UUID, reason string) error {
	if bookingID == uuid.Nil || studentID == uuid.Nil {
		return apperrors.InvalidArgument("booking_id and student_id are required")
	}

	err := p.store.Transaction(ctx, func(tx *repository.Store) error {
		booking, err := tx.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return storeErr("cancel booking", err)
		}
		if booking.StudentID != studentID {
			return apperrors.Forbidden("booking belongs to another student")
		}
		if booking.Status == model.BookingStatusCancelled {
			return nil
		}
		if !booking.CanCancel {
			return apperrors.InvalidState("booking can no longer be cancelled")
		}

		now := p.now()
		var why *string
		if r := strings.TrimSpace(reason); r != "" {
			why = &r
		}
		if err := cancelOne(ctx, tx, booking, now, why); err != nil {
			return err
		}

		return storeErr("cancel booking: audit", tx.Audit.Record(ctx, &model.AuditLog{
			Action:    model.AuditBookingCancelled,
			BookingID: &booking.ID,
			SessionID: &booking.SessionID,
			Details:   "cancelled by student",
		}))
	})
	return storeErr("cancel booking", err)
}

// cancelOne marks booking CANCELLED and settles its payment.
func cancelOne(ctx context.Context, tx *repository.Store, booking *model.Booking, now time.Time, reason *string) error {
	if err := tx.Bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusCancelled, &now, reason); err != nil {
		return storeErr("cancel booking: status", err)
	}
	payment := booking.Payment
	if payment == nil {
		return nil
	}
	switch payment.Status {
	case model.PaymentStatusPending:
		payment.Status = model.PaymentStatusCancelled
	case model.PaymentStatusPaid:
		payment.Status = model.PaymentStatusRefunded
	default:
		return nil
	}
	return storeErr("cancel booking: payment", tx.Payments.Update(ctx, payment))
}

// BookingView is one row of a student's booking history.
type BookingView struct {
	BookingID     string  `json:"booking_id"`
	SessionID     string  `json:"session_id"`
	SessionDate   string  `json:"session_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	SubClassName  string  `json:"sub_class_name"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	BookedAt      string  `json:"booked_at"`
	CanCancel     bool    `json:"can_cancel"`
}

// ListBookings pages a student's bookings, newest first.
func (p *Promoter) ListBookings(ctx context.Context, studentID uuid.UUID, page, pageSize int) (calendar.Page[BookingView], error) {
	if studentID == uuid.Nil {
		return calendar.Page[BookingView]{}, apperrors.InvalidArgument("student_id is required")
	}
	page, pageSize = calendar.NormalizePage(page, pageSize)

	bookings, total, err := p.store.Bookings.ListByStudent(ctx, studentID, pageSize, calendar.Offset(page, pageSize))
	if err != nil {
		return calendar.Page[BookingView]{}, storeErr("list bookings", err)
	}

	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, toBookingView(&bookings[i]))
	}
	return calendar.NewPage(views, total, page, pageSize), nil
}

func toBookingView(b *model.Booking) BookingView {
	v := BookingView{
		BookingID: b.ID.String(),
		SessionID: b.SessionID.String(),
		Status:    string(b.Status),
		BookedAt:  b.BookedAt.UTC().Format(time.RFC3339),
		CanCancel: b.CanCancel && b.Status != model.BookingStatusCancelled,
	}
	if s := b.Session; s != nil {
		v.SessionDate = calendar.FormatDate(time.Time(s.SessionDate))
		v.StartTime = s.StartTime
		v.EndTime = s.EndTime
		if s.Schedule != nil && s.Schedule.SubClass != nil {
			v.SubClassName = s.Schedule.SubClass.Name
		}
	}
	if pay := b.Payment; pay != nil {
		v.PaymentStatus = string(pay.Status)
		v.Amount = pay.Amount
		v.Currency = pay.Currency
	}
	return v
}
