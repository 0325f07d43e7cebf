package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// maxBookAttempts bounds the transaction attempts when a materialization race is lost.
const maxBookAttempts = 2

type BookRequest struct {
	OccurrenceID string
	// ScheduleID and SessionDate are optional for virtual ids; when set they must agree with
	// the token.
	ScheduleID  string
	SessionDate string
	StudentID   uuid.UUID
}

type BookResult struct {
	BookingID     uuid.UUID
	PaymentID     uuid.UUID
	SessionID     uuid.UUID
	PaymentNeeded bool
}

// Promoter turns calendar occurrences into bookings.
type Promoter struct {
	store *repository.Store
	now   func() time.Time
}

func NewPromoter(store *repository.Store) *Promoter {
	return &Promoter{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Book resolves req to a stored session, materializing a virtual occurrence when needed, and
// creates a PENDING booking with its PENDING payment in one transaction. Losing a race on the
// (schedule, date) key retries the transaction once.
func (p *Promoter) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Promoter.Book")
	defer span.End()
	span.SetAttributes(attribute.String("booking.occurrence_id", req.OccurrenceID))

	ref, err := resolveRef(req)
	if err != nil {
		return nil, err
	}
	if req.StudentID == uuid.Nil {
		return nil, apperrors.InvalidArgument("student_id is required")
	}

	var res *BookResult
	err = withConflictRetry(ctx, "book", func() error {
		var err error
		res, err = p.bookOnce(ctx, ref, req.StudentID)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("booking.id", res.BookingID.String()))
	return res, nil
}

func resolveRef(req BookRequest) (calendar.OccurrenceRef, error) {
	ref, err := calendar.ParseOccurrenceID(req.OccurrenceID)
	if err != nil {
		return calendar.OccurrenceRef{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "book", err)
	}
	if req.ScheduleID != "" {
		scheduleID, err := uuid.Parse(req.ScheduleID)
		if err != nil {
			return calendar.OccurrenceRef{}, apperrors.InvalidArgument("schedule_id must be a uuid")
		}
		if ref.Virtual && scheduleID != ref.ScheduleID {
			return calendar.OccurrenceRef{}, apperrors.InvalidArgument("schedule_id does not match occurrence")
		}
		if !ref.Virtual {
			ref.ScheduleID = scheduleID
		}
	}
	if req.SessionDate != "" {
		date, err := calendar.ParseDate(req.SessionDate)
		if err != nil {
			return calendar.OccurrenceRef{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "book", err)
		}
		if ref.Virtual && !date.Equal(ref.Date) {
			return calendar.OccurrenceRef{}, apperrors.InvalidArgument("session_date does not match occurrence")
		}
		if !ref.Virtual {
			ref.Date = date
		}
	}
	return ref, nil
}

func (p *Promoter) bookOnce(ctx context.Context, ref calendar.OccurrenceRef, studentID uuid.UUID) (*BookResult, error) {
	var res *BookResult
	err := p.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users.GetStudent(ctx, studentID); err != nil {
			return storeErr("book: student profile", err)
		}

		session, err := materialize(ctx, tx, ref)
		if err != nil {
			return err
		}

		locked, err := tx.Sessions.LockByID(ctx, session.ID)
		if err != nil {
			return storeErr("book: lock session", err)
		}
		if locked.Status != model.SessionStatusActive {
			return apperrors.NotBookable(fmt.Sprintf("session is %s", strings.ToLower(string(locked.Status))))
		}

		schedule, err := tx.Schedules.GetByID(ctx, locked.ScheduleID)
		if err != nil {
			return storeErr("book: load schedule", err)
		}
		if schedule.SubClass == nil {
			return apperrors.NotFound("book: sub class missing for schedule")
		}
		locked.Schedule = schedule

		taken, err := tx.Bookings.CountActive(ctx, locked.ID)
		if err != nil {
			return storeErr("book: count bookings", err)
		}
		if taken >= int64(locked.Capacity()) {
			return apperrors.Wrap(apperrors.CodeCapacityExceeded, "class is full",
				fmt.Errorf("session %s has %d/%d seats taken", locked.ID, taken, locked.Capacity()))
		}

		now := p.now()
		booking := &model.Booking{
			StudentID: studentID,
			SessionID: locked.ID,
			Status:    model.BookingStatusPending,
			BookedAt:  now,
			CanCancel: true,
		}
		if err := tx.Bookings.Create(ctx, booking); err != nil {
			return storeErr("book: create booking", err)
		}

		payment := &model.Payment{
			BookingID: booking.ID,
			Amount:    schedule.SubClass.Price,
			Currency:  schedule.SubClass.Currency,
			Status:    model.PaymentStatusPending,
		}
		if err := tx.Payments.Create(ctx, payment); err != nil {
			return storeErr("book: create payment", err)
		}

		if err := tx.Audit.Record(ctx, &model.AuditLog{
			Action:    model.AuditBookingCreated,
			BookingID: &booking.ID,
			SessionID: &locked.ID,
			Details:   fmt.Sprintf("student=%s amount=%.3f %s", studentID, payment.Amount, payment.Currency),
		}); err != nil {
			return storeErr("book: audit", err)
		}

		res = &BookResult{
			BookingID:     booking.ID,
			PaymentID:     payment.ID,
			SessionID:     locked.ID,
			PaymentNeeded: true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// materialize returns the stored session behind ref, inserting it for a virtual occurrence
// that has no row yet.
func materialize(ctx context.Context, tx *repository.Store, ref calendar.OccurrenceRef) (*model.ClassSession, error) {
	if !ref.Virtual {
		s, err := tx.Sessions.GetByID(ctx, ref.SessionID)
		if err != nil {
			return nil, storeErr("book: session", err)
		}
		if ref.ScheduleID != uuid.Nil && s.ScheduleID != ref.ScheduleID {
			return nil, apperrors.InvalidArgument("schedule_id does not match session")
		}
		if !ref.Date.IsZero() && calendar.FormatDate(time.Time(s.SessionDate)) != calendar.FormatDate(ref.Date) {
			return nil, apperrors.InvalidArgument("session_date does not match session")
		}
		return s, nil
	}

	existing, err := tx.Sessions.FindBySlot(ctx, ref.ScheduleID, ref.Date)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr("book: find session", err)
	}

	schedule, err := tx.Schedules.GetByID(ctx, ref.ScheduleID)
	if err != nil {
		return nil, storeErr("book: schedule", err)
	}
	if !projects(schedule, ref.Date) {
		return nil, apperrors.NotBookable(fmt.Sprintf("schedule %s has no class on %s", schedule.ID, calendar.FormatDate(ref.Date)))
	}

	return insertSlot(ctx, tx, &model.ClassSession{
		ScheduleID:  schedule.ID,
		SessionDate: datatypes.Date(ref.Date),
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		Status:      model.SessionStatusActive,
	})
}

// insertSlot writes s unless its (schedule, date) key is taken, in which case the winner's
// row is returned. A key that is taken but unreadable is a Conflict.
func insertSlot(ctx context.Context, tx *repository.Store, s *model.ClassSession) (*model.ClassSession, error) {
	inserted, err := tx.Sessions.InsertIfAbsent(ctx, s)
	if err != nil {
		return nil, storeErr("materialize session", err)
	}
	if inserted {
		return s, nil
	}

	winner, err := tx.Sessions.FindBySlot(ctx, s.ScheduleID, time.Time(s.SessionDate))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeConflict, "materialize session", err)
	}
	if err != nil {
		return nil, storeErr("materialize session", err)
	}
	return winner, nil
}
