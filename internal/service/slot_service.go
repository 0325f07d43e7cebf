package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// SlotService holds the staff operations on individual schedule slots.
type SlotService struct {
	store *repository.Store
	now   func() time.Time
}

func NewSlotService(store *repository.Store) *SlotService {
	return &SlotService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// AffectedBooking identifies a booking cancelled together with its slot.
type AffectedBooking struct {
	BookingID     uuid.UUID
	StudentID     uuid.UUID
	StudentUserID uuid.UUID
}

type CancelSlotResult struct {
	SessionID         uuid.UUID
	CancelledBookings int
	AffectedBookings  []AffectedBooking
}

// CancelSlot cancels one (schedule, date) slot. The stored CANCELLED session is what keeps the
// weekly projection from reappearing. Active bookings are cancelled, their payments settled and
// each student gets a queued notification. Repeating the call changes nothing.
func (s *SlotService) CancelSlot(ctx context.Context, scheduleID uuid.UUID, date, reason string) (*CancelSlotResult, error) {
	if scheduleID == uuid.Nil {
		return nil, apperrors.InvalidArgument("schedule_id is required")
	}
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "cancel slot", err)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "cancelled by academy"
	}

	var res *CancelSlotResult
	err = withConflictRetry(ctx, "cancel slot", func() error {
		var err error
		res, err = s.cancelSlotOnce(ctx, scheduleID, day, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[slots] cancelled %s on %s, %d bookings affected", scheduleID, date, res.CancelledBookings)
	return res, nil
}

func (s *SlotService) cancelSlotOnce(ctx context.Context, scheduleID uuid.UUID, day time.Time, reason string) (*CancelSlotResult, error) {
	res := &CancelSlotResult{AffectedBookings: []AffectedBooking{}}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		schedule, err := tx.Schedules.GetByID(ctx, scheduleID)
		if err != nil {
			return storeErr("cancel slot: schedule", err)
		}

		session, err := tx.Sessions.FindBySlot(ctx, scheduleID, day)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			if !projects(schedule, day) {
				return apperrors.NotBookable(fmt.Sprintf("schedule %s has no class on %s", scheduleID, calendar.FormatDate(day)))
			}
			session, err = insertSlot(ctx, tx, &model.ClassSession{
				ScheduleID:   scheduleID,
				SessionDate:  datatypes.Date(day),
				StartTime:    schedule.StartTime,
				EndTime:      schedule.EndTime,
				Status:       model.SessionStatusCancelled,
				CancelReason: &reason,
			})
			if err != nil {
				return err
			}
		case err != nil:
			return storeErr("cancel slot: session", err)
		}
		res.SessionID = session.ID

		if session.Status != model.SessionStatusCancelled {
			session.Status = model.SessionStatusCancelled
			session.CancelReason = &reason
			if err := tx.Sessions.Update(ctx, session); err != nil {
				return storeErr("cancel slot: session status", err)
			}
		}

		bookings, err := tx.Bookings.ListActiveBySession(ctx, session.ID)
		if err != nil {
			return storeErr("cancel slot: bookings", err)
		}

		now := s.now()
		for i := range bookings {
			b := &bookings[i]
			if err := cancelOne(ctx, tx, b, now, &reason); err != nil {
				return err
			}
			affected := AffectedBooking{BookingID: b.ID, StudentID: b.StudentID}
			if b.Student != nil {
				affected.StudentUserID = b.Student.UserID
				if err := tx.Notifications.Enqueue(ctx, &model.Notification{
					UserID:    b.Student.UserID,
					BookingID: &b.ID,
					Subject:   "Class cancelled",
					Body: fmt.Sprintf("Your %s class on %s at %s was cancelled: %s",
						subClassName(schedule), calendar.FormatDate(day), session.StartTime, reason),
				}); err != nil {
					return storeErr("cancel slot: notification", err)
				}
			}
			res.AffectedBookings = append(res.AffectedBookings, affected)
		}
		res.CancelledBookings = len(bookings)

		return storeErr("cancel slot: audit", tx.Audit.Record(ctx, &model.AuditLog{
			Action:    model.AuditSlotCancelled,
			SessionID: &session.ID,
			Details:   fmt.Sprintf("reason=%q bookings=%d", reason, len(bookings)),
		}))
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type OverrideRequest struct {
	ScheduleID uuid.UUID
	Date       string
	// Empty times fall back to the schedule's nominal times.
	StartTime   string
	EndTime     string
	MaxCapacity *int
}

// OverrideSlot creates or updates the concrete session for one date with its own times and
// capacity. The date need not match the weekly pattern, which makes it a one-off session. An
// overridden slot is always ACTIVE.
func (s *SlotService) OverrideSlot(ctx context.Context, req OverrideRequest) (*model.ClassSession, error) {
	if req.ScheduleID == uuid.Nil {
		return nil, apperrors.InvalidArgument("schedule_id is required")
	}
	day, err := calendar.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "override slot", err)
	}
	if req.MaxCapacity != nil && *req.MaxCapacity < 0 {
		return nil, apperrors.InvalidArgument("max_capacity must not be negative")
	}

	var out *model.ClassSession
	err = withConflictRetry(ctx, "override slot", func() error {
		return s.store.Transaction(ctx, func(tx *repository.Store) error {
			schedule, err := tx.Schedules.GetByID(ctx, req.ScheduleID)
			if err != nil {
				return storeErr("override slot: schedule", err)
			}
			start, end := req.StartTime, req.EndTime
			if start == "" {
				start = schedule.StartTime
			}
			if end == "" {
				end = schedule.EndTime
			}
			if err := calendar.ValidateSlot(start, end); err != nil {
				return apperrors.Wrap(apperrors.CodeInvalidArgument, "override slot", err)
			}

			session, err := insertSlot(ctx, tx, &model.ClassSession{
				ScheduleID:  schedule.ID,
				SessionDate: datatypes.Date(day),
				StartTime:   start,
				EndTime:     end,
				Status:      model.SessionStatusActive,
				MaxCapacity: req.MaxCapacity,
			})
			if err != nil {
				return err
			}
			session.StartTime = start
			session.EndTime = end
			session.Status = model.SessionStatusActive
			session.MaxCapacity = req.MaxCapacity
			session.CancelReason = nil
			if err := tx.Sessions.Update(ctx, session); err != nil {
				return storeErr("override slot: update", err)
			}

			out = session
			return storeErr("override slot: audit", tx.Audit.Record(ctx, &model.AuditLog{
				Action:    model.AuditSlotOverridden,
				SessionID: &session.ID,
				Details:   fmt.Sprintf("date=%s time=%s-%s", calendar.FormatDate(day), start, end),
			}))
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func subClassName(schedule *model.ClassSchedule) string {
	if schedule.SubClass != nil {
		return schedule.SubClass.Name
	}
	return "scheduled"
}

// withConflictRetry runs fn again once when it fails on a (schedule, date) key conflict.
func withConflictRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxBookAttempts; attempt++ {
		if err = fn(); err == nil || !isConflict(err) {
			break
		}
		log.Printf("[%s] slot contention (attempt %d/%d): %v", op, attempt, maxBookAttempts, err)
		trace.SpanFromContext(ctx).AddEvent("slot contention", trace.WithAttributes(
			attribute.String("op", op),
			attribute.Int("attempt", attempt),
		))
	}
	if err != nil && isConflict(err) {
		return apperrors.Wrap(apperrors.CodeConflict, op, err)
	}
	return storeErr(op, err)
}
