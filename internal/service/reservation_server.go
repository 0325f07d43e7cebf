package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	reservationv1 "github.com/GulfDevInnovations/royal-academy/internal/api/reservation/v1"
	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// ReservationServer exposes the reconciler, the promoter and slot management over gRPC.
// Callers are staff tools and the website backend on the internal network; student ids are
// taken as given.
type ReservationServer struct {
	reservationv1.UnimplementedReservationServiceServer

	reconciler *Reconciler
	promoter   *Promoter
	slots      *SlotService
}

func NewReservationServer(store *repository.Store) *ReservationServer {
	return &ReservationServer{
		reconciler: NewReconciler(store),
		promoter:   NewPromoter(store),
		slots:      NewSlotService(store),
	}
}

func (s *ReservationServer) ListMonth(ctx context.Context, req *reservationv1.ListMonthRequest) (*reservationv1.ListMonthResponse, error) {
	occs, err := s.reconciler.SessionsForMonth(ctx, int(req.GetYear()), int(req.GetMonth()))
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.ListMonthResponse{Occurrences: toWireOccurrences(occs)}, nil
}

func (s *ReservationServer) ListDay(ctx context.Context, req *reservationv1.ListDayRequest) (*reservationv1.ListDayResponse, error) {
	page, err := s.reconciler.SessionsForDay(ctx, req.GetDate(), int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.ListDayResponse{
		Occurrences: toWireOccurrences(page.Items),
		Page:        int32(page.Page),
		PageSize:    int32(page.PageSize),
		TotalCount:  int32(page.Total),
		HasNext:     page.HasNext,
	}, nil
}

func (s *ReservationServer) Book(ctx context.Context, req *reservationv1.BookRequest) (*reservationv1.BookResponse, error) {
	studentID, err := parseID("student_id", req.GetStudentId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	res, err := s.promoter.Book(ctx, BookRequest{
		OccurrenceID: req.GetOccurrenceId(),
		ScheduleID:   req.GetScheduleId(),
		SessionDate:  req.GetSessionDate(),
		StudentID:    studentID,
	})
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.BookResponse{
		BookingId:     res.BookingID.String(),
		PaymentId:     res.PaymentID.String(),
		SessionId:     res.SessionID.String(),
		PaymentNeeded: res.PaymentNeeded,
	}, nil
}

func (s *ReservationServer) ConfirmPayment(ctx context.Context, req *reservationv1.ConfirmPaymentRequest) (*reservationv1.ConfirmPaymentResponse, error) {
	bookingID, err := parseID("booking_id", req.GetBookingId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	res, err := s.promoter.ConfirmPayment(ctx, bookingID, req.GetMethod())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.ConfirmPaymentResponse{
		BookingId: res.BookingID.String(),
		PaymentId: res.PaymentID.String(),
		InvoiceNo: res.InvoiceNo,
	}, nil
}

func (s *ReservationServer) CancelBooking(ctx context.Context, req *reservationv1.CancelBookingRequest) (*reservationv1.CancelBookingResponse, error) {
	bookingID, err := parseID("booking_id", req.GetBookingId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	studentID, err := parseID("student_id", req.GetStudentId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	if err := s.promoter.CancelBooking(ctx, bookingID, studentID, req.GetReason()); err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.CancelBookingResponse{}, nil
}

func (s *ReservationServer) ListBookings(ctx context.Context, req *reservationv1.ListBookingsRequest) (*reservationv1.ListBookingsResponse, error) {
	studentID, err := parseID("student_id", req.GetStudentId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	page, err := s.promoter.ListBookings(ctx, studentID, int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}

	resp := &reservationv1.ListBookingsResponse{
		Bookings:   make([]*reservationv1.Booking, 0, len(page.Items)),
		Page:       int32(page.Page),
		PageSize:   int32(page.PageSize),
		TotalCount: int32(page.Total),
		HasNext:    page.HasNext,
	}
	for _, b := range page.Items {
		resp.Bookings = append(resp.Bookings, &reservationv1.Booking{
			Id:            b.BookingID,
			SessionId:     b.SessionID,
			SessionDate:   b.SessionDate,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			SubClassName:  b.SubClassName,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			Amount:        b.Amount,
			Currency:      b.Currency,
			BookedAt:      b.BookedAt,
			CanCancel:     b.CanCancel,
		})
	}
	return resp, nil
}

func (s *ReservationServer) CancelSlot(ctx context.Context, req *reservationv1.CancelSlotRequest) (*reservationv1.CancelSlotResponse, error) {
	scheduleID, err := parseID("schedule_id", req.GetScheduleId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	res, err := s.slots.CancelSlot(ctx, scheduleID, req.GetDate(), req.GetReason())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}

	ids := make([]string, 0, len(res.AffectedBookings))
	for _, b := range res.AffectedBookings {
		ids = append(ids, b.BookingID.String())
	}
	return &reservationv1.CancelSlotResponse{
		SessionId:          res.SessionID.String(),
		CancelledBookings:  int32(res.CancelledBookings),
		AffectedBookingIds: ids,
	}, nil
}

func (s *ReservationServer) OverrideSlot(ctx context.Context, req *reservationv1.OverrideSlotRequest) (*reservationv1.OverrideSlotResponse, error) {
	scheduleID, err := parseID("schedule_id", req.GetScheduleId())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	var capacity *int
	if req.GetMaxCapacity() != nil {
		c := int(req.GetMaxCapacity().GetValue())
		capacity = &c
	}

	session, err := s.slots.OverrideSlot(ctx, OverrideRequest{
		ScheduleID:  scheduleID,
		Date:        req.GetDate(),
		StartTime:   req.GetStartTime(),
		EndTime:     req.GetEndTime(),
		MaxCapacity: capacity,
	})
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &reservationv1.OverrideSlotResponse{
		SessionId:   session.ID.String(),
		SessionDate: req.GetDate(),
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
		Status:      string(session.Status),
	}, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, apperrors.InvalidArgument(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgument(field + " must be a uuid")
	}
	return id, nil
}

func toWireOccurrences(occs []calendar.Occurrence) []*reservationv1.Occurrence {
	out := make([]*reservationv1.Occurrence, 0, len(occs))
	for i := range occs {
		o := &occs[i]
		w := &reservationv1.Occurrence{
			Id:           o.ID,
			ScheduleId:   o.ScheduleID,
			SessionDate:  o.SessionDate,
			StartTime:    o.StartTime,
			EndTime:      o.EndTime,
			Status:       o.Status,
			IsVirtual:    o.IsVirtual,
			Capacity:     int32(o.Capacity),
			SpotsLeft:    int32(o.SpotsLeft),
			SubClassId:   o.SubClass.ID,
			SubClassName: o.SubClass.Name,
			ClassName:    o.SubClass.ClassName,
			Price:        o.SubClass.Price,
			Currency:     o.SubClass.Currency,
			TeacherId:    o.Teacher.ID,
			TeacherName:  strings.TrimSpace(o.Teacher.FirstName + " " + o.Teacher.LastName),
		}
		if o.Room != nil {
			w.RoomName = o.Room.Name
			w.LocationName = o.Room.LocationName
		}
		if o.OnlineLink != nil {
			w.OnlineLink = *o.OnlineLink
		}
		out = append(out, w)
	}
	return out
}
