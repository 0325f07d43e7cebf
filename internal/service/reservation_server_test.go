package service

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	reservationv1 "github.com/GulfDevInnovations/royal-academy/internal/api/reservation/v1"
	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/testutil"
)

func dialReservation(t *testing.T, a *testutil.Academy) reservationv1.ReservationServiceClient {
	t.Helper()
	return reservationv1.NewReservationServiceClient(dialConn(t, a))
}

func dialConn(t *testing.T, a *testutil.Academy) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	reservationv1.RegisterReservationServiceServer(srv, NewReservationServer(a.Store))
	reflection.Register(srv)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestReservationServer_ListMonthAndBook(t *testing.T) {
	a := testutil.NewAcademy(t)
	client := dialReservation(t, a)
	ctx := context.Background()

	month, err := client.ListMonth(ctx, &reservationv1.ListMonthRequest{Year: 2025, Month: 2})
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	if len(month.Occurrences) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(month.Occurrences))
	}
	first := month.Occurrences[0]
	if !first.IsVirtual || first.SubClassName != "Ballet for Kids" || first.TeacherName != "Sara Al-Balushi" {
		t.Fatalf("unexpected occurrence: %+v", first)
	}
	if first.RoomName != "Studio A" || first.LocationName != "Royal Academy Muscat" || first.Currency != "OMR" {
		t.Fatalf("display fields missing: %+v", first)
	}

	booked, err := client.Book(ctx, &reservationv1.BookRequest{
		OccurrenceId: first.Id,
		ScheduleId:   first.ScheduleId,
		SessionDate:  first.SessionDate,
		StudentId:    a.Student.ID.String(),
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !booked.PaymentNeeded || booked.BookingId == "" {
		t.Fatalf("unexpected book response: %+v", booked)
	}

	day, err := client.ListDay(ctx, &reservationv1.ListDayRequest{Date: first.SessionDate})
	if err != nil {
		t.Fatalf("ListDay: %v", err)
	}
	if day.TotalCount != 1 || day.Occurrences[0].IsVirtual || day.Occurrences[0].Id != booked.SessionId {
		t.Fatalf("booked slot should now be real: %+v", day.Occurrences)
	}
	if day.Occurrences[0].SpotsLeft != 11 {
		t.Fatalf("spots left = %d, want 11", day.Occurrences[0].SpotsLeft)
	}

	confirmed, err := client.ConfirmPayment(ctx, &reservationv1.ConfirmPaymentRequest{BookingId: booked.BookingId})
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	if confirmed.InvoiceNo == "" {
		t.Fatalf("missing invoice number")
	}

	list, err := client.ListBookings(ctx, &reservationv1.ListBookingsRequest{StudentId: a.Student.ID.String()})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if list.TotalCount != 1 || list.Bookings[0].Status != "CONFIRMED" || list.Bookings[0].PaymentStatus != "PAID" {
		t.Fatalf("unexpected bookings: %+v", list.Bookings)
	}
}

func TestReservationServer_ErrorsCarryDomainCodes(t *testing.T) {
	a := testutil.NewAcademy(t)
	client := dialReservation(t, a)
	ctx := context.Background()

	_, err := client.ListMonth(ctx, &reservationv1.ListMonthRequest{Year: 2025, Month: 12})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("month 12: code = %v", status.Code(err))
	}

	_, err = client.Book(ctx, &reservationv1.BookRequest{
		OccurrenceId: "virtual:" + a.Monday.ID.String() + ":2025-03-04",
		StudentId:    a.Student.ID.String(),
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("tuesday: code = %v", status.Code(err))
	}
	if !errors.Is(apperrors.FromGRPCStatus(err), apperrors.ErrNotBookable) {
		t.Fatalf("error info lost: %v", err)
	}

	_, err = client.Book(ctx, &reservationv1.BookRequest{OccurrenceId: uuid.NewString(), StudentId: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad student id: code = %v", status.Code(err))
	}

	_, err = client.CancelSlot(ctx, &reservationv1.CancelSlotRequest{ScheduleId: uuid.NewString(), Date: "2025-03-03"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown schedule: code = %v", status.Code(err))
	}
}

func TestReservationServer_SlotManagement(t *testing.T) {
	a := testutil.NewAcademy(t)
	client := dialReservation(t, a)
	ctx := context.Background()

	overridden, err := client.OverrideSlot(ctx, &reservationv1.OverrideSlotRequest{
		ScheduleId:  a.Monday.ID.String(),
		Date:        "2025-03-17",
		StartTime:   "17:00",
		EndTime:     "18:00",
		MaxCapacity: wrapperspb.Int32(3),
	})
	if err != nil {
		t.Fatalf("OverrideSlot: %v", err)
	}
	if overridden.Status != "ACTIVE" || overridden.StartTime != "17:00" {
		t.Fatalf("unexpected override: %+v", overridden)
	}

	cancelled, err := client.CancelSlot(ctx, &reservationv1.CancelSlotRequest{ScheduleId: a.Monday.ID.String(), Date: "2025-03-17"})
	if err != nil {
		t.Fatalf("CancelSlot: %v", err)
	}
	if cancelled.SessionId != overridden.SessionId || cancelled.CancelledBookings != 0 {
		t.Fatalf("unexpected cancel: %+v", cancelled)
	}

	month, err := client.ListMonth(ctx, &reservationv1.ListMonthRequest{Year: 2025, Month: 2})
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	for _, o := range month.Occurrences {
		if o.SessionDate == "2025-03-17" {
			t.Fatalf("cancelled slot listed: %+v", o)
		}
	}
}

func TestReservationServer_PlainInvokeUsesProtoCodec(t *testing.T) {
	a := testutil.NewAcademy(t)
	conn := dialConn(t, a)

	out := &reservationv1.ListMonthResponse{}
	err := conn.Invoke(context.Background(), reservationv1.ReservationService_ListMonth_FullMethodName,
		&reservationv1.ListMonthRequest{Year: 2025, Month: 2}, out)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(out.GetOccurrences()) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(out.GetOccurrences()))
	}
}

func TestReservationServer_ListedByReflection(t *testing.T) {
	a := testutil.NewAcademy(t)
	conn := dialConn(t, a)

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("ServerReflectionInfo: %v", err)
	}
	err = stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: reservationv1.ReservationService_ServiceDesc.ServiceName,
		},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if errResp := resp.GetErrorResponse(); errResp != nil {
		t.Fatalf("reflection error: %s", errResp.GetErrorMessage())
	}
	if len(resp.GetFileDescriptorResponse().GetFileDescriptorProto()) == 0 {
		t.Fatalf("no file descriptor returned for %s", reservationv1.ReservationService_ServiceDesc.ServiceName)
	}
	_ = stream.CloseSend()
}
