package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("book: %w", Wrap(CodeCapacityExceeded, "session full", nil))

	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected errors.Is to match by code")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected match against a different code")
	}
	if CodeOf(err) != CodeCapacityExceeded {
		t.Fatalf("CodeOf = %s", CodeOf(err))
	}
}

func TestCodeOf_Unknown(t *testing.T) {
	if CodeOf(errors.New("boom")) != CodeUnknown {
		t.Fatalf("plain errors must map to UNKNOWN")
	}
}

func TestError_IncludesCause(t *testing.T) {
	err := StoreUnavailable("list sessions", errors.New("connection refused"))
	if err.Error() != "list sessions: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable")
	}
}

func TestCodeMappings(t *testing.T) {
	cases := []struct {
		code     Code
		grpcCode codes.Code
		http     int
	}{
		{CodeInvalidArgument, codes.InvalidArgument, http.StatusBadRequest},
		{CodeNotFound, codes.NotFound, http.StatusNotFound},
		{CodeConflict, codes.Aborted, http.StatusConflict},
		{CodeCapacityExceeded, codes.ResourceExhausted, http.StatusConflict},
		{CodeNotBookable, codes.FailedPrecondition, http.StatusUnprocessableEntity},
		{CodeInvalidState, codes.FailedPrecondition, http.StatusConflict},
		{CodeStoreUnavailable, codes.Unavailable, http.StatusServiceUnavailable},
		{CodeUnauthenticated, codes.Unauthenticated, http.StatusUnauthorized},
		{CodeForbidden, codes.PermissionDenied, http.StatusForbidden},
		{CodeUnknown, codes.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.grpcCode {
			t.Fatalf("%s: GRPCCode = %v, want %v", tc.code, got, tc.grpcCode)
		}
		if got := tc.code.HTTPStatus(); got != tc.http {
			t.Fatalf("%s: HTTPStatus = %d, want %d", tc.code, got, tc.http)
		}
	}
}

func TestToGRPCStatus_AttachesErrorInfo(t *testing.T) {
	err := ToGRPCStatus(NotFound("schedule not found"))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected grpc status")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v", st.Code())
	}
	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if i, ok := d.(*errdetails.ErrorInfo); ok {
			info = i
		}
	}
	if info == nil || info.GetReason() != string(CodeNotFound) || info.GetDomain() != Domain {
		t.Fatalf("missing or wrong ErrorInfo: %+v", info)
	}

	back := FromGRPCStatus(err)
	if !errors.Is(back, ErrNotFound) {
		t.Fatalf("FromGRPCStatus lost the code: %v", back)
	}
}

func TestToGRPCStatus_PassesThroughStatus(t *testing.T) {
	in := status.Error(codes.Canceled, "client went away")
	if out := ToGRPCStatus(in); out != in {
		t.Fatalf("expected existing status to pass through")
	}
	if ToGRPCStatus(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}
