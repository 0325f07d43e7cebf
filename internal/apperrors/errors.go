package apperrors

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain attached to gRPC statuses.
const Domain = "royalacademy.om"

// Error is a domain error carrying a code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so errors.Is(err, ErrNotFound) works on wrapped
// errors too.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument  = New(CodeInvalidArgument, "invalid argument")
	ErrNotFound         = New(CodeNotFound, "not found")
	ErrConflict         = New(CodeConflict, "conflict")
	ErrCapacityExceeded = New(CodeCapacityExceeded, "class is full")
	ErrNotBookable      = New(CodeNotBookable, "not bookable")
	ErrInvalidState     = New(CodeInvalidState, "invalid state")
	ErrStoreUnavailable = New(CodeStoreUnavailable, "store unavailable")
	ErrUnauthenticated  = New(CodeUnauthenticated, "unauthenticated")
	ErrForbidden        = New(CodeForbidden, "forbidden")
)

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotBookable(message string) *Error { return New(CodeNotBookable, message) }

func InvalidState(message string) *Error { return New(CodeInvalidState, message) }

func Forbidden(message string) *Error { return New(CodeForbidden, message) }

// StoreUnavailable wraps a persistence failure.
func StoreUnavailable(message string, cause error) *Error {
	return Wrap(CodeStoreUnavailable, message, cause)
}

// CodeOf returns the code of the first *Error in err's chain, CodeUnknown otherwise.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// ToGRPCStatus converts err to a gRPC status error with an ErrorInfo detail.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := CodeOf(err)
	st := status.New(code.GRPCCode(), err.Error())
	withDetails, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(code),
		Domain: Domain,
	})
	if derr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCStatus rebuilds a domain error from a status produced by ToGRPCStatus.
func FromGRPCStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return err
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return Wrap(Code(info.GetReason()), st.Message(), err)
		}
	}
	return err
}
