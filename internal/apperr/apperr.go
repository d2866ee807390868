package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes into the response categories exposed to callers.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindEligibilityDenied Kind = "eligibility_denied"
	KindUnauthorized      Kind = "unauthorized"
)

type Code string

const (
	CodeValidation          Code = "ValidationError"
	CodeMemberNotFound      Code = "MemberNotFound"
	CodeScheduleNotFound    Code = "ScheduleNotFound"
	CodePaymentNotFound     Code = "PaymentNotFound"
	CodeBookingNotFound     Code = "BookingNotFound"
	CodeShiftNotFound       Code = "ShiftNotFound"
	CodeAttendanceNotFound  Code = "AttendanceNotFound"
	CodeAlreadyBooked       Code = "AlreadyBooked"
	CodeAlreadyCheckedOut   Code = "AlreadyCheckedOut"
	CodeClassFull           Code = "ClassFull"
	CodeSessionLimitReached Code = "SessionLimitReached"
	CodePlanExpired         Code = "PlanExpired"
	CodeNoActivePlan        Code = "NoActivePlan"
	CodeUnauthorized        Code = "Unauthorized"
)

// Error is the single error shape returned by services. Two errors are
// considered equal by errors.Is when their codes match, so a message built at
// the point of detection still matches the package sentinel.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(kind Kind, code Code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap returns a copy of base carrying cause.
func Wrap(base *Error, cause error) *Error {
	return &Error{Kind: base.Kind, Code: base.Code, Message: base.Message, Err: cause}
}

func Validation(message string) *Error {
	return New(KindValidation, CodeValidation, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, CodeUnauthorized, message)
}

var (
	ErrValidation         = Validation("validation failed")
	ErrMemberNotFound     = New(KindNotFound, CodeMemberNotFound, "member profile not found for this user")
	ErrScheduleNotFound   = New(KindNotFound, CodeScheduleNotFound, "class schedule not found")
	ErrPaymentNotFound    = New(KindNotFound, CodePaymentNotFound, "payment / invoice not found")
	ErrBookingNotFound    = New(KindNotFound, CodeBookingNotFound, "no booking found")
	ErrShiftNotFound      = New(KindNotFound, CodeShiftNotFound, "shift not found")
	ErrAttendanceNotFound = New(KindNotFound, CodeAttendanceNotFound, "attendance record not found")
	ErrAlreadyBooked      = New(KindConflict, CodeAlreadyBooked, "already booked for this class")
	ErrAlreadyCheckedOut  = New(KindConflict, CodeAlreadyCheckedOut, "member already checked out")
	ErrClassFull          = New(KindCapacityExceeded, CodeClassFull, "class is full")
	ErrSessionLimit       = New(KindEligibilityDenied, CodeSessionLimitReached, "session limit reached")
	ErrPlanExpired        = New(KindEligibilityDenied, CodePlanExpired, "your plan has expired")
	ErrNoActivePlan       = New(KindEligibilityDenied, CodeNoActivePlan, "no active membership plan found")
	ErrUnauthorized       = Unauthorized("unauthorized")
)

func SessionLimitReached(booked, total int) *Error {
	return New(KindEligibilityDenied, CodeSessionLimitReached,
		fmt.Sprintf("session limit reached: you have used %d/%d sessions", booked, total))
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return ""
}

// HTTPStatus maps an error to the response status used by handlers.
// Anything that is not an *Error is an internal failure.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindConflict, KindCapacityExceeded, KindEligibilityDenied:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
