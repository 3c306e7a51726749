// Package failure carries HTTP-aware domain errors from services up to the
// response writer.
package failure

import (
	"errors"
	"net/http"
)

// Machine-readable reasons attached to scheduling conflicts.
const (
	ReasonSlotTaken = "slot_taken"
	ReasonBlocked   = "blocked"
)

// Failure pairs a message with the HTTP status it should be answered with.
// Reason is optional and lets clients branch without parsing Message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`

	cause error
}

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "role is not allowed to perform this action"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "resource belongs to another professional"}
	SlotUnavailableError    = &Failure{Code: http.StatusConflict, Message: "requested time slot is not available", Reason: ReasonSlotTaken}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// WithReason returns a copy of e tagged with reason. Package-level failures stay untouched.
func (e *Failure) WithReason(reason string) *Failure {
	cp := *e
	cp.Reason = reason

	return &cp
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// InternalError keeps err reachable through errors.Is/As; the message is still err's.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// NotFound reports a missing entity; msg is sent as is.
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// Conflict is used for state clashes such as an occupied slot or a finished appointment.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// ConflictWithReason is Conflict plus a machine-readable reason.
func ConflictWithReason(msg, reason string) error {
	return &Failure{Code: http.StatusConflict, Message: msg, Reason: reason}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// From extracts the first Failure in err's chain.
func From(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}

// GetCode answers 500 for anything that is not a Failure.
func GetCode(err error) int {
	if fail, ok := From(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func Is(err error, code int) bool {
	fail, ok := From(err)

	return ok && fail.Code == code
}
