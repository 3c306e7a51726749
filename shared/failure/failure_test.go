package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"agenda/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "invalid date"}

	assert.Equal(t, "invalid date", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad time")), code: http.StatusBadRequest, message: "bad time"},
		{name: "bad request from string", err: failure.BadRequestFromString("bad date"), code: http.StatusBadRequest, message: "bad date"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
		{name: "not found", err: failure.NotFound("appointment not found"), code: http.StatusNotFound, message: "appointment not found"},
		{name: "conflict", err: failure.Conflict("slot taken"), code: http.StatusConflict, message: "slot taken"},
		{name: "forbidden", err: failure.Forbidden("denied"), code: http.StatusForbidden, message: "denied"},
		{name: "slot unavailable", err: failure.SlotUnavailableError, code: http.StatusConflict, message: "requested time slot is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.True(t, errors.As(tt.err, &f))
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure", input: failure.NotFound("x"), expected: http.StatusNotFound},
		{name: "wrapped failure", input: fmt.Errorf("booking: %w", failure.Conflict("x")), expected: http.StatusConflict},
		{name: "plain error", input: errors.New("boom"), expected: http.StatusInternalServerError},
		{name: "nil", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", failure.SlotUnavailableError)

	assert.True(t, failure.Is(err, http.StatusConflict))
	assert.False(t, failure.Is(err, http.StatusNotFound))
	assert.False(t, failure.Is(errors.New("plain"), http.StatusConflict))
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("invalid time format")
	err := failure.BadRequest(cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, errors.Unwrap(failure.Conflict("x")))
}

func TestFailure_WithReason(t *testing.T) {
	tagged := failure.SlotUnavailableError.WithReason(failure.ReasonBlocked)

	assert.Equal(t, failure.ReasonBlocked, tagged.Reason)
	assert.Equal(t, failure.ReasonSlotTaken, failure.SlotUnavailableError.Reason)
	assert.Equal(t, failure.SlotUnavailableError.Message, tagged.Message)
}

func TestFrom(t *testing.T) {
	fail, ok := failure.From(fmt.Errorf("create: %w", failure.ConflictWithReason("closed", failure.ReasonBlocked)))

	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, fail.Code)
	assert.Equal(t, failure.ReasonBlocked, fail.Reason)

	_, ok = failure.From(errors.New("plain"))
	assert.False(t, ok)
}
