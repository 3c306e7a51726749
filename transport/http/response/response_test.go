package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/shared/failure"
	"agenda/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its message",
			err:      failure.NotFound("appointment not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"appointment not found"}`,
		},
		{
			name:     "reason is surfaced",
			err:      fmt.Errorf("create: %w", failure.SlotUnavailableError),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"requested time slot is not available","reason":"slot_taken"}`,
		},
		{
			name:     "unclassified error is hidden",
			err:      errors.New("pq: relation \"appointments\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithFile(rec, "text/csv", "commissions.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="commissions.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", rec.Body.String())
}
