package dto_test

import (
	"testing"
	"time"

	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAppointmentRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.BookAppointmentRequest
		anonymous  bool
		wantStatus model.Status
		wantErr    bool
	}{
		{
			name:       "defaults to pending",
			req:        dto.BookAppointmentRequest{ServiceID: "s1", ProfessionalID: "b1", Date: "2024-01-15", Time: "10:00", ClientName: "Ana", ClientPhone: "555"},
			wantStatus: model.StatusPending,
		},
		{
			name:       "confirmed on request",
			req:        dto.BookAppointmentRequest{ServiceID: "s1", ProfessionalID: "b1", Date: "2024-01-15", Time: "10:00", Status: "confirmed"},
			wantStatus: model.StatusConfirmed,
		},
		{
			name:       "anonymous caller cannot skip confirmation",
			req:        dto.BookAppointmentRequest{ServiceID: "s1", ProfessionalID: "b1", Date: "2024-01-15", Time: "10:00", Status: "confirmed"},
			anonymous:  true,
			wantStatus: model.StatusPending,
		},
		{
			name:    "bad date",
			req:     dto.BookAppointmentRequest{Date: "15/01/2024", Time: "10:00"},
			wantErr: true,
		},
		{
			name:    "bad time",
			req:     dto.BookAppointmentRequest{Date: "2024-01-15", Time: "25:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := "admin"
			if tt.anonymous {
				user = ""
			}

			appt, err := tt.req.ToModel(user, 50)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, appt.ID)
			assert.Equal(t, tt.wantStatus, appt.Status)
			assert.Equal(t, timezone.NewDate(2024, time.January, 15).Key(), appt.Date.Key())
			assert.InDelta(t, 50.0, appt.TotalPrice, 0.001)
			assert.Equal(t, user, appt.CreatedBy)
		})
	}
}

func TestAppointmentResponse_FromModel(t *testing.T) {
	final := 45.0

	var res dto.AppointmentResponse
	res.FromModel(model.Appointment{
		ID:         "a1",
		Date:       timezone.NewDate(2024, time.January, 15),
		Time:       "10:00",
		Status:     model.StatusCompleted,
		FinalPrice: &final,
	})

	assert.Equal(t, "2024-01-15", res.Date)
	assert.Equal(t, "completed", res.Status)
	require.NotNil(t, res.FinalPrice)
	assert.InDelta(t, 45.0, *res.FinalPrice, 0.001)
}
