package scheduling_test

import (
	"testing"
	"time"

	appointmentModel "agenda/internal/domains/appointment/model"
	waitlistModel "agenda/internal/domains/waitlist/model"
	"agenda/internal/scheduling"
	"agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, professionalID, serviceID string, date timezone.Date, createdAt time.Time) waitlistModel.Entry {
	return waitlistModel.Entry{
		ID:             id,
		ClientName:     "client " + id,
		ClientPhone:    "555-" + id,
		ServiceID:      serviceID,
		ProfessionalID: professionalID,
		Date:           date,
		Metadata:       model.Metadata{CreatedAt: createdAt},
	}
}

func TestPromoteAfterCancellation(t *testing.T) {
	base := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	now := base.Add(24 * time.Hour)
	cancelled := appointment("a1", "b1", "s1", monday, "10:00", appointmentModel.StatusCancelled)
	always := func(string, timezone.Date, string, int) bool { return true }

	tests := []struct {
		name      string
		entries   []waitlistModel.Entry
		available scheduling.AvailabilityFunc
		wantEntry string
		wantOK    bool
	}{
		{
			name: "earliest entry wins",
			entries: []waitlistModel.Entry{
				entry("w2", "b1", "s1", monday, base.Add(time.Minute)),
				entry("w1", "b1", "s1", monday, base),
			},
			available: always,
			wantEntry: "w1",
			wantOK:    true,
		},
		{
			name: "ties keep insertion order",
			entries: []waitlistModel.Entry{
				entry("w1", "b1", "s1", monday, base),
				entry("w2", "b1", "s1", monday, base),
			},
			available: always,
			wantEntry: "w1",
			wantOK:    true,
		},
		{
			name: "any professional accepted",
			entries: []waitlistModel.Entry{
				entry("w1", "b2", "s1", monday, base),
				entry("w2", "any", "s1", monday, base.Add(time.Minute)),
			},
			available: always,
			wantEntry: "w2",
			wantOK:    true,
		},
		{
			name: "other dates ignored",
			entries: []waitlistModel.Entry{
				entry("w1", "b1", "s1", tuesday, base),
			},
			available: always,
		},
		{
			name: "unknown service skipped",
			entries: []waitlistModel.Entry{
				entry("w1", "b1", "missing", monday, base),
				entry("w2", "b1", "s1", monday, base.Add(time.Minute)),
			},
			available: always,
			wantEntry: "w2",
			wantOK:    true,
		},
		{
			name: "service too long for the gap",
			entries: []waitlistModel.Entry{
				entry("w1", "b1", "s2", monday, base),
				entry("w2", "b1", "s1", monday, base.Add(time.Minute)),
			},
			available: func(_ string, _ timezone.Date, _ string, duration int) bool { return duration <= 30 },
			wantEntry: "w2",
			wantOK:    true,
		},
		{
			name:      "empty waitlist",
			available: always,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotion, ok := scheduling.PromoteAfterCancellation(cancelled, tt.entries, testCatalog(), tt.available, now)

			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEntry, promotion.Entry.ID)
		})
	}
}

func TestPromoteAfterCancellation_Appointment(t *testing.T) {
	now := time.Date(2024, time.January, 14, 18, 0, 0, 0, time.UTC)
	cancelled := appointment("a1", "b1", "s2", monday, "10:00", appointmentModel.StatusCancelled)
	entries := []waitlistModel.Entry{entry("w1", "any", "s1", monday, now.Add(-time.Hour))}

	promotion, ok := scheduling.PromoteAfterCancellation(cancelled, entries, testCatalog(),
		func(string, timezone.Date, string, int) bool { return true }, now)

	require.True(t, ok)

	appt := promotion.Appointment
	assert.NotEmpty(t, appt.ID)
	assert.NotEqual(t, cancelled.ID, appt.ID)
	assert.Equal(t, "b1", appt.ProfessionalID)
	assert.Equal(t, "s1", appt.ServiceID)
	assert.True(t, appt.Date.Equal(monday))
	assert.Equal(t, "10:00", appt.Time)
	assert.Equal(t, "client w1", appt.ClientName)
	assert.Equal(t, "555-w1", appt.ClientPhone)
	assert.Equal(t, appointmentModel.StatusConfirmed, appt.Status)
	assert.InDelta(t, 50.0, appt.TotalPrice, 0.001)
	assert.Equal(t, appointmentModel.WaitlistNote, appt.Notes)
	assert.Equal(t, now, appt.CreatedAt)
}

func TestPromoteAfterCancellation_OnePerCancellation(t *testing.T) {
	base := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	cancelled := appointment("a1", "b1", "s1", monday, "10:00", appointmentModel.StatusConfirmed)
	snapshot := scheduling.Snapshot{
		Appointments: []appointmentModel.Appointment{cancelled},
		Catalog:      testCatalog(),
	}.WithCancelled("a1")

	entries := []waitlistModel.Entry{
		entry("w1", "b1", "s1", monday, base),
		entry("w2", "b1", "s1", monday, base.Add(time.Minute)),
	}

	promotion, ok := scheduling.PromoteAfterCancellation(cancelled, entries, snapshot.Catalog, snapshot.Checker(), base)
	require.True(t, ok)
	assert.Equal(t, "w1", promotion.Entry.ID)

	snapshot.Appointments = append(snapshot.Appointments, promotion.Appointment)

	_, ok = scheduling.PromoteAfterCancellation(cancelled, entries[1:], snapshot.Catalog, snapshot.Checker(), base)
	assert.False(t, ok)
}
