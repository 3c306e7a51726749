package scheduling

import (
	"sort"
	"time"

	appointmentModel "agenda/internal/domains/appointment/model"
	waitlistModel "agenda/internal/domains/waitlist/model"
	"agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type AvailabilityFunc func(professionalID string, date timezone.Date, start string, duration int) bool

// Promotion pairs the waitlist entry that won a freed slot with the appointment booked for it.
type Promotion struct {
	Entry       waitlistModel.Entry
	Appointment appointmentModel.Appointment
}

// PromoteAfterCancellation offers the slot of the cancelled appointment to the waitlist of
// that date in arrival order and books the first entry that fits. At most one entry wins.
func PromoteAfterCancellation(
	cancelled appointmentModel.Appointment,
	entries []waitlistModel.Entry,
	catalog Catalog,
	available AvailabilityFunc,
	now time.Time,
) (Promotion, bool) {
	candidates := make([]waitlistModel.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date.Equal(cancelled.Date) {
			candidates = append(candidates, entry)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})

	for _, entry := range candidates {
		if !entry.Accepts(cancelled.ProfessionalID) {
			continue
		}

		item, ok := catalog.Lookup(entry.ServiceID)
		if !ok {
			continue
		}

		if !available(cancelled.ProfessionalID, cancelled.Date, cancelled.Time, catalog.DurationOf(entry.ServiceID)) {
			continue
		}

		return Promotion{
			Entry: entry,
			Appointment: appointmentModel.Appointment{
				ID:             uuid.NewString(),
				ServiceID:      entry.ServiceID,
				ProfessionalID: cancelled.ProfessionalID,
				Date:           cancelled.Date,
				Time:           cancelled.Time,
				ClientName:     entry.ClientName,
				ClientPhone:    entry.ClientPhone,
				Status:         appointmentModel.StatusConfirmed,
				TotalPrice:     item.Price,
				Notes:          appointmentModel.WaitlistNote,
				Metadata: model.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
				},
			},
		}, true
	}

	return Promotion{}, false
}
