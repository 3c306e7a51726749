package scheduling_test

import (
	"time"

	appointmentModel "agenda/internal/domains/appointment/model"
	catalogModel "agenda/internal/domains/catalog/model"
	"agenda/internal/scheduling"
	"agenda/shared/timezone"
)

var (
	monday  = timezone.NewDate(2024, time.January, 15)
	tuesday = monday.AddDays(1)
)

func ptr[T any](v T) *T {
	return &v
}

func testCatalog() scheduling.Catalog {
	return scheduling.NewCatalog([]catalogModel.Item{
		{ID: "s1", Name: "Haircut", Type: catalogModel.TypeService, Price: 50, DurationMinutes: 30},
		{ID: "s2", Name: "Beard", Type: catalogModel.TypeService, Price: 30, DurationMinutes: 60},
		{ID: "s3", Name: "Combo", Type: catalogModel.TypeService, Price: 70, DurationMinutes: 90, CommissionRate: ptr(20.0)},
		{ID: "p1", Name: "Pomade", Type: catalogModel.TypeProduct, Price: 40},
	})
}

func appointment(id, professionalID, serviceID string, date timezone.Date, start string, status appointmentModel.Status) appointmentModel.Appointment {
	return appointmentModel.Appointment{
		ID:             id,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
		Time:           start,
		Status:         status,
	}
}
