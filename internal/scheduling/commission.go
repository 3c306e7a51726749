package scheduling

import (
	"fmt"
	"math"

	appointmentModel "agenda/internal/domains/appointment/model"
	catalogModel "agenda/internal/domains/catalog/model"
	professionalModel "agenda/internal/domains/professional/model"
)

// Commission is the professional's share of a completed appointment. An item override above
// zero wins over the professional's rate for the item category.
func Commission(
	appt appointmentModel.Appointment,
	item catalogModel.Item,
	professional professionalModel.Professional,
) (float64, error) {
	rate, ok := item.CommissionOverride()
	if !ok {
		var err error

		rate, err = professional.Rates().For(item.Category())
		if err != nil {
			return 0, fmt.Errorf("failed to resolve commission rate: %w", err)
		}
	}

	return roundCents(appt.ChargedPrice() * rate / 100), nil
}

// FinalPrice applies checkout adjustments. The discount never takes the price below zero;
// the tip is added on top.
func FinalPrice(total, extras, discount, tip float64) float64 {
	return roundCents(math.Max(0, total+extras-discount) + tip)
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
