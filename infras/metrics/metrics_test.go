package metrics_test

import (
	"testing"
	"time"

	"agenda/infras/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestSchedulingMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBooking("booked")
	m.ObserveBooking("booked")
	m.ObserveBooking("conflict")
	m.ObserveCancellation(true)
	m.ObserveCompletion("pix")
	m.ObserveSlotQuery(15 * time.Millisecond)

	assert.InDelta(t, 2.0, counterValue(t, reg, "agenda_appointments_bookings_total", "outcome", "booked"), 0.001)
	assert.InDelta(t, 1.0, counterValue(t, reg, "agenda_appointments_bookings_total", "outcome", "conflict"), 0.001)
	assert.InDelta(t, 1.0, counterValue(t, reg, "agenda_appointments_cancellations_total", "promoted", "true"), 0.001)
	assert.InDelta(t, 1.0, counterValue(t, reg, "agenda_appointments_completions_total", "payment_method", "pix"), 0.001)
}

func TestSchedulingMetrics_NilSafe(t *testing.T) {
	var m *metrics.Scheduling

	m.ObserveBooking("booked")
	m.ObserveCancellation(false)
	m.ObserveCompletion("money")
	m.ObserveSlotQuery(time.Second)
}
