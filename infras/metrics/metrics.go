package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "agenda"

// Scheduling exposes counters and histograms for booking flows. A nil *Scheduling is a no-op.
type Scheduling struct {
	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal *prometheus.CounterVec
	completionsTotal   *prometheus.CounterVec
	slotQueryLatency   prometheus.Histogram
}

func New(reg prometheus.Registerer) *Scheduling {
	m := &Scheduling{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		cancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "cancellations_total",
			Help:      "Cancellations, labelled by whether a waitlist entry was promoted",
		}, []string{"promoted"}),
		completionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "completions_total",
			Help:      "Completed appointments by payment method",
		}, []string{"payment_method"}),
		slotQueryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "slot_query_seconds",
			Help:      "Latency of free slot enumeration",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.cancellationsTotal, m.completionsTotal, m.slotQueryLatency)

	return m
}

func (m *Scheduling) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *Scheduling) ObserveCancellation(promoted bool) {
	if m == nil {
		return
	}
	m.cancellationsTotal.WithLabelValues(strconv.FormatBool(promoted)).Inc()
}

func (m *Scheduling) ObserveCompletion(paymentMethod string) {
	if m == nil {
		return
	}
	m.completionsTotal.WithLabelValues(paymentMethod).Inc()
}

func (m *Scheduling) ObserveSlotQuery(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.slotQueryLatency.Observe(elapsed.Seconds())
}
