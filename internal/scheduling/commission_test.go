package scheduling_test

import (
	"testing"

	appointmentModel "agenda/internal/domains/appointment/model"
	catalogModel "agenda/internal/domains/catalog/model"
	professionalModel "agenda/internal/domains/professional/model"
	"agenda/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommission(t *testing.T) {
	professional := professionalModel.Professional{ID: "b1", ServiceRate: 50, ProductRate: 20, SubscriptionRate: 10}
	catalog := testCatalog()

	tests := []struct {
		name    string
		appt    appointmentModel.Appointment
		item    catalogModel.Item
		want    float64
		wantErr error
	}{
		{
			name: "service rate on total",
			appt: appointmentModel.Appointment{TotalPrice: 50},
			item: catalog["s1"],
			want: 25,
		},
		{
			name: "override wins over professional rate",
			appt: appointmentModel.Appointment{TotalPrice: 100},
			item: catalog["s3"],
			want: 20,
		},
		{
			name: "zero override falls back",
			appt: appointmentModel.Appointment{TotalPrice: 100},
			item: catalogModel.Item{Type: catalogModel.TypeService, CommissionRate: ptr(0.0)},
			want: 50,
		},
		{
			name: "final price preferred",
			appt: appointmentModel.Appointment{TotalPrice: 50, FinalPrice: ptr(65.5)},
			item: catalog["s1"],
			want: 32.75,
		},
		{
			name: "product rate",
			appt: appointmentModel.Appointment{TotalPrice: 40},
			item: catalog["p1"],
			want: 8,
		},
		{
			name: "subscription rate",
			appt: appointmentModel.Appointment{TotalPrice: 99.9},
			item: catalogModel.Item{Type: string(catalogModel.CategorySubscription)},
			want: 9.99,
		},
		{
			name:    "unknown category",
			appt:    appointmentModel.Appointment{TotalPrice: 40},
			item:    catalogModel.Item{Type: "voucher"},
			wantErr: professionalModel.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheduling.Commission(tt.appt, tt.item, professional)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name                         string
		total, extras, discount, tip float64
		want                         float64
	}{
		{name: "plain", total: 50, want: 50},
		{name: "extras and tip", total: 50, extras: 40, tip: 10, want: 100},
		{name: "discount", total: 50, discount: 15, want: 35},
		{name: "discount floors at zero before tip", total: 50, discount: 80, tip: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scheduling.FinalPrice(tt.total, tt.extras, tt.discount, tt.tip), 0.001)
		})
	}
}

func TestCatalog_DurationOf(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, 60, catalog.DurationOf("s2"))
	assert.Equal(t, scheduling.DefaultDuration, catalog.DurationOf("p1"))
	assert.Equal(t, scheduling.DefaultDuration, catalog.DurationOf("missing"))
}
