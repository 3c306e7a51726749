package model_test

import (
	"testing"

	catalogModel "agenda/internal/domains/catalog/model"
	"agenda/internal/domains/report/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		month    string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{month: "2024-01", wantFrom: "2024-01-01", wantTo: "2024-01-31"},
		{month: "2024-02", wantFrom: "2024-02-01", wantTo: "2024-02-29"},
		{month: "2023-02", wantFrom: "2023-02-01", wantTo: "2023-02-28"},
		{month: "2024-12", wantFrom: "2024-12-01", wantTo: "2024-12-31"},
		{month: "2024-13", wantErr: true},
		{month: "01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			period, err := model.ParsePeriod(tt.month)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, period.From.Key())
			assert.Equal(t, tt.wantTo, period.To.Key())
		})
	}
}

func TestBreakdown_Add(t *testing.T) {
	var b model.Breakdown

	b.Add(catalogModel.CategoryService, 25)
	b.Add(catalogModel.CategoryProduct, 8)
	b.Add(catalogModel.CategorySubscription, 3)
	b.Add(catalogModel.Category("legacy"), 1)

	assert.InDelta(t, 26.0, b.Service, 0.001)
	assert.InDelta(t, 8.0, b.Product, 0.001)
	assert.InDelta(t, 3.0, b.Subscription, 0.001)
}
