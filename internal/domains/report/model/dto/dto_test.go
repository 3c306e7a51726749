package dto_test

import (
	"strings"
	"testing"

	"agenda/internal/domains/report/model"
	"agenda/internal/domains/report/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) dto.CommissionReportResponse {
	t.Helper()

	period, err := model.ParsePeriod("2024-01")
	require.NoError(t, err)

	var res dto.CommissionReportResponse
	res.FromModels(period, []model.ProfessionalCommission{
		{ProfessionalID: "b1", Name: "Bruno", Appointments: 2, Sales: 120, Commission: 52, Breakdown: model.Breakdown{Service: 44, Product: 8}},
		{ProfessionalID: "b2", Name: "Silva, Jr", Appointments: 0},
	})

	return res
}

func TestCommissionReportResponse_FromModels(t *testing.T) {
	res := sampleReport(t)

	assert.Equal(t, "2024-01", res.Month)
	assert.Equal(t, "2024-01-01", res.From)
	assert.Equal(t, "2024-01-31", res.To)
	assert.InDelta(t, 120.0, res.TotalSales, 0.001)
	assert.InDelta(t, 52.0, res.TotalCommission, 0.001)
	require.Len(t, res.Professionals, 2)
	assert.InDelta(t, 8.0, res.Professionals[0].Breakdown.Product, 0.001)
}

func TestCommissionReportResponse_CSV(t *testing.T) {
	res := sampleReport(t)

	data, err := res.CSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "professional_id,name,appointments,sales,service_commission,product_commission,subscription_commission,commission", lines[0])
	assert.Equal(t, "b1,Bruno,2,120.00,44.00,8.00,0.00,52.00", lines[1])
	assert.Equal(t, `b2,"Silva, Jr",0,0.00,0.00,0.00,0.00,0.00`, lines[2])
}
