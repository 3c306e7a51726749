package dto

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"agenda/internal/domains/report/model"
)

type CommissionReportRequest struct {
	Month string `json:"month" validate:"required,month"`
}

type BreakdownResponse struct {
	Service      float64 `json:"service"`
	Product      float64 `json:"product"`
	Subscription float64 `json:"subscription"`
}

type ProfessionalCommissionResponse struct {
	ProfessionalID string            `json:"professional_id"`
	Name           string            `json:"name"`
	Appointments   int               `json:"appointments"`
	Sales          float64           `json:"sales"`
	Commission     float64           `json:"commission"`
	Breakdown      BreakdownResponse `json:"breakdown"`
}

func (r *ProfessionalCommissionResponse) FromModel(model model.ProfessionalCommission) {
	r.ProfessionalID = model.ProfessionalID
	r.Name = model.Name
	r.Appointments = model.Appointments
	r.Sales = model.Sales
	r.Commission = model.Commission
	r.Breakdown = BreakdownResponse{
		Service:      model.Breakdown.Service,
		Product:      model.Breakdown.Product,
		Subscription: model.Breakdown.Subscription,
	}
}

type CommissionReportResponse struct {
	Month           string                           `json:"month"`
	From            string                           `json:"from"`
	To              string                           `json:"to"`
	Professionals   []ProfessionalCommissionResponse `json:"professionals"`
	TotalSales      float64                          `json:"total_sales"`
	TotalCommission float64                          `json:"total_commission"`
}

func (r *CommissionReportResponse) FromModels(period model.Period, rows []model.ProfessionalCommission) {
	r.Month = period.Month
	r.From = period.From.Key()
	r.To = period.To.Key()

	r.Professionals = make([]ProfessionalCommissionResponse, len(rows))
	for i, row := range rows {
		r.Professionals[i].FromModel(row)
		r.TotalSales += row.Sales
		r.TotalCommission += row.Commission
	}
}

var csvHeader = []string{
	"professional_id", "name", "appointments", "sales",
	"service_commission", "product_commission", "subscription_commission", "commission",
}

// CSV renders one line per professional after a header line.
func (r *CommissionReportResponse) CSV() ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range r.Professionals {
		record := []string{
			row.ProfessionalID,
			row.Name,
			strconv.Itoa(row.Appointments),
			money(row.Sales),
			money(row.Breakdown.Service),
			money(row.Breakdown.Product),
			money(row.Breakdown.Subscription),
			money(row.Commission),
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func money(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

type ExportResponse struct {
	Month    string `json:"month"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
