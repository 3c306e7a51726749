package dto

import (
	"fmt"

	"agenda/internal/domains/appointment/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ServiceID       string `json:"service_id"        validate:"required,max=64"`
	ProfessionalID  string `json:"professional_id"   validate:"required,max=64"`
	Date            string `json:"date"              validate:"required,datekey"`
	Time            string `json:"time"              validate:"required,hhmm"`
	ClientName      string `json:"client_name"       validate:"required,max=100"`
	ClientPhone     string `json:"client_phone"      validate:"required,max=30"`
	ClientAccountID string `json:"client_account_id" validate:"omitempty,max=64"`
	Status          string `json:"status"            validate:"omitempty,oneof=pending confirmed"`
	Notes           string `json:"notes"             validate:"omitempty,max=500"`
}

func (b *BookAppointmentRequest) ToModel(user string, price float64) (model.Appointment, error) {
	date, err := timezone.ParseDateValue(b.Date)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to parse appointment date: %w", err)
	}

	if _, err = timezone.ToMinutes(b.Time); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to parse appointment time: %w", err)
	}

	// Anonymous bookings always wait for an operator to confirm them.
	status := model.StatusPending
	if b.Status != "" && user != "" {
		status = model.Status(b.Status)
	}

	now := timezone.Now()

	return model.Appointment{
		ID:              uuid.NewString(),
		ServiceID:       b.ServiceID,
		ProfessionalID:  b.ProfessionalID,
		Date:            date,
		Time:            b.Time,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		ClientAccountID: b.ClientAccountID,
		Status:          status,
		TotalPrice:      price,
		Notes:           b.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type SlotsRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required,max=64"`
	ServiceID      string `json:"service_id"      validate:"required,max=64"`
	Date           string `json:"date"            validate:"required,datekey"`
}

type SlotsResponse struct {
	ProfessionalID    string   `json:"professional_id"`
	ServiceID         string   `json:"service_id"`
	Date              string   `json:"date"`
	DurationMinutes   int      `json:"duration_minutes"`
	Slots             []string `json:"slots"`
	WaitlistSuggested bool     `json:"waitlist_suggested"`
}

type CompleteAppointmentRequest struct {
	Extras        []string `json:"extras"         validate:"omitempty,dive,required,max=64"`
	Discount      float64  `json:"discount"       validate:"gte=0"`
	Tip           float64  `json:"tip"            validate:"gte=0"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=money pix card other"`
}

type AppointmentResponse struct {
	ID              string   `json:"id"`
	ServiceID       string   `json:"service_id"`
	ProfessionalID  string   `json:"professional_id"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	ClientName      string   `json:"client_name"`
	ClientPhone     string   `json:"client_phone"`
	ClientAccountID string   `json:"client_account_id,omitempty"`
	Status          string   `json:"status"`
	TotalPrice      float64  `json:"total_price"`
	FinalPrice      *float64 `json:"final_price,omitempty"`
	Discount        *float64 `json:"discount,omitempty"`
	Tip             *float64 `json:"tip,omitempty"`
	PaymentMethod   string   `json:"payment_method,omitempty"`
	Notes           string   `json:"notes"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.ProfessionalID = model.ProfessionalID
	r.Date = model.Date.Key()
	r.Time = model.Time
	r.ClientName = model.ClientName
	r.ClientPhone = model.ClientPhone
	r.ClientAccountID = model.ClientAccountID
	r.Status = string(model.Status)
	r.TotalPrice = model.TotalPrice
	r.FinalPrice = model.FinalPrice
	r.Discount = model.Discount
	r.Tip = model.Tip
	r.PaymentMethod = model.PaymentMethod
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type CancelAppointmentResponse struct {
	Appointment AppointmentResponse  `json:"appointment"`
	Promoted    *AppointmentResponse `json:"promoted,omitempty"`
}

type CompleteAppointmentResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Commission  float64             `json:"commission"`
}
