package model

import (
	"agenda/shared/model"
	"agenda/shared/timezone"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldServiceID       = "service_id"
	FieldProfessionalID  = "professional_id"
	FieldDate            = "date"
	FieldTime            = "start_time"
	FieldClientAccountID = "client_account_id"
	FieldStatus          = "status"
	FieldFinalPrice      = "final_price"
	FieldDiscount        = "discount"
	FieldTip             = "tip"
	FieldPaymentMethod   = "payment_method"
	FieldNotes           = "notes"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusBlocked   Status = "blocked"
)

type PaymentMethod string

const (
	PaymentMoney PaymentMethod = "money"
	PaymentPix   PaymentMethod = "pix"
	PaymentCard  PaymentMethod = "card"
	PaymentOther PaymentMethod = "other"
)

const WaitlistNote = "auto-booked from waitlist"

type Appointment struct {
	ID              string        `db:"id"`
	ServiceID       string        `db:"service_id"`
	ProfessionalID  string        `db:"professional_id"`
	Date            timezone.Date `db:"date"`
	Time            string        `db:"start_time"`
	ClientName      string        `db:"client_name"`
	ClientPhone     string        `db:"client_phone"`
	ClientAccountID string        `db:"client_account_id"`
	Status          Status        `db:"status"`
	TotalPrice      float64       `db:"total_price"`
	FinalPrice      *float64      `db:"final_price"`
	Discount        *float64      `db:"discount"`
	Tip             *float64      `db:"tip"`
	PaymentMethod   string        `db:"payment_method"`
	Notes           string        `db:"notes"`
	model.Metadata
}

// Occupies reports whether the appointment holds its slot.
func (a Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// ChargedPrice is the amount the client paid, or the booked price before payment.
func (a Appointment) ChargedPrice() float64 {
	if a.FinalPrice != nil {
		return *a.FinalPrice
	}

	return a.TotalPrice
}

// DayKey identifies the professional's calendar day; bookings on the same key serialise.
func (a Appointment) DayKey() string {
	return DayKey(a.ProfessionalID, a.Date)
}

func DayKey(professionalID string, date timezone.Date) string {
	return professionalID + "|" + date.Key()
}
