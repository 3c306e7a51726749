package model

import (
	"time"
)

const (
	EventBooked    = "appointment.booked.v1"
	EventCancelled = "appointment.cancelled.v1"
	EventCompleted = "appointment.completed.v1"
	EventPromoted  = "waitlist.promoted.v1"
)

type Event struct {
	Type           string    `json:"type"`
	AppointmentID  string    `json:"appointment_id"`
	ProfessionalID string    `json:"professional_id"`
	ServiceID      string    `json:"service_id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         Status    `json:"status"`
	ClientName     string    `json:"client_name"`
	ClientPhone    string    `json:"client_phone"`
	Amount         float64   `json:"amount,omitempty"`
	WaitlistID     string    `json:"waitlist_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, appt Appointment, occurredAt time.Time) Event {
	return Event{
		Type:           eventType,
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ServiceID:      appt.ServiceID,
		Date:           appt.Date.Key(),
		Time:           appt.Time,
		Status:         appt.Status,
		ClientName:     appt.ClientName,
		ClientPhone:    appt.ClientPhone,
		OccurredAt:     occurredAt,
	}
}
