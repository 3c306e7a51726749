package model

import (
	"agenda/shared/model"
	"agenda/shared/timezone"
)

const (
	TableName  = "waitlist_entries"
	EntityName = "waitlist_entry"

	FieldID             = "id"
	FieldDate           = "date"
	FieldProfessionalID = "professional_id"
	FieldCreatedAt      = "created_at"
	FieldSeq            = "seq"

	AnyProfessional = "any"
)

// Entry is a client waiting for a slot on a given day. Entries are never edited.
type Entry struct {
	ID             string        `db:"id"`
	ClientName     string        `db:"client_name"`
	ClientPhone    string        `db:"client_phone"`
	ServiceID      string        `db:"service_id"`
	ProfessionalID string        `db:"professional_id"`
	Date           timezone.Date `db:"date"`
	Seq            int64         `db:"seq" insert:"-"`
	model.Metadata
}

func (e Entry) Accepts(professionalID string) bool {
	return e.ProfessionalID == AnyProfessional || e.ProfessionalID == professionalID
}
