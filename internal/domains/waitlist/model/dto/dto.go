package dto

import (
	"fmt"

	"agenda/internal/domains/waitlist/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	ClientName     string `json:"client_name"     validate:"required,max=100"`
	ClientPhone    string `json:"client_phone"    validate:"required,max=30"`
	ServiceID      string `json:"service_id"      validate:"required,max=64"`
	ProfessionalID string `json:"professional_id" validate:"required,max=64"`
	Date           string `json:"date"            validate:"required,datekey"`
}

func (j *JoinWaitlistRequest) ToModel(user string) (model.Entry, error) {
	date, err := timezone.ParseDateValue(j.Date)
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to parse waitlist date: %w", err)
	}

	now := timezone.Now()

	return model.Entry{
		ID:             uuid.NewString(),
		ClientName:     j.ClientName,
		ClientPhone:    j.ClientPhone,
		ServiceID:      j.ServiceID,
		ProfessionalID: j.ProfessionalID,
		Date:           date,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type EntryResponse struct {
	ID             string `json:"id"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ServiceID      string `json:"service_id"`
	ProfessionalID string `json:"professional_id"`
	Date           string `json:"date"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.ClientPhone = model.ClientPhone
	r.ServiceID = model.ServiceID
	r.ProfessionalID = model.ProfessionalID
	r.Date = model.Date.Key()
	r.Metadata.FromModel(model.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
