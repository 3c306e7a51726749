package dto

import (
	"agenda/internal/domains/professional/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateProfessionalRequest struct {
	Name             string  `json:"name"              validate:"required,max=100"`
	Phone            string  `json:"phone"             validate:"omitempty,max=30"`
	Description      string  `json:"description"       validate:"omitempty,max=500"`
	PhotoURL         string  `json:"photo_url"         validate:"omitempty,url"`
	ServiceRate      float64 `json:"service_rate"      validate:"gte=0,lte=100"`
	ProductRate      float64 `json:"product_rate"      validate:"gte=0,lte=100"`
	SubscriptionRate float64 `json:"subscription_rate" validate:"gte=0,lte=100"`
	Username         string  `json:"username"          validate:"omitempty,alphanum,min=3,max=50"`
	Password         string  `json:"password"          validate:"required_with=Username,omitempty,min=8,max=72"`
	Active           *bool   `json:"active"            validate:"omitempty"`
}

func (c *CreateProfessionalRequest) ToModel(user, passwordHash string) model.Professional {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	var username *string
	if c.Username != "" {
		username = &c.Username
	}

	now := timezone.Now()

	return model.Professional{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Phone:            c.Phone,
		Description:      c.Description,
		PhotoURL:         c.PhotoURL,
		Active:           active,
		ServiceRate:      c.ServiceRate,
		ProductRate:      c.ProductRate,
		SubscriptionRate: c.SubscriptionRate,
		Username:         username,
		PasswordHash:     passwordHash,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProfessionalRequest struct {
	Name             string   `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Phone            string   `db:"phone"             json:"phone"             validate:"omitempty,max=30"`
	Description      string   `db:"description"       json:"description"       validate:"omitempty,max=500"`
	PhotoURL         string   `db:"photo_url"         json:"photo_url"         validate:"omitempty,url"`
	ServiceRate      *float64 `db:"service_rate"      json:"service_rate"      validate:"omitempty,gte=0,lte=100"`
	ProductRate      *float64 `db:"product_rate"      json:"product_rate"      validate:"omitempty,gte=0,lte=100"`
	SubscriptionRate *float64 `db:"subscription_rate" json:"subscription_rate" validate:"omitempty,gte=0,lte=100"`
	Username         *string  `db:"username"          json:"username"          validate:"omitempty,alphanum,min=3,max=50"`
	Password         *string  `db:"-"                 json:"password"          validate:"omitempty,min=8,max=72"`
	Active           *bool    `db:"active"            json:"active"            validate:"omitempty"`
}

type ProfessionalResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Description string      `json:"description"`
	PhotoURL    string      `json:"photo_url"`
	Active      bool        `json:"active"`
	Rates       model.Rates `json:"rates"`
	Username    string      `json:"username,omitempty"`
	gDto.Metadata
}

func (r *ProfessionalResponse) FromModel(model model.Professional) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Description = model.Description
	r.PhotoURL = model.PhotoURL
	r.Active = model.Active
	r.Rates = model.Rates()
	r.Username = ""

	if model.Username != nil {
		r.Username = *model.Username
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetProfessionalsResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetProfessionalsResponse) FromModels(models []model.Professional, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Professionals = make([]ProfessionalResponse, len(models))
	for i, mod := range models {
		r.Professionals[i].FromModel(mod)
	}
}
