package dto

import (
	"agenda/internal/domains/catalog/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name            string   `json:"name"             validate:"required,max=100"`
	Description     string   `json:"description"      validate:"omitempty,max=500"`
	Type            string   `json:"type"             validate:"required,oneof=service product"`
	Price           float64  `json:"price"            validate:"gte=0"`
	DurationMinutes int      `json:"duration_minutes" validate:"gte=0,lte=720"`
	CommissionRate  *float64 `json:"commission_rate"  validate:"omitempty,gte=0,lte=100"`
	CostPrice       float64  `json:"cost_price"       validate:"gte=0"`
	Stock           int      `json:"stock"            validate:"gte=0"`
	Active          *bool    `json:"active"           validate:"omitempty"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	duration := c.DurationMinutes
	if c.Type == model.TypeProduct {
		duration = 0
	}

	now := timezone.Now()

	return model.Item{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Type:            c.Type,
		Price:           c.Price,
		DurationMinutes: duration,
		CommissionRate:  c.CommissionRate,
		CostPrice:       c.CostPrice,
		Stock:           c.Stock,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=500"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gte=0"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=0,lte=720"`
	CommissionRate  *float64 `db:"commission_rate"  json:"commission_rate"  validate:"omitempty,gte=0,lte=100"`
	CostPrice       *float64 `db:"cost_price"       json:"cost_price"       validate:"omitempty,gte=0"`
	Stock           *int     `db:"stock"            json:"stock"            validate:"omitempty,gte=0"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type ItemResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	CommissionRate  *float64 `json:"commission_rate"`
	CostPrice       float64  `json:"cost_price"`
	Stock           int      `json:"stock"`
	Active          bool     `json:"active"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Type = model.Type
	r.Price = model.Price
	r.DurationMinutes = model.DurationMinutes
	r.CommissionRate = model.CommissionRate
	r.CostPrice = model.CostPrice
	r.Stock = model.Stock
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
