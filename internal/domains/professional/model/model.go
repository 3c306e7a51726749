package model

import (
	"errors"
	"fmt"

	catalogModel "agenda/internal/domains/catalog/model"
	"agenda/shared/model"
)

const (
	TableName  = "professionals"
	EntityName = "professional"

	FieldID       = "id"
	FieldName     = "name"
	FieldUsername = "username"
	FieldActive   = "active"
)

var ErrUnknownCategory = errors.New("unknown commission category")

type Professional struct {
	ID               string  `db:"id"`
	Name             string  `db:"name"`
	Phone            string  `db:"phone"`
	Description      string  `db:"description"`
	PhotoURL         string  `db:"photo_url"`
	Active           bool    `db:"active"`
	ServiceRate      float64 `db:"service_rate"`
	ProductRate      float64 `db:"product_rate"`
	SubscriptionRate float64 `db:"subscription_rate"`
	Username         *string `db:"username"`
	PasswordHash     string  `db:"password_hash"`
	model.Metadata
}

func (p Professional) Rates() Rates {
	return Rates{
		Service:      p.ServiceRate,
		Product:      p.ProductRate,
		Subscription: p.SubscriptionRate,
	}
}

// Rates are commission percentages (0-100) per sale category.
type Rates struct {
	Service      float64 `json:"service"`
	Product      float64 `json:"product"`
	Subscription float64 `json:"subscription"`
}

func (r Rates) For(category catalogModel.Category) (float64, error) {
	switch category {
	case catalogModel.CategoryService:
		return r.Service, nil
	case catalogModel.CategoryProduct:
		return r.Product, nil
	case catalogModel.CategorySubscription:
		return r.Subscription, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}
