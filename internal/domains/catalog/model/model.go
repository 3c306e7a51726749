package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "catalog_items"
	EntityName = "catalog_item"

	FieldID              = "id"
	FieldName            = "name"
	FieldType            = "type"
	FieldPrice           = "price"
	FieldDurationMinutes = "duration_minutes"
	FieldCommissionRate  = "commission_rate"
	FieldActive          = "active"
)

// Category decides which professional rate applies to a sale.
type Category string

const (
	CategoryService      Category = "service"
	CategoryProduct      Category = "product"
	CategorySubscription Category = "subscription"
)

const (
	TypeService = string(CategoryService)
	TypeProduct = string(CategoryProduct)
)

// Item is something sold at the shop: a bookable service or a retail product.
type Item struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Description     string   `db:"description"`
	Type            string   `db:"type"`
	Price           float64  `db:"price"`
	DurationMinutes int      `db:"duration_minutes"`
	CommissionRate  *float64 `db:"commission_rate"`
	CostPrice       float64  `db:"cost_price"`
	Stock           int      `db:"stock"`
	Active          bool     `db:"active"`
	model.Metadata
}

func (i Item) Category() Category {
	return Category(i.Type)
}

func (i Item) IsService() bool {
	return i.Type == TypeService
}

// CommissionOverride reports the item-specific rate when one is set above zero.
func (i Item) CommissionOverride() (float64, bool) {
	if i.CommissionRate == nil || *i.CommissionRate <= 0 {
		return 0, false
	}

	return *i.CommissionRate, true
}
