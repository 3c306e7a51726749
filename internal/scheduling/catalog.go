package scheduling

import (
	catalogModel "agenda/internal/domains/catalog/model"
)

// DefaultDuration applies to services that are missing from the catalog or have no duration.
const DefaultDuration = 30

type Catalog map[string]catalogModel.Item

func NewCatalog(items []catalogModel.Item) Catalog {
	catalog := make(Catalog, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}

	return catalog
}

func (c Catalog) Lookup(serviceID string) (catalogModel.Item, bool) {
	item, ok := c[serviceID]

	return item, ok
}

func (c Catalog) DurationOf(serviceID string) int {
	item, ok := c[serviceID]
	if !ok || item.DurationMinutes <= 0 {
		return DefaultDuration
	}

	return item.DurationMinutes
}
