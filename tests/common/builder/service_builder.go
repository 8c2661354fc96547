//go:build unit || e2e

package builder

import (
	"tidybook/internal/domain/catalog"
)

type ServiceBuilder struct {
	ID             string
	Name           string
	Description    string
	BasePriceCents int64
	Postcodes      []string
	Enabled        bool
	IncludedItems  []catalog.IncludedItem
	ExtraItems     []catalog.ExtraItem
}

// NewServiceBuilder mirrors the default house-cleaning catalog entry:
// three included items and two extras, one per selection mode.
func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:             "house-cleaning",
		Name:           "House Cleaning",
		Description:    "Standard home cleaning",
		BasePriceCents: 5000,
		Postcodes:      []string{"2000", "2010", "2020"},
		Enabled:        true,
		IncludedItems: []catalog.IncludedItem{
			{ID: "bedrooms", Name: "Bedrooms", UnitPriceCents: 2500, MinQuantity: 1, DefaultQuantity: 1},
			{ID: "bathrooms", Name: "Bathrooms", UnitPriceCents: 3000, MinQuantity: 1, DefaultQuantity: 1},
			{ID: "kitchen", Name: "Kitchen", UnitPriceCents: 2000, MinQuantity: 1, DefaultQuantity: 1},
		},
		ExtraItems: []catalog.ExtraItem{
			{ID: "oven-cleaning", Name: "Oven Cleaning", UnitPriceCents: 4500, Mode: catalog.SelectionCheckbox},
			{ID: "windows", Name: "Interior Windows", UnitPriceCents: 1500, Mode: catalog.SelectionCounter},
		},
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildData() catalog.ServiceData {
	return catalog.ServiceData{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		BasePriceCents: b.BasePriceCents,
		Postcodes:      b.Postcodes,
		Enabled:        b.Enabled,
		IncludedItems:  b.IncludedItems,
		ExtraItems:     b.ExtraItems,
	}
}

func (b *ServiceBuilder) Build() (*catalog.Service, error) {
	return catalog.NewService(b.BuildData())
}

// MustBuild is for tests that configure a known-valid service.
func (b *ServiceBuilder) MustBuild() *catalog.Service {
	svc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return svc
}
