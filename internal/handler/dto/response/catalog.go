package response

import (
	"tidybook/internal/usecase/queries"
)

type ServiceListResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	BasePrice   int64  `json:"basePriceCents"`
	IsEnabled   bool   `json:"isEnabled"`
}

type ServiceResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	LongDescription string             `json:"longDescription,omitempty"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	BasePrice       int64              `json:"basePriceCents"`
	Postcodes       []string           `json:"availablePostcodes"`
	IncludedItems   []IncludedItemBody `json:"includedItems"`
	ExtraItems      []ExtraItemBody    `json:"extraItems"`
	TimeWindows     []TimeWindowBody   `json:"timeWindows"`
	Recurrences     []string           `json:"recurrenceOptions"`
}

type IncludedItemBody struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	UnitPrice       int64  `json:"unitPriceCents"`
	MinQuantity     int    `json:"minQuantity"`
	DefaultQuantity int    `json:"defaultQuantity"`
}

type ExtraItemBody struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPriceCents"`
	Mode        string `json:"mode"`
}

type TimeWindowBody struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func FromServiceListItem(sm *queries.ServiceListItem) *ServiceListResponse {
	return &ServiceListResponse{
		ID:          sm.ID,
		Name:        sm.Name,
		Description: sm.Description,
		ImageURL:    sm.ImageURL,
		BasePrice:   sm.BasePrice,
		IsEnabled:   sm.IsEnabled,
	}
}

func FromServiceView(sm *queries.ServiceView) *ServiceResponse {
	included := make([]IncludedItemBody, len(sm.IncludedItems))
	for i, item := range sm.IncludedItems {
		included[i] = IncludedItemBody(item)
	}
	extras := make([]ExtraItemBody, len(sm.ExtraItems))
	for i, item := range sm.ExtraItems {
		extras[i] = ExtraItemBody(item)
	}
	windows := make([]TimeWindowBody, len(sm.TimeWindows))
	for i, w := range sm.TimeWindows {
		windows[i] = TimeWindowBody{Value: w.Value, Label: w.Label}
	}

	return &ServiceResponse{
		ID:              sm.ID,
		Name:            sm.Name,
		Description:     sm.Description,
		LongDescription: sm.LongDescription,
		ImageURL:        sm.ImageURL,
		BasePrice:       sm.BasePrice,
		Postcodes:       sm.Postcodes,
		IncludedItems:   included,
		ExtraItems:      extras,
		TimeWindows:     windows,
		Recurrences:     sm.Recurrences,
	}
}
