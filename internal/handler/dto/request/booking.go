package request

import (
	"strings"

	"tidybook/internal/domain/booking"
	"tidybook/internal/usecase/commands"
)

type StartBookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type PreferencesBody struct {
	WillBeHome           bool   `json:"willBeHome"`
	AccessInfo           string `json:"accessInfo"`
	HasAllergies         bool   `json:"hasAllergies"`
	AllergiesDetails     string `json:"allergiesDetails"`
	HasPets              bool   `json:"hasPets"`
	PetsDetails          string `json:"petsDetails"`
	HasCleaningProducts  bool   `json:"hasCleaningProducts"`
	HasCleaningEquipment bool   `json:"hasCleaningEquipment"`
}

type CustomerInfoBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TaxID     string `json:"taxId"`
}

// UpdateBookingRequest carries PATCH semantics: absent fields stay as they
// are. Preferences and customer info replace their whole block when sent.
type UpdateBookingRequest struct {
	Address          *string           `json:"address,omitempty"`
	Postcode         *string           `json:"postcode,omitempty"`
	Recurrence       *string           `json:"recurrence,omitempty"`
	StartDate        *string           `json:"startDate,omitempty"`
	NumberOfDays     *int              `json:"numberOfDays,omitempty"`
	TimeWindow       *string           `json:"timeWindow,omitempty"`
	ContractDuration *int              `json:"contractDuration,omitempty"`
	Preferences      *PreferencesBody  `json:"preferences,omitempty"`
	CustomerInfo     *CustomerInfoBody `json:"customerInfo,omitempty"`
	AgreedToTerms    *bool             `json:"agreedToTerms,omitempty"`
	DiscountCode     *string           `json:"discountCode,omitempty"`
	PointsApplied    *int              `json:"pointsApplied,omitempty"`
}

func (r UpdateBookingRequest) ToParams() (commands.UpdateDraftParams, error) {
	params := commands.UpdateDraftParams{
		Address:          r.Address,
		Postcode:         r.Postcode,
		NumberOfDays:     r.NumberOfDays,
		TimeWindow:       r.TimeWindow,
		ContractDuration: r.ContractDuration,
		AgreedToTerms:    r.AgreedToTerms,
		DiscountCode:     r.DiscountCode,
		PointsApplied:    r.PointsApplied,
	}

	if r.Recurrence != nil {
		recurrence := booking.Recurrence(strings.TrimSpace(*r.Recurrence))
		if !recurrence.IsValid() {
			return commands.UpdateDraftParams{}, booking.ErrInvalidRecurrence
		}
		params.Recurrence = &recurrence
	}
	if r.StartDate != nil {
		date, err := booking.ParseCivilDate(*r.StartDate)
		if err != nil {
			return commands.UpdateDraftParams{}, err
		}
		params.StartDate = &date
	}
	if r.Preferences != nil {
		prefs := booking.Preferences(*r.Preferences)
		params.Preferences = &prefs
	}
	if r.CustomerInfo != nil {
		info := booking.CustomerInfo(*r.CustomerInfo)
		params.CustomerInfo = &info
	}

	return params, nil
}

type SetItemQuantityRequest struct {
	Quantity *int   `json:"quantity" binding:"required"`
	ListKind string `json:"listKind" binding:"required,oneof=included extra"`
}

func (r SetItemQuantityRequest) Kind() booking.ListKind {
	return booking.ListKind(r.ListKind)
}
