package response

import (
	"tidybook/internal/domain/booking"
	"tidybook/internal/usecase/commands"
	"tidybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBody struct {
	ItemID        string `json:"itemId"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unitPriceCents"`
	SubtotalCents int64  `json:"subtotalCents"`
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

type RecurrenceNoticeBody struct {
	Recurrence string `json:"recurrence"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

type DraftResponse struct {
	SessionID             uuid.UUID             `json:"sessionId"`
	ServiceID             string                `json:"serviceId"`
	ServiceName           string                `json:"serviceName"`
	ServiceBasePriceCents int64                 `json:"serviceBasePriceCents"`
	Address               string                `json:"address"`
	Postcode              string                `json:"postcode"`
	Recurrence            string                `json:"recurrence"`
	StartDate             string                `json:"startDate"`
	NumberOfDays          int                   `json:"numberOfDays"`
	TimeWindow            string                `json:"timeWindow"`
	IncludedItems         []ItemBody            `json:"includedItems"`
	ExtraItems            []ItemBody            `json:"extraItems"`
	Preferences           PreferencesBody       `json:"preferences"`
	CustomerInfo          CustomerInfoBody      `json:"customerInfo"`
	ContractDuration      int                   `json:"contractDuration"`
	AgreedToTerms         bool                  `json:"agreedToTerms"`
	DiscountCode          string                `json:"discountCode"`
	PointsApplied         int                   `json:"pointsApplied"`
	Stage                 string                `json:"stage"`
	TotalCents            int64                 `json:"totalCents"`
	FutureOccurrences     []string              `json:"futureOccurrences"`
	Notice                *RecurrenceNoticeBody `json:"notice,omitempty"`
}

type CheckoutResponse struct {
	ReceiptID  uuid.UUID `json:"receiptId"`
	TotalCents int64     `json:"totalCents"`
}

func FromDraftView(vm *queries.DraftView) *DraftResponse {
	return &DraftResponse{
		SessionID:             vm.SessionID,
		ServiceID:             vm.Draft.ServiceID,
		ServiceName:           vm.Draft.ServiceName,
		ServiceBasePriceCents: vm.Draft.ServiceBasePriceCents,
		Address:               vm.Draft.Address,
		Postcode:              vm.Draft.Postcode,
		Recurrence:            vm.Draft.Recurrence.String(),
		StartDate:             vm.Draft.StartDate.String(),
		NumberOfDays:          vm.Draft.NumberOfDays,
		TimeWindow:            vm.Draft.TimeWindow,
		IncludedItems:         fromItems(vm.Draft.IncludedItems),
		ExtraItems:            fromItems(vm.Draft.ExtraItems),
		Preferences:           PreferencesBody(vm.Draft.Preferences),
		CustomerInfo:          CustomerInfoBody(vm.Draft.CustomerInfo),
		ContractDuration:      vm.Draft.ContractDuration,
		AgreedToTerms:         vm.Draft.AgreedToTerms,
		DiscountCode:          vm.Draft.DiscountCode,
		PointsApplied:         vm.Draft.PointsApplied,
		Stage:                 vm.Draft.Stage.String(),
		TotalCents:            vm.TotalCents,
		FutureOccurrences:     vm.FutureOccurrences,
	}
}

func FromDraftViewWithNotice(vm *queries.DraftView, notice *booking.RecurrenceNotice) *DraftResponse {
	resp := FromDraftView(vm)
	if notice != nil {
		resp.Notice = &RecurrenceNoticeBody{
			Recurrence: notice.Recurrence.String(),
			Title:      notice.Title,
			Message:    notice.Message,
		}
	}
	return resp
}

func FromCheckoutResult(rm *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		ReceiptID:  rm.Receipt.ReceiptID,
		TotalCents: rm.Receipt.TotalCents,
	}
}

func fromItems(items []booking.Item) []ItemBody {
	result := make([]ItemBody, len(items))
	for i, item := range items {
		result[i] = ItemBody{
			ItemID:        item.ItemID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPriceCents,
			SubtotalCents: item.UnitPriceCents * int64(item.Quantity),
		}
	}
	return result
}
