package booking

import "errors"

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Scale(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// Item is a configured line on a draft. Name and unit price are snapshots
// taken from the catalog at configuration time, so later catalog changes
// don't retroactively alter an in-progress booking.
type Item struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

type Preferences struct {
	WillBeHome           bool   `json:"willBeHome"`
	AccessInfo           string `json:"accessInfo"`
	HasAllergies         bool   `json:"hasAllergies"`
	AllergiesDetails     string `json:"allergiesDetails"`
	HasPets              bool   `json:"hasPets"`
	PetsDetails          string `json:"petsDetails"`
	HasCleaningProducts  bool   `json:"hasCleaningProducts"`
	HasCleaningEquipment bool   `json:"hasCleaningEquipment"`
}

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TaxID     string `json:"taxId"`
}
