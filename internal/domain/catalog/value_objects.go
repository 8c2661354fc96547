package catalog

// SelectionMode tells the presentation layer how an extra item is picked:
// checkbox items are binary, counter items take any non-negative quantity.
type SelectionMode string

const (
	SelectionCheckbox SelectionMode = "checkbox"
	SelectionCounter  SelectionMode = "counter"
)

func (m SelectionMode) String() string {
	return string(m)
}

func (m SelectionMode) IsValid() bool {
	switch m {
	case SelectionCheckbox, SelectionCounter:
		return true
	default:
		return false
	}
}

// IncludedItem is a component bundled into a service. It can be scaled up
// but never configured below MinQuantity.
type IncludedItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	UnitPriceCents  int64  `json:"unitPriceCents"`
	MinQuantity     int    `json:"minQuantity"`
	DefaultQuantity int    `json:"defaultQuantity"`
}

// ExtraItem is an optional add-on, absent from a booking by default.
type ExtraItem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	UnitPriceCents int64         `json:"unitPriceCents"`
	Mode           SelectionMode `json:"mode"`
}
