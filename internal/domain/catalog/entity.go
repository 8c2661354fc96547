package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyServiceID     = errors.New("service id cannot be empty")
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrNegativeItemPrice  = errors.New("item price cannot be negative")
	ErrInvalidMinQuantity = errors.New("minimum quantity cannot be negative")
	ErrDefaultBelowMin    = errors.New("default quantity cannot be below minimum quantity")
	ErrDuplicateItemID    = errors.New("duplicate item id within service")
	ErrInvalidSelection   = errors.New("invalid extra item selection mode")
)

// ServiceData is the raw shape a catalog source decodes into before
// validation. Field names follow the catalog JSON schema.
type ServiceData struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	LongDescription string         `json:"longDescription,omitempty"`
	ImageURL        string         `json:"imageUrl,omitempty"`
	BasePriceCents  int64          `json:"basePriceCents"`
	Postcodes       []string       `json:"availablePostcodes"`
	Enabled         bool           `json:"isEnabled"`
	IncludedItems   []IncludedItem `json:"includedItems"`
	ExtraItems      []ExtraItem    `json:"extraItems"`
}

// Service is an immutable catalog entry. Only enabled services are
// selectable for booking.
type Service struct {
	id              string
	name            string
	description     string
	longDescription string
	imageURL        string
	basePriceCents  int64
	postcodes       []string
	postcodeSet     map[string]struct{}
	enabled         bool
	includedItems   []IncludedItem
	extraItems      []ExtraItem
}

func NewService(data ServiceData) (*Service, error) {
	id := strings.TrimSpace(data.ID)
	if id == "" {
		return nil, ErrEmptyServiceID
	}
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if data.BasePriceCents < 0 {
		return nil, ErrNegativeBasePrice
	}

	seen := make(map[string]struct{}, len(data.IncludedItems)+len(data.ExtraItems))
	for _, item := range data.IncludedItems {
		if err := validateIncludedItem(item, seen); err != nil {
			return nil, err
		}
	}
	for _, item := range data.ExtraItems {
		if err := validateExtraItem(item, seen); err != nil {
			return nil, err
		}
	}

	postcodeSet := make(map[string]struct{}, len(data.Postcodes))
	postcodes := make([]string, 0, len(data.Postcodes))
	for _, pc := range data.Postcodes {
		pc = strings.TrimSpace(pc)
		if pc == "" {
			continue
		}
		if _, ok := postcodeSet[pc]; ok {
			continue
		}
		postcodeSet[pc] = struct{}{}
		postcodes = append(postcodes, pc)
	}

	return &Service{
		id:              id,
		name:            name,
		description:     data.Description,
		longDescription: data.LongDescription,
		imageURL:        data.ImageURL,
		basePriceCents:  data.BasePriceCents,
		postcodes:       postcodes,
		postcodeSet:     postcodeSet,
		enabled:         data.Enabled,
		includedItems:   append([]IncludedItem(nil), data.IncludedItems...),
		extraItems:      append([]ExtraItem(nil), data.ExtraItems...),
	}, nil
}

func validateIncludedItem(item IncludedItem, seen map[string]struct{}) error {
	if _, ok := seen[item.ID]; ok {
		return ErrDuplicateItemID
	}
	seen[item.ID] = struct{}{}
	if item.UnitPriceCents < 0 {
		return ErrNegativeItemPrice
	}
	if item.MinQuantity < 0 {
		return ErrInvalidMinQuantity
	}
	if item.DefaultQuantity < item.MinQuantity {
		return ErrDefaultBelowMin
	}
	return nil
}

func validateExtraItem(item ExtraItem, seen map[string]struct{}) error {
	if _, ok := seen[item.ID]; ok {
		return ErrDuplicateItemID
	}
	seen[item.ID] = struct{}{}
	if item.UnitPriceCents < 0 {
		return ErrNegativeItemPrice
	}
	if !item.Mode.IsValid() {
		return ErrInvalidSelection
	}
	return nil
}

func (s *Service) ID() string              { return s.id }
func (s *Service) Name() string            { return s.name }
func (s *Service) Description() string     { return s.description }
func (s *Service) LongDescription() string { return s.longDescription }
func (s *Service) ImageURL() string        { return s.imageURL }
func (s *Service) BasePriceCents() int64   { return s.basePriceCents }
func (s *Service) IsEnabled() bool         { return s.enabled }

func (s *Service) Postcodes() []string {
	return append([]string(nil), s.postcodes...)
}

func (s *Service) IncludedItems() []IncludedItem {
	return append([]IncludedItem(nil), s.includedItems...)
}

func (s *Service) ExtraItems() []ExtraItem {
	return append([]ExtraItem(nil), s.extraItems...)
}

func (s *Service) IncludedItem(id string) (IncludedItem, bool) {
	for _, item := range s.includedItems {
		if item.ID == id {
			return item, true
		}
	}
	return IncludedItem{}, false
}

func (s *Service) ExtraItem(id string) (ExtraItem, bool) {
	for _, item := range s.extraItems {
		if item.ID == id {
			return item, true
		}
	}
	return ExtraItem{}, false
}

func (s *Service) ServesPostcode(postcode string) bool {
	_, ok := s.postcodeSet[strings.TrimSpace(postcode)]
	return ok
}
