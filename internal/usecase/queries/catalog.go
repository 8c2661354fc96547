package queries

import (
	"context"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra"
	"tidybook/internal/pkg/errs"
)

var ErrServiceNotFound = errs.New("service not found")

// Read models (DTO for read side)
type ServiceListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	BasePrice   int64  `json:"basePriceCents"`
	IsEnabled   bool   `json:"isEnabled"`
}

type ServiceView struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	LongDescription string               `json:"longDescription,omitempty"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	BasePrice       int64                `json:"basePriceCents"`
	Postcodes       []string             `json:"availablePostcodes"`
	IncludedItems   []IncludedItemView   `json:"includedItems"`
	ExtraItems      []ExtraItemView      `json:"extraItems"`
	TimeWindows     []booking.TimeWindow `json:"timeWindows"`
	Recurrences     []string             `json:"recurrenceOptions"`
}

type IncludedItemView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	UnitPrice       int64  `json:"unitPriceCents"`
	MinQuantity     int    `json:"minQuantity"`
	DefaultQuantity int    `json:"defaultQuantity"`
}

type ExtraItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPriceCents"`
	Mode        string `json:"mode"`
}

// CatalogReader is the read-side port over whichever catalog source is
// configured (embedded static data or Postgres).
type CatalogReader interface {
	All(ctx context.Context) ([]*catalog.Service, error)
	FindByID(ctx context.Context, id string) (*catalog.Service, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceListItem, error)
	// GetService resolves an enabled service; unknown or disabled ids
	// surface as ErrServiceNotFound so the flow redirects to the listing.
	GetService(ctx context.Context, id string) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	reader CatalogReader
}

func NewCatalogQueries(reader CatalogReader) CatalogQueries {
	return &catalogQueriesImpl{reader: reader}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceListItem, error) {
	services, err := q.reader.All(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}

	result := make([]*ServiceListItem, len(services))
	for i, svc := range services {
		result[i] = &ServiceListItem{
			ID:          svc.ID(),
			Name:        svc.Name(),
			Description: svc.Description(),
			ImageURL:    svc.ImageURL(),
			BasePrice:   svc.BasePriceCents(),
			IsEnabled:   svc.IsEnabled(),
		}
	}
	return result, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id string) (*ServiceView, error) {
	svc, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	if !svc.IsEnabled() {
		return nil, ErrServiceNotFound
	}

	return toServiceView(svc), nil
}

func toServiceView(svc *catalog.Service) *ServiceView {
	includes := svc.IncludedItems()
	included := make([]IncludedItemView, len(includes))
	for i, item := range includes {
		included[i] = IncludedItemView{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			UnitPrice:       item.UnitPriceCents,
			MinQuantity:     item.MinQuantity,
			DefaultQuantity: item.DefaultQuantity,
		}
	}

	extrasCfg := svc.ExtraItems()
	extras := make([]ExtraItemView, len(extrasCfg))
	for i, item := range extrasCfg {
		extras[i] = ExtraItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPriceCents,
			Mode:        item.Mode.String(),
		}
	}

	return &ServiceView{
		ID:              svc.ID(),
		Name:            svc.Name(),
		Description:     svc.Description(),
		LongDescription: svc.LongDescription(),
		ImageURL:        svc.ImageURL(),
		BasePrice:       svc.BasePriceCents(),
		Postcodes:       svc.Postcodes(),
		IncludedItems:   included,
		ExtraItems:      extras,
		TimeWindows:     booking.TimeWindows(),
		Recurrences: []string{
			booking.RecurrenceOneTime.String(),
			booking.RecurrenceWeekly.String(),
			booking.RecurrenceFortnightly.String(),
			booking.RecurrenceMonthly.String(),
		},
	}
}
