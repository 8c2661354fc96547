package booking

import (
	"tidybook/internal/domain/catalog"
)

// Fees charged when the customer needs supplies brought along. These are
// company-wide, not per service, so they live here rather than on the
// catalog entry.
const (
	CleaningProductsFeeCents  int64 = 1500
	CleaningEquipmentFeeCents int64 = 2500
)

// Quote computes the running total for a draft against its service's
// current configuration. Configured items whose config no longer exists on
// the service are ignored, not an error. The discount code and loyalty
// points on the draft are carried but not yet applied; pricing rules for
// them are still pending, so the fields pass through untouched.
func Quote(d *Draft, svc *catalog.Service) Money {
	total := d.ServiceBasePriceCents

	for _, item := range d.IncludedItems {
		if cfg, ok := svc.IncludedItem(item.ItemID); ok {
			total += int64(item.Quantity) * cfg.UnitPriceCents
		}
	}
	for _, item := range d.ExtraItems {
		if cfg, ok := svc.ExtraItem(item.ItemID); ok {
			total += int64(item.Quantity) * cfg.UnitPriceCents
		}
	}

	if !d.Preferences.HasCleaningProducts {
		total += CleaningProductsFeeCents
	}
	if !d.Preferences.HasCleaningEquipment {
		total += CleaningEquipmentFeeCents
	}

	total *= int64(d.NumberOfDays)
	if total < 0 {
		total = 0
	}
	return NewMoney(total)
}
