package booking

import (
	"tidybook/internal/domain/catalog"
)

// SetItemQuantity applies a quantity change to one of the draft's item
// lists. Quantities above zero insert or update a snapshot of the catalog
// config. At or below zero the behaviour splits: extras are removed
// entirely (absence means zero), included items clamp to their configured
// minimum rather than erroring.
func (d *Draft) SetItemQuantity(svc *catalog.Service, itemID string, quantity int, kind ListKind) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}

	switch kind {
	case ListIncluded:
		cfg, ok := svc.IncludedItem(itemID)
		if !ok {
			return ErrItemNotFound
		}
		if quantity < cfg.MinQuantity {
			quantity = cfg.MinQuantity
		}
		d.IncludedItems = upsertItem(d.IncludedItems, Item{
			ItemID:         cfg.ID,
			Name:           cfg.Name,
			Quantity:       quantity,
			UnitPriceCents: cfg.UnitPriceCents,
		})
		return nil

	case ListExtra:
		cfg, ok := svc.ExtraItem(itemID)
		if !ok {
			return ErrItemNotFound
		}
		if quantity <= 0 {
			d.ExtraItems = removeItem(d.ExtraItems, cfg.ID)
			return nil
		}
		if cfg.Mode == catalog.SelectionCheckbox {
			quantity = 1
		}
		d.ExtraItems = upsertItem(d.ExtraItems, Item{
			ItemID:         cfg.ID,
			Name:           cfg.Name,
			Quantity:       quantity,
			UnitPriceCents: cfg.UnitPriceCents,
		})
		return nil

	default:
		return ErrInvalidListKind
	}
}

// ToggleExtra is the checkbox form of SetItemQuantity: on is quantity 1,
// off is quantity 0.
func (d *Draft) ToggleExtra(svc *catalog.Service, itemID string, checked bool) error {
	quantity := 0
	if checked {
		quantity = 1
	}
	return d.SetItemQuantity(svc, itemID, quantity, ListExtra)
}

// ItemQuantity reports the configured quantity for an item, zero when the
// item is absent from the target list.
func (d *Draft) ItemQuantity(itemID string, kind ListKind) int {
	list := d.IncludedItems
	if kind == ListExtra {
		list = d.ExtraItems
	}
	for _, item := range list {
		if item.ItemID == itemID {
			return item.Quantity
		}
	}
	return 0
}

func upsertItem(items []Item, item Item) []Item {
	for i := range items {
		if items[i].ItemID == item.ItemID {
			items[i].Quantity = item.Quantity
			return items
		}
	}
	return append(items, item)
}

func removeItem(items []Item, itemID string) []Item {
	out := items[:0]
	for _, item := range items {
		if item.ItemID != itemID {
			out = append(out, item)
		}
	}
	return out
}
