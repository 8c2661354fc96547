package catalogstore

import (
	"context"

	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra"
	"tidybook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres reads the catalog from the services / service_items tables for
// deployments that manage offerings outside the binary. Rows map onto the
// same ServiceData shape the static store decodes.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const selectServices = `
SELECT id, name, description, long_description, image_url,
       base_price_cents, available_postcodes, is_enabled
FROM services
ORDER BY sort_order, id`

const selectServiceByID = `
SELECT id, name, description, long_description, image_url,
       base_price_cents, available_postcodes, is_enabled
FROM services
WHERE id = $1`

const selectServiceItems = `
SELECT item_id, name, description, unit_price_cents,
       kind, min_quantity, default_quantity, selection_mode
FROM service_items
WHERE service_id = $1
ORDER BY sort_order, item_id`

func (p *Postgres) All(ctx context.Context) ([]*catalog.Service, error) {
	rows, err := p.pool.Query(ctx, selectServices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query services", err)
	}
	defer rows.Close()

	var records []catalog.ServiceData
	for rows.Next() {
		record, err := scanServiceRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	services := make([]*catalog.Service, 0, len(records))
	for i := range records {
		if err := p.loadItems(ctx, &records[i]); err != nil {
			return nil, err
		}
		svc, err := catalog.NewService(records[i])
		if err != nil {
			return nil, infra.WrapRepoErr("invalid catalog record "+records[i].ID, err, infra.KindBadData)
		}
		services = append(services, svc)
	}
	return services, nil
}

func (p *Postgres) FindByID(ctx context.Context, id string) (*catalog.Service, error) {
	record, err := scanServiceRow(p.pool.QueryRow(ctx, selectServiceByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}

	if err := p.loadItems(ctx, &record); err != nil {
		return nil, err
	}
	svc, err := catalog.NewService(record)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid catalog record "+record.ID, err, infra.KindBadData)
	}
	return svc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceRow(row rowScanner) (catalog.ServiceData, error) {
	var (
		record                    catalog.ServiceData
		longDescription, imageURL pgtype.Text
	)
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Description,
		&longDescription,
		&imageURL,
		&record.BasePriceCents,
		&record.Postcodes,
		&record.Enabled,
	)
	if err != nil {
		return record, err
	}
	record.LongDescription = pgconv.TextOrEmpty(longDescription)
	record.ImageURL = pgconv.TextOrEmpty(imageURL)
	return record, nil
}

func (p *Postgres) loadItems(ctx context.Context, record *catalog.ServiceData) error {
	rows, err := p.pool.Query(ctx, selectServiceItems, record.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to query service items", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanItemRow(rows, record); err != nil {
			return infra.WrapRepoErr("failed to scan service item row", err)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read service item rows", err)
	}
	return nil
}

func scanItemRow(rows pgx.Rows, record *catalog.ServiceData) error {
	var (
		itemID, name, description, kind, mode string
		unitPriceCents                        int64
		minQuantity, defaultQuantity          int
	)
	if err := rows.Scan(
		&itemID, &name, &description, &unitPriceCents,
		&kind, &minQuantity, &defaultQuantity, &mode,
	); err != nil {
		return err
	}

	switch kind {
	case "included":
		record.IncludedItems = append(record.IncludedItems, catalog.IncludedItem{
			ID:              itemID,
			Name:            name,
			Description:     description,
			UnitPriceCents:  unitPriceCents,
			MinQuantity:     minQuantity,
			DefaultQuantity: defaultQuantity,
		})
	case "extra":
		record.ExtraItems = append(record.ExtraItems, catalog.ExtraItem{
			ID:             itemID,
			Name:           name,
			Description:    description,
			UnitPriceCents: unitPriceCents,
			Mode:           catalog.SelectionMode(mode),
		})
	}
	return nil
}
