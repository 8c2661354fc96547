package commands

import (
	"context"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"

	"github.com/google/uuid"
)

// CatalogRepository resolves immutable catalog entries for the write side.
type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (*catalog.Service, error)
}

// DraftSessions owns the single mutable draft of each active session.
// Implementations apply a TTL so abandoned drafts go away on their own.
type DraftSessions interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	Put(ctx context.Context, id uuid.UUID, draft *booking.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CheckoutGateway receives the finalized payload. The booking core's
// responsibility ends at producing it; payment is someone else's problem.
type CheckoutGateway interface {
	Checkout(ctx context.Context, sessionID uuid.UUID, payload booking.CheckoutPayload) (*CheckoutReceipt, error)
}

type CheckoutReceipt struct {
	ReceiptID  uuid.UUID `json:"receiptId"`
	TotalCents int64     `json:"totalCents"`
}
