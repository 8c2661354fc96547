package checkout

import (
	"context"
	"log/slog"

	"tidybook/internal/domain/booking"
	"tidybook/internal/usecase/commands"

	"github.com/google/uuid"
)

// Simulated is the stand-in checkout collaborator: it logs the payload and
// issues a receipt. A payment integration would replace this behind the
// same gateway port.
type Simulated struct {
	logger *slog.Logger
}

func NewSimulated(logger *slog.Logger) *Simulated {
	return &Simulated{logger: logger}
}

func (s *Simulated) Checkout(_ context.Context, sessionID uuid.UUID, payload booking.CheckoutPayload) (*commands.CheckoutReceipt, error) {
	receipt := &commands.CheckoutReceipt{
		ReceiptID:  uuid.New(),
		TotalCents: payload.TotalCents,
	}

	s.logger.Info("booking checkout completed",
		"session_id", sessionID,
		"receipt_id", receipt.ReceiptID,
		"service_id", payload.Draft.ServiceID,
		"recurrence", payload.Draft.Recurrence.String(),
		"total_cents", payload.TotalCents,
	)
	return receipt, nil
}
