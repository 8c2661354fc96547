package queries

import (
	"context"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra"
	"tidybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errs.New("booking draft not found")

// DraftView is the read model of one in-progress booking: the draft itself
// plus everything derived from it (running total, future occurrence dates).
type DraftView struct {
	SessionID         uuid.UUID     `json:"sessionId"`
	Draft             booking.Draft `json:"draft"`
	TotalCents        int64         `json:"totalCents"`
	FutureOccurrences []string      `json:"futureOccurrences"`
}

// DraftSessionReader is the read-side port over the session store.
type DraftSessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
}

type BookingQueries interface {
	GetDraft(ctx context.Context, sessionID uuid.UUID) (*DraftView, error)
}

type bookingQueriesImpl struct {
	sessions DraftSessionReader
	catalog  CatalogReader
}

func NewBookingQueries(sessions DraftSessionReader, catalog CatalogReader) BookingQueries {
	return &bookingQueriesImpl{sessions: sessions, catalog: catalog}
}

func (q *bookingQueriesImpl) GetDraft(ctx context.Context, sessionID uuid.UUID) (*DraftView, error) {
	draft, err := q.sessions.Get(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Wrap(err, "failed to load draft session")
	}

	svc, err := q.catalog.FindByID(ctx, draft.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find draft service")
	}

	return NewDraftView(sessionID, draft, svc), nil
}

func NewDraftView(sessionID uuid.UUID, draft *booking.Draft, svc *catalog.Service) *DraftView {
	occurrences := draft.FutureOccurrences()
	dates := make([]string, len(occurrences))
	for i, d := range occurrences {
		dates[i] = d.String()
	}

	return &DraftView{
		SessionID:         sessionID,
		Draft:             *draft,
		TotalCents:        booking.Quote(draft, svc).Cents(),
		FutureOccurrences: dates,
	}
}
