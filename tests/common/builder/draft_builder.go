//go:build unit || e2e

package builder

import (
	"time"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/internal/pkg/clock"
)

// DraftBuilder seeds a draft from a service and replays mutations on it,
// so tests describe a draft by where it should end up rather than by
// hand-assembled state.
type DraftBuilder struct {
	Service *catalog.Service
	Now     time.Time
	mutates []func(*booking.Draft) error
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		Service: NewServiceBuilder().MustBuild(),
		Now:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

// Mutate queues a change applied to the seeded draft in order.
func (b *DraftBuilder) Mutate(fn func(*booking.Draft) error) *DraftBuilder {
	b.mutates = append(b.mutates, fn)
	return b
}

// ReadyForReview fills the fields submission requires.
func (b *DraftBuilder) ReadyForReview() *DraftBuilder {
	return b.Mutate(func(d *booking.Draft) error {
		if err := d.SetAddress("12 Example St"); err != nil {
			return err
		}
		if err := d.SetPostcode("2000"); err != nil {
			return err
		}
		return d.UpdateCustomerInfo(booking.CustomerInfo{
			FirstName: "Alex",
			LastName:  "Smith",
			Email:     "alex@example.com",
		})
	})
}

func (b *DraftBuilder) Build() (*booking.Draft, error) {
	draft := booking.NewDraft(b.Service, clock.NewMockClock(b.Now))
	for _, fn := range b.mutates {
		if err := fn(draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

func (b *DraftBuilder) MustBuild() *booking.Draft {
	draft, err := b.Build()
	if err != nil {
		panic(err)
	}
	return draft
}
