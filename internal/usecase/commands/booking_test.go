//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra/catalogstore"
	"tidybook/internal/infra/checkout"
	"tidybook/internal/infra/sessionstore"
	"tidybook/internal/pkg/clock"
	"tidybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// The command layer is exercised against the real in-memory stores rather
// than mocks; the embedded catalog is the fixture.
type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	clk      *clock.MockClock
	sessions *sessionstore.Memory
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clk = clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	catalogStore, err := catalogstore.NewStatic()
	s.Require().NoError(err)

	s.sessions = sessionstore.NewMemory(2*time.Hour, s.clk)
	gateway := checkout.NewSimulated(slog.New(slog.NewTextHandler(io.Discard, nil)))
	policy := catalog.NewEligibilityPolicy([]string{"9999"})

	s.commands = commands.NewBookingCommands(catalogStore, s.sessions, gateway, policy, s.clk)
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) startDraft() uuid.UUID {
	result, err := s.commands.StartDraft(s.ctx, "house-cleaning")
	s.Require().NoError(err)
	return result.View.SessionID
}

func (s *BookingCommandsTestSuite) fillRequired(sessionID uuid.UUID, postcode string) {
	address := "12 Example St"
	_, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{
		Address:  &address,
		Postcode: &postcode,
		CustomerInfo: &booking.CustomerInfo{
			FirstName: "Alex",
			Email:     "alex@example.com",
		},
	})
	s.Require().NoError(err)
}

func (s *BookingCommandsTestSuite) TestStartDraft() {
	s.Run("seeds a draft and persists the session", func() {
		result, err := s.commands.StartDraft(s.ctx, "house-cleaning")
		s.Require().NoError(err)

		s.NotEqual(uuid.Nil, result.View.SessionID)
		s.Equal("house-cleaning", result.View.Draft.ServiceID)
		s.Equal(int64(12500), result.View.TotalCents)
		s.Empty(result.View.FutureOccurrences)

		stored, err := s.sessions.Get(s.ctx, result.View.SessionID)
		s.Require().NoError(err)
		s.Equal(booking.StageConfiguring, stored.Stage)
	})

	s.Run("unknown service", func() {
		_, err := s.commands.StartDraft(s.ctx, "window-washing")
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("disabled service is treated as absent", func() {
		_, err := s.commands.StartDraft(s.ctx, "gardening")
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("each start opens an independent session", func() {
		first := s.startDraft()
		second := s.startDraft()
		s.NotEqual(first, second)

		address := "9 Divergent Rd"
		_, err := s.commands.UpdateDraft(s.ctx, first, commands.UpdateDraftParams{Address: &address})
		s.Require().NoError(err)

		view, err := s.sessions.Get(s.ctx, second)
		s.Require().NoError(err)
		s.Empty(view.Address)
	})
}

func (s *BookingCommandsTestSuite) TestUpdateDraft() {
	s.Run("patch persists and reprices", func() {
		sessionID := s.startDraft()

		days := 2
		result, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{NumberOfDays: &days})
		s.Require().NoError(err)

		s.Equal(2, result.View.Draft.NumberOfDays)
		s.Equal(int64(25000), result.View.TotalCents)
		s.Nil(result.Notice)
	})

	s.Run("switching to recurring returns a notice and future dates", func() {
		sessionID := s.startDraft()

		recurrence := booking.RecurrenceWeekly
		result, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{Recurrence: &recurrence})
		s.Require().NoError(err)

		s.Require().NotNil(result.Notice)
		s.Equal("Weekly Recurrence", result.Notice.Title)
		s.Equal(2, result.View.Draft.ContractDuration)
		s.Equal([]string{"2024-03-08"}, result.View.FutureOccurrences)
	})

	s.Run("rejected patch leaves the stored draft untouched", func() {
		sessionID := s.startDraft()

		address := "3 Kept St"
		days := 0
		_, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{
			Address:      &address,
			NumberOfDays: &days,
		})
		s.ErrorIs(err, booking.ErrInvalidNumberOfDays)

		stored, err := s.sessions.Get(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Empty(stored.Address, "partial patch must not persist")
		s.Equal(1, stored.NumberOfDays)
	})

	s.Run("unknown session", func() {
		_, err := s.commands.UpdateDraft(s.ctx, uuid.New(), commands.UpdateDraftParams{})
		s.ErrorIs(err, commands.ErrDraftNotFound)
	})

	s.Run("expired session", func() {
		sessionID := s.startDraft()
		s.clk.Add(3 * time.Hour)

		_, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{})
		s.ErrorIs(err, commands.ErrDraftNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestSetItemQuantity() {
	sessionID := s.startDraft()

	view, err := s.commands.SetItemQuantity(s.ctx, sessionID, "inc-bed", 3, booking.ListIncluded)
	s.Require().NoError(err)
	s.Equal(3, view.Draft.ItemQuantity("inc-bed", booking.ListIncluded))
	s.Equal(int64(12500+2*2500), view.TotalCents)

	_, err = s.commands.SetItemQuantity(s.ctx, sessionID, "sauna", 1, booking.ListIncluded)
	s.ErrorIs(err, booking.ErrItemNotFound)
}

func (s *BookingCommandsTestSuite) TestSubmitAndReopen() {
	s.Run("missing fields block submission", func() {
		sessionID := s.startDraft()

		_, err := s.commands.SubmitForReview(s.ctx, sessionID)
		s.ErrorIs(err, booking.ErrRequiredFieldMissing)
	})

	s.Run("override postcode is accepted", func() {
		sessionID := s.startDraft()
		s.fillRequired(sessionID, "9999")

		view, err := s.commands.SubmitForReview(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(booking.StageSummaryReview, view.Draft.Stage)
	})

	s.Run("unserviceable postcode is rejected", func() {
		sessionID := s.startDraft()
		s.fillRequired(sessionID, "7777")

		_, err := s.commands.SubmitForReview(s.ctx, sessionID)
		s.ErrorIs(err, booking.ErrPostcodeNotServiceable)
	})

	s.Run("reopen returns the draft to configuring", func() {
		sessionID := s.startDraft()
		s.fillRequired(sessionID, "2000")

		_, err := s.commands.SubmitForReview(s.ctx, sessionID)
		s.Require().NoError(err)

		view, err := s.commands.ReopenDraft(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(booking.StageConfiguring, view.Draft.Stage)
	})
}

func (s *BookingCommandsTestSuite) TestCheckout() {
	submitted := func(agree bool) uuid.UUID {
		sessionID := s.startDraft()
		s.fillRequired(sessionID, "2000")
		if agree {
			agreed := true
			_, err := s.commands.UpdateDraft(s.ctx, sessionID, commands.UpdateDraftParams{AgreedToTerms: &agreed})
			s.Require().NoError(err)
		}
		_, err := s.commands.SubmitForReview(s.ctx, sessionID)
		s.Require().NoError(err)
		return sessionID
	}

	s.Run("issues a receipt and discards the session", func() {
		sessionID := submitted(true)

		result, err := s.commands.Checkout(s.ctx, sessionID)
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, result.Receipt.ReceiptID)
		s.Equal(int64(12500), result.Receipt.TotalCents)

		_, err = s.commands.Checkout(s.ctx, sessionID)
		s.ErrorIs(err, commands.ErrDraftNotFound, "session must not outlive checkout")
	})

	s.Run("requires agreed terms", func() {
		sessionID := submitted(false)

		_, err := s.commands.Checkout(s.ctx, sessionID)
		s.ErrorIs(err, booking.ErrTermsNotAccepted)

		stored, err := s.sessions.Get(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(booking.StageSummaryReview, stored.Stage)
	})

	s.Run("requires summary review", func() {
		sessionID := s.startDraft()

		_, err := s.commands.Checkout(s.ctx, sessionID)
		s.ErrorIs(err, booking.ErrNotInSummaryReview)
	})
}

func (s *BookingCommandsTestSuite) TestDiscardDraft() {
	sessionID := s.startDraft()

	require.NoError(s.T(), s.commands.DiscardDraft(s.ctx, sessionID))

	err := s.commands.DiscardDraft(s.ctx, sessionID)
	assert.ErrorIs(s.T(), err, commands.ErrDraftNotFound)
}
