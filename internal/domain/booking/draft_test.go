//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	b := builder.NewDraftBuilder()
	draft := b.MustBuild()

	assert.Equal(t, "house-cleaning", draft.ServiceID)
	assert.Equal(t, "House Cleaning", draft.ServiceName)
	assert.Equal(t, int64(5000), draft.ServiceBasePriceCents)
	assert.Equal(t, booking.RecurrenceOneTime, draft.Recurrence)
	assert.Equal(t, booking.NewCivilDate(2024, time.March, 1), draft.StartDate)
	assert.Equal(t, 1, draft.NumberOfDays)
	assert.Equal(t, "07:00", draft.TimeWindow)
	assert.Equal(t, 1, draft.ContractDuration)
	assert.Equal(t, booking.StageConfiguring, draft.Stage)
	assert.False(t, draft.AgreedToTerms)

	// every included item seeded at its default quantity, no extras
	require.Len(t, draft.IncludedItems, 3)
	for _, item := range draft.IncludedItems {
		assert.Equal(t, 1, item.Quantity, "item %s", item.ItemID)
	}
	assert.Empty(t, draft.ExtraItems)

	// customer assumed to have their own supplies until told otherwise
	assert.True(t, draft.Preferences.HasCleaningProducts)
	assert.True(t, draft.Preferences.HasCleaningEquipment)
}

func TestSetRecurrence(t *testing.T) {
	t.Run("switching to recurring bumps contract duration and returns a notice", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		notice, err := draft.SetRecurrence(booking.RecurrenceWeekly)
		require.NoError(t, err)
		require.NotNil(t, notice)
		assert.Equal(t, booking.RecurrenceWeekly, notice.Recurrence)
		assert.Equal(t, "Weekly Recurrence", notice.Title)
		assert.Contains(t, notice.Message, "Payment will be processed 48h before each service")
		assert.Equal(t, booking.MinRecurringContractDuration, draft.ContractDuration)
	})

	t.Run("longer duration survives a recurrence change", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		_, err := draft.SetRecurrence(booking.RecurrenceWeekly)
		require.NoError(t, err)
		require.NoError(t, draft.SetContractDuration(6))

		_, err = draft.SetRecurrence(booking.RecurrenceMonthly)
		require.NoError(t, err)
		assert.Equal(t, 6, draft.ContractDuration)
	})

	t.Run("switching back to one-time pins duration to one without a notice", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		_, err := draft.SetRecurrence(booking.RecurrenceFortnightly)
		require.NoError(t, err)

		notice, err := draft.SetRecurrence(booking.RecurrenceOneTime)
		require.NoError(t, err)
		assert.Nil(t, notice)
		assert.Equal(t, 1, draft.ContractDuration)
	})

	t.Run("invalid recurrence", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		_, err := draft.SetRecurrence(booking.Recurrence("yearly"))
		assert.ErrorIs(t, err, booking.ErrInvalidRecurrence)
	})
}

func TestSetContractDuration(t *testing.T) {
	tests := []struct {
		name       string
		recurrence booking.Recurrence
		duration   int
		errIs      error
	}{
		{name: "one-time accepts exactly one", recurrence: booking.RecurrenceOneTime, duration: 1},
		{name: "one-time rejects more than one", recurrence: booking.RecurrenceOneTime, duration: 3, errIs: booking.ErrInvalidContractDuration},
		{name: "recurring minimum", recurrence: booking.RecurrenceWeekly, duration: 2},
		{name: "recurring maximum", recurrence: booking.RecurrenceWeekly, duration: 12},
		{name: "recurring below minimum", recurrence: booking.RecurrenceWeekly, duration: 1, errIs: booking.ErrInvalidContractDuration},
		{name: "recurring above maximum", recurrence: booking.RecurrenceMonthly, duration: 13, errIs: booking.ErrInvalidContractDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := builder.NewDraftBuilder().MustBuild()
			_, err := draft.SetRecurrence(tt.recurrence)
			require.NoError(t, err)

			err = draft.SetContractDuration(tt.duration)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.duration, draft.ContractDuration)
			}
		})
	}
}

func TestFieldValidation(t *testing.T) {
	draft := builder.NewDraftBuilder().MustBuild()

	assert.ErrorIs(t, draft.SetNumberOfDays(0), booking.ErrInvalidNumberOfDays)
	assert.ErrorIs(t, draft.SetTimeWindow("06:00"), booking.ErrInvalidTimeWindow)
	assert.ErrorIs(t, draft.SetTimeWindow("noonish"), booking.ErrInvalidTimeWindow)
	assert.ErrorIs(t, draft.SetPointsApplied(-1), booking.ErrNegativePoints)

	require.NoError(t, draft.SetTimeWindow("16:00"))
	assert.Equal(t, "16:00", draft.TimeWindow)
}

func TestSubmitForReview(t *testing.T) {
	policy := catalog.NewEligibilityPolicy(nil)

	t.Run("reports every missing required field at once", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		err := draft.SubmitForReview(b.Service, policy)
		require.ErrorIs(t, err, booking.ErrRequiredFieldMissing)

		var missing *booking.RequiredFieldsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"address", "postcode", "firstName", "email"}, missing.Fields)
		assert.Equal(t, booking.StageConfiguring, draft.Stage)
	})

	t.Run("rejects a postcode the service does not cover", func(t *testing.T) {
		b := builder.NewDraftBuilder().ReadyForReview().Mutate(func(d *booking.Draft) error {
			return d.SetPostcode("9999")
		})
		draft := b.MustBuild()

		err := draft.SubmitForReview(b.Service, policy)
		assert.ErrorIs(t, err, booking.ErrPostcodeNotServiceable)
		assert.Equal(t, booking.StageConfiguring, draft.Stage)
	})

	t.Run("override list widens eligibility", func(t *testing.T) {
		b := builder.NewDraftBuilder().ReadyForReview().Mutate(func(d *booking.Draft) error {
			return d.SetPostcode("9999")
		})
		draft := b.MustBuild()

		widened := catalog.NewEligibilityPolicy([]string{"9999"})
		require.NoError(t, draft.SubmitForReview(b.Service, widened))
		assert.Equal(t, booking.StageSummaryReview, draft.Stage)
	})

	t.Run("complete draft moves to summary review", func(t *testing.T) {
		b := builder.NewDraftBuilder().ReadyForReview()
		draft := b.MustBuild()

		require.NoError(t, draft.SubmitForReview(b.Service, policy))
		assert.Equal(t, booking.StageSummaryReview, draft.Stage)
	})
}

func TestReturnToConfiguring(t *testing.T) {
	b := builder.NewDraftBuilder().ReadyForReview()
	draft := b.MustBuild()
	policy := catalog.NewEligibilityPolicy(nil)

	require.NoError(t, draft.SubmitForReview(b.Service, policy))
	require.NoError(t, draft.ReturnToConfiguring())
	assert.Equal(t, booking.StageConfiguring, draft.Stage)

	// fields stay editable again
	assert.NoError(t, draft.SetAddress("34 Other St"))
}

func TestConfirmCheckout(t *testing.T) {
	policy := catalog.NewEligibilityPolicy(nil)

	submitted := func(t *testing.T, agree bool) (*booking.Draft, *catalog.Service) {
		t.Helper()
		b := builder.NewDraftBuilder().ReadyForReview()
		if agree {
			b.Mutate(func(d *booking.Draft) error { return d.SetAgreedToTerms(true) })
		}
		draft := b.MustBuild()
		require.NoError(t, draft.SubmitForReview(b.Service, policy))
		return draft, b.Service
	}

	t.Run("requires summary review stage", func(t *testing.T) {
		b := builder.NewDraftBuilder().ReadyForReview()
		draft := b.MustBuild()

		_, err := draft.ConfirmCheckout(b.Service)
		assert.ErrorIs(t, err, booking.ErrNotInSummaryReview)
	})

	t.Run("requires agreed terms", func(t *testing.T) {
		draft, svc := submitted(t, false)

		_, err := draft.ConfirmCheckout(svc)
		assert.ErrorIs(t, err, booking.ErrTermsNotAccepted)
		assert.Equal(t, booking.StageSummaryReview, draft.Stage)
	})

	t.Run("produces the payload and finalizes the draft", func(t *testing.T) {
		draft, svc := submitted(t, true)

		payload, err := draft.ConfirmCheckout(svc)
		require.NoError(t, err)
		assert.Equal(t, int64(12500), payload.TotalCents)
		assert.Equal(t, booking.StageSubmitted, draft.Stage)
		assert.Equal(t, booking.StageSubmitted, payload.Draft.Stage)
	})

	t.Run("finalized draft rejects everything", func(t *testing.T) {
		draft, svc := submitted(t, true)
		_, err := draft.ConfirmCheckout(svc)
		require.NoError(t, err)

		_, err = draft.ConfirmCheckout(svc)
		assert.ErrorIs(t, err, booking.ErrDraftFinalized)
		assert.ErrorIs(t, draft.SetAddress("1 New St"), booking.ErrDraftFinalized)
		assert.ErrorIs(t, draft.SetItemQuantity(svc, "bedrooms", 2, booking.ListIncluded), booking.ErrDraftFinalized)
		assert.ErrorIs(t, draft.ReturnToConfiguring(), booking.ErrDraftFinalized)
		assert.ErrorIs(t, draft.SubmitForReview(svc, policy), booking.ErrDraftFinalized)
	})
}

func TestDraftFutureOccurrences(t *testing.T) {
	draft := builder.NewDraftBuilder().MustBuild()

	_, err := draft.SetRecurrence(booking.RecurrenceWeekly)
	require.NoError(t, err)

	assert.Equal(t, []booking.CivilDate{
		booking.NewCivilDate(2024, time.March, 8),
	}, draft.FutureOccurrences())
}
