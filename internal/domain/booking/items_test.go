//go:build unit

package booking_test

import (
	"testing"

	"tidybook/internal/domain/booking"
	"tidybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItemQuantity(t *testing.T) {
	t.Run("included item updates quantity", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		require.NoError(t, draft.SetItemQuantity(b.Service, "bedrooms", 3, booking.ListIncluded))
		assert.Equal(t, 3, draft.ItemQuantity("bedrooms", booking.ListIncluded))
	})

	t.Run("included item clamps below its minimum", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		for _, quantity := range []int{0, -5} {
			require.NoError(t, draft.SetItemQuantity(b.Service, "bedrooms", quantity, booking.ListIncluded))
			assert.Equal(t, 1, draft.ItemQuantity("bedrooms", booking.ListIncluded))
		}
	})

	t.Run("counter extra takes any positive quantity", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		require.NoError(t, draft.SetItemQuantity(b.Service, "windows", 6, booking.ListExtra))
		assert.Equal(t, 6, draft.ItemQuantity("windows", booking.ListExtra))
	})

	t.Run("checkbox extra pins quantity to one", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		require.NoError(t, draft.SetItemQuantity(b.Service, "oven-cleaning", 7, booking.ListExtra))
		assert.Equal(t, 1, draft.ItemQuantity("oven-cleaning", booking.ListExtra))
	})

	t.Run("extra at zero is removed entirely", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		require.NoError(t, draft.SetItemQuantity(b.Service, "windows", 4, booking.ListExtra))
		require.NoError(t, draft.SetItemQuantity(b.Service, "windows", 0, booking.ListExtra))

		assert.Equal(t, 0, draft.ItemQuantity("windows", booking.ListExtra))
		assert.Empty(t, draft.ExtraItems)
	})

	t.Run("removed extra re-adds at current catalog price", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		require.NoError(t, draft.SetItemQuantity(b.Service, "windows", 2, booking.ListExtra))
		require.NoError(t, draft.SetItemQuantity(b.Service, "windows", 0, booking.ListExtra))

		// Catalog price moved while the extra was off the draft.
		repriced := builder.NewServiceBuilder().With(func(sb *builder.ServiceBuilder) {
			sb.ExtraItems[1].UnitPriceCents = 1800
		}).MustBuild()

		require.NoError(t, draft.SetItemQuantity(repriced, "windows", 2, booking.ListExtra))
		assert.Equal(t, int64(12500+2*1800), booking.Quote(draft, repriced).Cents())
	})

	t.Run("unknown item id", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		err := draft.SetItemQuantity(b.Service, "sauna", 1, booking.ListIncluded)
		assert.ErrorIs(t, err, booking.ErrItemNotFound)

		err = draft.SetItemQuantity(b.Service, "sauna", 1, booking.ListExtra)
		assert.ErrorIs(t, err, booking.ErrItemNotFound)
	})

	t.Run("invalid list kind", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		err := draft.SetItemQuantity(b.Service, "bedrooms", 1, booking.ListKind("upsell"))
		assert.ErrorIs(t, err, booking.ErrInvalidListKind)
	})
}

func TestToggleExtra(t *testing.T) {
	b := builder.NewDraftBuilder()
	draft := b.MustBuild()

	require.NoError(t, draft.ToggleExtra(b.Service, "oven-cleaning", true))
	assert.Equal(t, 1, draft.ItemQuantity("oven-cleaning", booking.ListExtra))

	require.NoError(t, draft.ToggleExtra(b.Service, "oven-cleaning", false))
	assert.Equal(t, 0, draft.ItemQuantity("oven-cleaning", booking.ListExtra))
	assert.Empty(t, draft.ExtraItems)
}
