//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	"tidybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := booking.ParseCivilDate("2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, booking.NewCivilDate(2024, time.March, 1), d)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "2024-3-1", "01/03/2024", "2024-13-01", "2024-02-30", "garbage"} {
			_, err := booking.ParseCivilDate(input)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, "input %q", input)
		}
	})

	t.Run("truncates wall clock to UTC date", func(t *testing.T) {
		// 08:30 in UTC+10 is still the previous UTC day
		sydney := time.FixedZone("AEST", 10*60*60)
		d := booking.CivilDateOf(time.Date(2024, 3, 2, 8, 30, 0, 0, sydney))
		assert.Equal(t, booking.NewCivilDate(2024, time.March, 1), d)
	})
}

func TestCivilDateArithmetic(t *testing.T) {
	t.Run("add days crosses month boundary", func(t *testing.T) {
		d := booking.NewCivilDate(2024, time.February, 26).AddDays(7)
		assert.Equal(t, booking.NewCivilDate(2024, time.March, 4), d)
	})

	t.Run("add months clamps to end of shorter month", func(t *testing.T) {
		tests := []struct {
			name   string
			start  booking.CivilDate
			months int
			want   booking.CivilDate
		}{
			{
				name:   "jan 31 to leap february",
				start:  booking.NewCivilDate(2024, time.January, 31),
				months: 1,
				want:   booking.NewCivilDate(2024, time.February, 29),
			},
			{
				name:   "jan 31 to non-leap february",
				start:  booking.NewCivilDate(2023, time.January, 31),
				months: 1,
				want:   booking.NewCivilDate(2023, time.February, 28),
			},
			{
				name:   "clamping does not stick for longer months",
				start:  booking.NewCivilDate(2024, time.January, 31),
				months: 2,
				want:   booking.NewCivilDate(2024, time.March, 31),
			},
			{
				name:   "mid-month day never clamps",
				start:  booking.NewCivilDate(2024, time.January, 15),
				months: 1,
				want:   booking.NewCivilDate(2024, time.February, 15),
			},
			{
				name:   "crosses year boundary",
				start:  booking.NewCivilDate(2024, time.November, 30),
				months: 3,
				want:   booking.NewCivilDate(2025, time.February, 28),
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.start.AddMonthsClamped(tt.months))
			})
		}
	})
}

func TestCivilDateJSON(t *testing.T) {
	d := booking.NewCivilDate(2024, time.March, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var parsed booking.CivilDate
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)
}
