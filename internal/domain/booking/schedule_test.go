//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tidybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestFutureOccurrences(t *testing.T) {
	start := booking.NewCivilDate(2024, time.March, 1)

	tests := []struct {
		name       string
		start      booking.CivilDate
		recurrence booking.Recurrence
		duration   int
		want       []booking.CivilDate
	}{
		{
			name:       "one-time never repeats",
			start:      start,
			recurrence: booking.RecurrenceOneTime,
			duration:   5,
			want:       nil,
		},
		{
			name:       "duration one has no repeats",
			start:      start,
			recurrence: booking.RecurrenceWeekly,
			duration:   1,
			want:       nil,
		},
		{
			name:       "weekly for two occurrences",
			start:      start,
			recurrence: booking.RecurrenceWeekly,
			duration:   2,
			want: []booking.CivilDate{
				booking.NewCivilDate(2024, time.March, 8),
			},
		},
		{
			name:       "weekly for four occurrences",
			start:      start,
			recurrence: booking.RecurrenceWeekly,
			duration:   4,
			want: []booking.CivilDate{
				booking.NewCivilDate(2024, time.March, 8),
				booking.NewCivilDate(2024, time.March, 15),
				booking.NewCivilDate(2024, time.March, 22),
			},
		},
		{
			name:       "fortnightly steps fourteen days",
			start:      start,
			recurrence: booking.RecurrenceFortnightly,
			duration:   3,
			want: []booking.CivilDate{
				booking.NewCivilDate(2024, time.March, 15),
				booking.NewCivilDate(2024, time.March, 29),
			},
		},
		{
			name:       "monthly from end of january clamps each month independently",
			start:      booking.NewCivilDate(2024, time.January, 31),
			recurrence: booking.RecurrenceMonthly,
			duration:   3,
			want: []booking.CivilDate{
				booking.NewCivilDate(2024, time.February, 29),
				booking.NewCivilDate(2024, time.March, 31),
			},
		},
		{
			name:       "monthly crosses year boundary",
			start:      booking.NewCivilDate(2024, time.November, 15),
			recurrence: booking.RecurrenceMonthly,
			duration:   4,
			want: []booking.CivilDate{
				booking.NewCivilDate(2024, time.December, 15),
				booking.NewCivilDate(2025, time.January, 15),
				booking.NewCivilDate(2025, time.February, 15),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.FutureOccurrences(tt.start, tt.recurrence, tt.duration)
			assert.Equal(t, tt.want, got)
		})
	}
}
