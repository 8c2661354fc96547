package booking

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const civilDateLayout = "2006-01-02"

// CivilDate is a calendar date with no wall-clock or timezone attached.
// All arithmetic happens in UTC so a booking made late at night never
// shifts to a neighbouring day.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.ParseInLocation(civilDateLayout, s, time.UTC)
	if err != nil {
		return CivilDate{}, ErrInvalidDate
	}
	return CivilDateOf(t), nil
}

// CivilDateOf truncates t to its UTC calendar date.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.UTC().Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CivilDate) String() string {
	return d.Time().Format(civilDateLayout)
}

func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

func (d CivilDate) AddDays(days int) CivilDate {
	return CivilDateOf(d.Time().AddDate(0, 0, days))
}

// AddMonthsClamped advances the date by the given number of months. When
// the day-of-month does not exist in the target month (Jan 31 + 1 month),
// the result clamps to the last day of the target month instead of
// overflowing forward.
func (d CivilDate) AddMonthsClamped(months int) CivilDate {
	// Normalize year/month first, then clamp the day.
	firstOfTarget := time.Date(d.Year, d.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := d.Day
	if day > lastDay {
		day = lastDay
	}
	return CivilDate{Year: firstOfTarget.Year(), Month: firstOfTarget.Month(), Day: day}
}

func (d CivilDate) Before(other CivilDate) bool {
	return d.Time().Before(other.Time())
}

func (d CivilDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CivilDate) UnmarshalText(text []byte) error {
	parsed, err := ParseCivilDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
