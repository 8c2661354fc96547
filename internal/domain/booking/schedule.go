package booking

// FutureOccurrences returns the dates a recurring booking will run after
// its first occurrence. The start date is occurrence 0 and is not part of
// the result, so the sequence holds max(0, contractDuration-1) dates.
// One-time bookings have no repeats and always yield an empty sequence.
func FutureOccurrences(start CivilDate, recurrence Recurrence, contractDuration int) []CivilDate {
	if !recurrence.IsRecurring() || contractDuration <= 1 {
		return nil
	}

	dates := make([]CivilDate, 0, contractDuration-1)
	for i := 1; i < contractDuration; i++ {
		switch recurrence {
		case RecurrenceWeekly:
			dates = append(dates, start.AddDays(7*i))
		case RecurrenceFortnightly:
			dates = append(dates, start.AddDays(14*i))
		case RecurrenceMonthly:
			dates = append(dates, start.AddMonthsClamped(i))
		}
	}
	return dates
}
