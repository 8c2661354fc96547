package booking

// RecurrenceNotice is emitted when a draft switches to a recurring plan.
// The presentation layer shows it to the customer; pricing and scheduling
// never consume it.
type RecurrenceNotice struct {
	Recurrence Recurrence `json:"recurrence"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
}

func noticeFor(recurrence Recurrence) *RecurrenceNotice {
	var name, cadence string
	switch recurrence {
	case RecurrenceWeekly:
		name = "Weekly"
		cadence = "weekly"
	case RecurrenceFortnightly:
		name = "Fortnightly"
		cadence = "every 15 days"
	case RecurrenceMonthly:
		name = "Monthly"
		cadence = "every 30 days"
	default:
		return nil
	}

	return &RecurrenceNotice{
		Recurrence: recurrence,
		Title:      name + " Recurrence",
		Message: "The " + name + " recurrence will execute the chosen service " + cadence +
			" at the specified address until this contract is concluded or cancelled. " +
			"Payment will be processed 48h before each service.",
	}
}
