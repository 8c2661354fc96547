package booking

type Recurrence string

const (
	RecurrenceOneTime     Recurrence = "one-time"
	RecurrenceWeekly      Recurrence = "weekly"
	RecurrenceFortnightly Recurrence = "fortnightly"
	RecurrenceMonthly     Recurrence = "monthly"
)

func (r Recurrence) String() string {
	return string(r)
}

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceOneTime, RecurrenceWeekly, RecurrenceFortnightly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

func (r Recurrence) IsRecurring() bool {
	return r.IsValid() && r != RecurrenceOneTime
}

// ListKind selects which configured item list an operation targets.
type ListKind string

const (
	ListIncluded ListKind = "included"
	ListExtra    ListKind = "extra"
)

func (k ListKind) IsValid() bool {
	switch k {
	case ListIncluded, ListExtra:
		return true
	default:
		return false
	}
}

// Stage is the booking flow position of a draft. Unknown or disabled
// service ids never produce a draft at all, so there is no loading stage
// here; that decision lives in the catalog lookup.
type Stage string

const (
	StageConfiguring   Stage = "configuring"
	StageSummaryReview Stage = "summary_review"
	StageSubmitted     Stage = "submitted"
)

func (s Stage) String() string {
	return string(s)
}

const (
	// Contract durations offered for recurring bookings.
	MinRecurringContractDuration = 2
	MaxContractDuration          = 12
)

// TimeWindow is one selectable service window.
type TimeWindow struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeWindows lists the hourly service windows offered at booking time.
func TimeWindows() []TimeWindow {
	windows := make([]TimeWindow, 0, 10)
	for h := 7; h < 17; h++ {
		windows = append(windows, TimeWindow{
			Value: formatHour(h),
			Label: formatHour(h) + " - " + formatHour(h+1),
		})
	}
	return windows
}

func IsValidTimeWindow(value string) bool {
	for _, w := range TimeWindows() {
		if w.Value == value {
			return true
		}
	}
	return false
}

func formatHour(h int) string {
	return string([]byte{byte('0' + h/10), byte('0' + h%10)}) + ":00"
}
