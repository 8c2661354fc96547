package booking

import (
	"errors"
	"strings"

	"tidybook/internal/domain/catalog"
	"tidybook/internal/pkg/clock"
)

var (
	ErrInvalidRecurrence       = errors.New("invalid recurrence type")
	ErrInvalidNumberOfDays     = errors.New("number of days must be at least 1")
	ErrInvalidTimeWindow       = errors.New("invalid time window")
	ErrInvalidContractDuration = errors.New("invalid contract duration")
	ErrNegativePoints          = errors.New("points applied cannot be negative")
	ErrItemNotFound            = errors.New("item not found in service configuration")
	ErrInvalidListKind         = errors.New("invalid item list kind")
	ErrRequiredFieldMissing    = errors.New("required field missing")
	ErrPostcodeNotServiceable  = errors.New("postcode not serviceable")
	ErrTermsNotAccepted        = errors.New("terms and conditions not accepted")
	ErrNotInSummaryReview      = errors.New("draft is not in summary review")
	ErrDraftFinalized          = errors.New("draft has already been submitted")
)

// Draft is one in-progress booking. It lives for a single session: created
// when an enabled service is resolved, mutated field by field, discarded on
// navigation away or after checkout. The service name and base price are
// snapshots so catalog edits don't move the price under the customer.
type Draft struct {
	ServiceID             string       `json:"serviceId"`
	ServiceName           string       `json:"serviceName"`
	ServiceBasePriceCents int64        `json:"serviceBasePriceCents"`
	Address               string       `json:"address"`
	Postcode              string       `json:"postcode"`
	Recurrence            Recurrence   `json:"recurrence"`
	StartDate             CivilDate    `json:"startDate"`
	NumberOfDays          int          `json:"numberOfDays"`
	TimeWindow            string       `json:"timeWindow"`
	IncludedItems         []Item       `json:"configuredIncludedItems"`
	ExtraItems            []Item       `json:"configuredExtraItems"`
	Preferences           Preferences  `json:"preferences"`
	CustomerInfo          CustomerInfo `json:"customerInfo"`
	ContractDuration      int          `json:"contractDuration"`
	AgreedToTerms         bool         `json:"agreedToTerms"`
	DiscountCode          string       `json:"discountCode"`
	PointsApplied         int          `json:"pointsApplied"`
	Stage                 Stage        `json:"stage"`
}

// NewDraft seeds a draft from an enabled service: every included item at
// its default quantity, no extras, the customer assumed to have their own
// cleaning products and equipment.
func NewDraft(svc *catalog.Service, clk clock.Clock) *Draft {
	includes := svc.IncludedItems()
	items := make([]Item, 0, len(includes))
	for _, cfg := range includes {
		items = append(items, Item{
			ItemID:         cfg.ID,
			Name:           cfg.Name,
			Quantity:       cfg.DefaultQuantity,
			UnitPriceCents: cfg.UnitPriceCents,
		})
	}

	return &Draft{
		ServiceID:             svc.ID(),
		ServiceName:           svc.Name(),
		ServiceBasePriceCents: svc.BasePriceCents(),
		Recurrence:            RecurrenceOneTime,
		StartDate:             CivilDateOf(clk.Now()),
		NumberOfDays:          1,
		TimeWindow:            TimeWindows()[0].Value,
		IncludedItems:         items,
		ExtraItems:            []Item{},
		Preferences: Preferences{
			HasCleaningProducts:  true,
			HasCleaningEquipment: true,
		},
		ContractDuration: 1,
		Stage:            StageConfiguring,
	}
}

func (d *Draft) ensureEditable() error {
	if d.Stage == StageSubmitted {
		return ErrDraftFinalized
	}
	return nil
}

func (d *Draft) SetAddress(address string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.Address = address
	return nil
}

func (d *Draft) SetPostcode(postcode string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.Postcode = strings.TrimSpace(postcode)
	return nil
}

// SetRecurrence switches the plan and returns a notice for recurring types.
// Moving to a recurring plan bumps a meaningless contract duration of 1 up
// to the recurring minimum; moving back to one-time pins it to 1.
func (d *Draft) SetRecurrence(recurrence Recurrence) (*RecurrenceNotice, error) {
	if err := d.ensureEditable(); err != nil {
		return nil, err
	}
	if !recurrence.IsValid() {
		return nil, ErrInvalidRecurrence
	}

	d.Recurrence = recurrence
	if recurrence.IsRecurring() {
		if d.ContractDuration < MinRecurringContractDuration {
			d.ContractDuration = MinRecurringContractDuration
		}
	} else {
		d.ContractDuration = 1
	}
	return noticeFor(recurrence), nil
}

func (d *Draft) SetStartDate(date CivilDate) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.StartDate = date
	return nil
}

func (d *Draft) SetNumberOfDays(days int) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if days < 1 {
		return ErrInvalidNumberOfDays
	}
	d.NumberOfDays = days
	return nil
}

func (d *Draft) SetTimeWindow(value string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if !IsValidTimeWindow(value) {
		return ErrInvalidTimeWindow
	}
	d.TimeWindow = value
	return nil
}

func (d *Draft) SetContractDuration(duration int) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if d.Recurrence.IsRecurring() {
		if duration < MinRecurringContractDuration || duration > MaxContractDuration {
			return ErrInvalidContractDuration
		}
	} else if duration != 1 {
		return ErrInvalidContractDuration
	}
	d.ContractDuration = duration
	return nil
}

func (d *Draft) UpdatePreferences(prefs Preferences) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.Preferences = prefs
	return nil
}

func (d *Draft) UpdateCustomerInfo(info CustomerInfo) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.CustomerInfo = info
	return nil
}

func (d *Draft) SetAgreedToTerms(agreed bool) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.AgreedToTerms = agreed
	return nil
}

func (d *Draft) SetDiscountCode(code string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.DiscountCode = strings.TrimSpace(code)
	return nil
}

func (d *Draft) SetPointsApplied(points int) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if points < 0 {
		return ErrNegativePoints
	}
	d.PointsApplied = points
	return nil
}

// FutureOccurrences lists the repeat dates implied by the draft's own
// recurrence settings.
func (d *Draft) FutureOccurrences() []CivilDate {
	return FutureOccurrences(d.StartDate, d.Recurrence, d.ContractDuration)
}

// MissingRequiredFields reports every empty field that blocks progression
// to summary review, so the customer can fix them all at once.
func (d *Draft) MissingRequiredFields() []string {
	var missing []string
	if strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(d.Postcode) == "" {
		missing = append(missing, "postcode")
	}
	if strings.TrimSpace(d.CustomerInfo.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(d.CustomerInfo.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}

// RequiredFieldsError lists every field blocking summary review. It
// matches ErrRequiredFieldMissing under errors.Is.
type RequiredFieldsError struct {
	Fields []string
}

func (e *RequiredFieldsError) Error() string {
	return "required field missing: " + strings.Join(e.Fields, ", ")
}

func (e *RequiredFieldsError) Is(target error) bool {
	return target == ErrRequiredFieldMissing
}

// SubmitForReview moves Configuring -> SummaryReview. On any validation
// failure the draft stays in Configuring with all fields untouched.
func (d *Draft) SubmitForReview(svc *catalog.Service, policy catalog.EligibilityPolicy) error {
	if d.Stage == StageSubmitted {
		return ErrDraftFinalized
	}
	if missing := d.MissingRequiredFields(); len(missing) > 0 {
		return &RequiredFieldsError{Fields: missing}
	}
	if !policy.Allows(svc, d.Postcode) {
		return ErrPostcodeNotServiceable
	}
	d.Stage = StageSummaryReview
	return nil
}

// ReturnToConfiguring reopens a draft from summary review, the customer
// closing the summary to keep editing.
func (d *Draft) ReturnToConfiguring() error {
	if d.Stage == StageSubmitted {
		return ErrDraftFinalized
	}
	d.Stage = StageConfiguring
	return nil
}

// CheckoutPayload is what the core hands to the checkout collaborator;
// its responsibility ends here.
type CheckoutPayload struct {
	Draft      Draft `json:"draft"`
	TotalCents int64 `json:"totalCents"`
}

// ConfirmCheckout moves SummaryReview -> Submitted. Without agreed terms
// the transition is blocked and the draft remains in summary review.
func (d *Draft) ConfirmCheckout(svc *catalog.Service) (*CheckoutPayload, error) {
	if d.Stage == StageSubmitted {
		return nil, ErrDraftFinalized
	}
	if d.Stage != StageSummaryReview {
		return nil, ErrNotInSummaryReview
	}
	if !d.AgreedToTerms {
		return nil, ErrTermsNotAccepted
	}

	d.Stage = StageSubmitted
	return &CheckoutPayload{
		Draft:      *d,
		TotalCents: Quote(d, svc).Cents(),
	}, nil
}
