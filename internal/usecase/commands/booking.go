package commands

import (
	"context"

	"tidybook/internal/domain/booking"
	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra"
	"tidybook/internal/pkg/clock"
	"tidybook/internal/pkg/errs"
	"tidybook/internal/pkg/patch"
	"tidybook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound      = errs.New("service not found")
	ErrDraftNotFound        = errs.New("booking draft not found")
	ErrStoreOperationFailed = errs.New("session store operation failed")
	ErrCheckoutFailed       = errs.New("checkout handoff failed")
)

// UpdateDraftParams is a PATCH-style partial update: nil means leave the
// field unchanged. Preferences and customer info replace whole blocks.
type UpdateDraftParams struct {
	Address          *string
	Postcode         *string
	Recurrence       *booking.Recurrence
	StartDate        *booking.CivilDate
	NumberOfDays     *int
	TimeWindow       *string
	ContractDuration *int
	Preferences      *booking.Preferences
	CustomerInfo     *booking.CustomerInfo
	AgreedToTerms    *bool
	DiscountCode     *string
	PointsApplied    *int
}

type StartDraftResult struct {
	View *queries.DraftView
}

type UpdateDraftResult struct {
	View *queries.DraftView
	// Notice is set when the update switched the draft to a recurring
	// plan; the presentation layer warns the customer with it.
	Notice *booking.RecurrenceNotice
}

type CheckoutResult struct {
	Receipt *CheckoutReceipt
}

type BookingCommands interface {
	StartDraft(ctx context.Context, serviceID string) (*StartDraftResult, error)
	UpdateDraft(ctx context.Context, sessionID uuid.UUID, params UpdateDraftParams) (*UpdateDraftResult, error)
	SetItemQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int, kind booking.ListKind) (*queries.DraftView, error)
	SubmitForReview(ctx context.Context, sessionID uuid.UUID) (*queries.DraftView, error)
	ReopenDraft(ctx context.Context, sessionID uuid.UUID) (*queries.DraftView, error)
	Checkout(ctx context.Context, sessionID uuid.UUID) (*CheckoutResult, error)
	DiscardDraft(ctx context.Context, sessionID uuid.UUID) error
}

type bookingCommandsImpl struct {
	catalogRepo CatalogRepository
	sessions    DraftSessions
	gateway     CheckoutGateway
	eligibility catalog.EligibilityPolicy
	clock       clock.Clock
}

func NewBookingCommands(
	catalogRepo CatalogRepository,
	sessions DraftSessions,
	gateway CheckoutGateway,
	eligibility catalog.EligibilityPolicy,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		catalogRepo: catalogRepo,
		sessions:    sessions,
		gateway:     gateway,
		eligibility: eligibility,
		clock:       clk,
	}
}

func (b *bookingCommandsImpl) StartDraft(ctx context.Context, serviceID string) (*StartDraftResult, error) {
	svc, err := b.resolveService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	draft := booking.NewDraft(svc, b.clock)
	sessionID := uuid.New()
	if err := b.sessions.Put(ctx, sessionID, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &StartDraftResult{View: queries.NewDraftView(sessionID, draft, svc)}, nil
}

func (b *bookingCommandsImpl) UpdateDraft(ctx context.Context, sessionID uuid.UUID, params UpdateDraftParams) (*UpdateDraftResult, error) {
	draft, svc, err := b.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	notice, err := applyDraftPatch(draft, params)
	if err != nil {
		return nil, err
	}

	if err := b.sessions.Put(ctx, sessionID, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &UpdateDraftResult{
		View:   queries.NewDraftView(sessionID, draft, svc),
		Notice: notice,
	}, nil
}

// applyDraftPatch runs the requested field updates in order; the first
// domain rejection aborts the whole patch before anything is persisted.
func applyDraftPatch(draft *booking.Draft, params UpdateDraftParams) (*booking.RecurrenceNotice, error) {
	var notice *booking.RecurrenceNotice

	if err := patch.Apply(params.Address, draft.SetAddress); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.Postcode, draft.SetPostcode); err != nil {
		return nil, err
	}
	if params.Recurrence != nil {
		n, err := draft.SetRecurrence(*params.Recurrence)
		if err != nil {
			return nil, err
		}
		notice = n
	}
	if err := patch.Apply(params.StartDate, draft.SetStartDate); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.NumberOfDays, draft.SetNumberOfDays); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.TimeWindow, draft.SetTimeWindow); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.ContractDuration, draft.SetContractDuration); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.Preferences, draft.UpdatePreferences); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.CustomerInfo, draft.UpdateCustomerInfo); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.AgreedToTerms, draft.SetAgreedToTerms); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.DiscountCode, draft.SetDiscountCode); err != nil {
		return nil, err
	}
	if err := patch.Apply(params.PointsApplied, draft.SetPointsApplied); err != nil {
		return nil, err
	}

	return notice, nil
}

func (b *bookingCommandsImpl) SetItemQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int, kind booking.ListKind) (*queries.DraftView, error) {
	draft, svc, err := b.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := draft.SetItemQuantity(svc, itemID, quantity, kind); err != nil {
		return nil, err
	}
	if err := b.sessions.Put(ctx, sessionID, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return queries.NewDraftView(sessionID, draft, svc), nil
}

func (b *bookingCommandsImpl) SubmitForReview(ctx context.Context, sessionID uuid.UUID) (*queries.DraftView, error) {
	draft, svc, err := b.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := draft.SubmitForReview(svc, b.eligibility); err != nil {
		return nil, err
	}
	if err := b.sessions.Put(ctx, sessionID, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return queries.NewDraftView(sessionID, draft, svc), nil
}

func (b *bookingCommandsImpl) ReopenDraft(ctx context.Context, sessionID uuid.UUID) (*queries.DraftView, error) {
	draft, svc, err := b.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := draft.ReturnToConfiguring(); err != nil {
		return nil, err
	}
	if err := b.sessions.Put(ctx, sessionID, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return queries.NewDraftView(sessionID, draft, svc), nil
}

func (b *bookingCommandsImpl) Checkout(ctx context.Context, sessionID uuid.UUID) (*CheckoutResult, error) {
	draft, svc, err := b.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := draft.ConfirmCheckout(svc)
	if err != nil {
		return nil, err
	}

	receipt, err := b.gateway.Checkout(ctx, sessionID, *payload)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	// The draft is done with; the session does not outlive the checkout.
	if err := b.sessions.Delete(ctx, sessionID); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &CheckoutResult{Receipt: receipt}, nil
}

func (b *bookingCommandsImpl) DiscardDraft(ctx context.Context, sessionID uuid.UUID) error {
	if err := b.sessions.Delete(ctx, sessionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDraftNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}

func (b *bookingCommandsImpl) resolveService(ctx context.Context, serviceID string) (*catalog.Service, error) {
	svc, err := b.catalogRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !svc.IsEnabled() {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (b *bookingCommandsImpl) loadDraft(ctx context.Context, sessionID uuid.UUID) (*booking.Draft, *catalog.Service, error) {
	draft, err := b.sessions.Get(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrDraftNotFound
		}
		return nil, nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	svc, err := b.catalogRepo.FindByID(ctx, draft.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrServiceNotFound
		}
		return nil, nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return draft, svc, nil
}
