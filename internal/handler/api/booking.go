package api

import (
	"errors"
	"net/http"

	"tidybook/internal/domain/booking"
	reqdto "tidybook/internal/handler/dto/request"
	resdto "tidybook/internal/handler/dto/response"
	"tidybook/internal/handler/httperr"
	"tidybook/internal/usecase/commands"
	"tidybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Start booking draft
// @Description Open a new draft session for an enabled service, seeded with its default item quantities
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.StartBookingRequest true "Service to book"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) StartBooking(c *gin.Context) {
	var req reqdto.StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.StartDraft(c.Request.Context(), req.ServiceID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDraftView(result.View))
}

// @Summary Get booking draft
// @Description Current state of a draft: fields, configured items, running total, future occurrence dates
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetDraft(c.Request.Context(), sessionID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Update booking draft
// @Description Patch draft fields; absent fields are left unchanged. Switching to a recurring plan returns a notice to surface to the customer
// @Tags bookings
// @Accept json
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.bookingCommands.UpdateDraft(c.Request.Context(), sessionID, params)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftViewWithNotice(result.View, result.Notice))
}

// @Summary Set item quantity
// @Description Set the quantity of an included or extra item. Included items clamp below their minimum; extras at zero are removed
// @Tags bookings
// @Accept json
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.SetItemQuantityRequest true "Quantity and list kind"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId}/items/{itemId} [put]
func (h *BookingHandler) SetItemQuantity(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	var req reqdto.SetItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.SetItemQuantity(c.Request.Context(), sessionID, c.Param("itemId"), *req.Quantity, req.Kind())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Submit draft for review
// @Description Move the draft to summary review. Fails when required fields are missing or the postcode is not serviceable
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId}/submit [post]
func (h *BookingHandler) SubmitForReview(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.SubmitForReview(c.Request.Context(), sessionID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Reopen draft for editing
// @Description Return a draft in summary review to the configuring stage
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId}/reopen [post]
func (h *BookingHandler) ReopenBooking(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.ReopenDraft(c.Request.Context(), sessionID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Checkout
// @Description Confirm the reviewed draft, hand it to the checkout gateway and discard the session
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Discard booking draft
// @Description Drop the draft session; nothing of it survives
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Draft session ID"
// @Success 204 {object} nil
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{sessionId} [delete]
func (h *BookingHandler) DiscardBooking(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.DiscardDraft(c.Request.Context(), sessionID); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var missing *booking.RequiredFieldsError

	switch {
	case errors.Is(err, commands.ErrServiceNotFound), errors.Is(err, queries.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrDraftNotFound), errors.Is(err, queries.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking draft not found", nil)
	case errors.As(err, &missing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Required fields missing", gin.H{"fields": missing.Fields})
	case errors.Is(err, booking.ErrPostcodeNotServiceable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Postcode not serviceable", nil)
	case errors.Is(err, booking.ErrTermsNotAccepted):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Terms and conditions not accepted", nil)
	case errors.Is(err, booking.ErrNotInSummaryReview):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Draft is not in summary review", nil)
	case errors.Is(err, booking.ErrDraftFinalized):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft has already been submitted", nil)
	case errors.Is(err, booking.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, booking.ErrInvalidRecurrence),
		errors.Is(err, booking.ErrInvalidNumberOfDays),
		errors.Is(err, booking.ErrInvalidTimeWindow),
		errors.Is(err, booking.ErrInvalidContractDuration),
		errors.Is(err, booking.ErrNegativePoints),
		errors.Is(err, booking.ErrInvalidListKind):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
