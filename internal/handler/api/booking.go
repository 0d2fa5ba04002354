package api

import (
	"context"
	"net/http"

	"venue-booking/internal/domain/booking"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Price and reserve a slot at a venue. A positive advance_amount is recorded as the first payment.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /venues/{venueId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	b, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(venueID))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(queries.NewBookingView(b)))
}

// @Summary List bookings
// @Description List bookings of a venue ordered by start time, one page at a time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param includeDeleted query bool false "Include soft-deleted bookings"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "next_cursor of the previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /venues/{venueId}/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	cursor, limit, ok := queryPage(c)
	if !ok {
		return
	}
	views, next, err := h.q.ListBookings(c.Request.Context(), venueID, queryBool(c, "includeDeleted"), cursor, limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(views, next))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param includeDeleted query bool false "Return the booking even if soft-deleted"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id, queryBool(c, "includeDeleted"))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Patch slot, guests, package, services, notes or payment mode. Pricing changes keep the recorded advance.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	b, err := h.cmds.UpdateBooking(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(queries.NewBookingView(b)))
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmBooking)
}

// @Summary Cancel booking
// @Description Cancelled bookings release their slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Restore booking
// @Description Undo a soft delete. Fails with 409 if the slot was taken meanwhile.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/restore [post]
func (h *BookingHandler) Restore(c *gin.Context) {
	h.transition(c, h.cmds.RestoreBooking)
}

// @Summary Delete booking
// @Description Soft delete; transactions and purchase orders are kept
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set advance payment
// @Description Move the advance to the given total by recording the difference on the ledger. Replays with the same Idempotency-Key record nothing new; reusing the key for a different amount or mode is a conflict.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.UpdatePaymentRequest true "Payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/payment [put]
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.UpdatePayment(c.Request.Context(), id, req.ToCommand(c.GetHeader("Idempotency-Key")))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res := &resdto.PaymentResponse{
		Booking:  resdto.FromBookingView(queries.NewBookingView(result.Booking)),
		Replayed: result.Replayed,
	}
	if result.Transaction != nil {
		res.Transaction = resdto.FromTransactionView(queries.NewTransactionView(result.Transaction))
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check slot availability
// @Description Reports bookings that a [start, end) slot would collide with
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param start query string true "Slot start (RFC 3339)"
// @Param end query string true "Slot end (RFC 3339)"
// @Param excludeBookingId query string false "Booking to ignore, e.g. the one being rescheduled"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /venues/{venueId}/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	start, ok := queryTime(c, "start")
	if !ok {
		return
	}
	end, ok := queryTime(c, "end")
	if !ok {
		return
	}
	var exclude *uuid.UUID
	if raw := c.Query("excludeBookingId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithBadRequest(c, err, "Invalid excludeBookingId: must be a UUID")
			return
		}
		exclude = &id
	}
	view, err := h.q.IsAvailable(c.Request.Context(), venueID, start, end, exclude)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Check blackout conflicts
// @Description Lists active blackouts, one-off or recurring, that touch [start, end]
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param start query string true "Range start (RFC 3339)"
// @Param end query string true "Range end (RFC 3339)"
// @Success 200 {object} resdto.BlackoutConflictResponse
// @Failure 400 {object} httperr.Response
// @Router /venues/{venueId}/blackout-conflicts [get]
func (h *BookingHandler) BlackoutConflicts(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	start, ok := queryTime(c, "start")
	if !ok {
		return
	}
	end, ok := queryTime(c, "end")
	if !ok {
		return
	}
	view, err := h.q.CheckBlackoutConflict(c.Request.Context(), venueID, start, end)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutConflictView(view))
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	b, err := op(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(queries.NewBookingView(b)))
}
