package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	cmds commands.LedgerCommands
	q    queries.LedgerQueries
}

func NewLedgerHandler(cmds commands.LedgerCommands, q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description Ledger of a booking in the order the payments occurred, one page at a time
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "next_cursor of the previous page"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/transactions [get]
func (h *LedgerHandler) List(c *gin.Context) {
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	cursor, limit, ok := queryPage(c)
	if !ok {
		return
	}
	views, next, err := h.q.ListTransactions(c.Request.Context(), bookingID, cursor, limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(views, next))
}

// @Summary Append transaction
// @Description Record a payment or a vendor payout. Settled inbound rows update the booking's advance and payment status.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.AppendTransactionRequest true "Append transaction request"
// @Success 201 {object} resdto.LedgerResponse
// @Success 200 {object} resdto.LedgerResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Idempotency-Key reused for a different request"
// @Router /bookings/{id}/transactions [post]
func (h *LedgerHandler) Append(c *gin.Context) {
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AppendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.AppendTransaction(c.Request.Context(), req.ToCommand(bookingID, c.GetHeader("Idempotency-Key")))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, toLedgerResponse(result))
}

// @Summary Correct transaction
// @Description Fix amount, mode, status or notes of a recorded row; the booking is reconciled afterwards
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.UpdateTransactionRequest true "Update transaction request"
// @Success 200 {object} resdto.LedgerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [patch]
func (h *LedgerHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.UpdateTransaction(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, toLedgerResponse(result))
}

func toLedgerResponse(result *commands.LedgerResult) *resdto.LedgerResponse {
	res := &resdto.LedgerResponse{
		Transaction: resdto.FromTransactionView(queries.NewTransactionView(result.Transaction)),
		Replayed:    result.Replayed,
	}
	if result.Booking != nil {
		res.Booking = resdto.FromBookingView(queries.NewBookingView(result.Booking))
	}
	return res
}
