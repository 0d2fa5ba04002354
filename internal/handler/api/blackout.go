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

type BlackoutHandler struct {
	cmds commands.BlackoutCommands
	q    queries.BlackoutQueries
}

func NewBlackoutHandler(cmds commands.BlackoutCommands, q queries.BlackoutQueries) *BlackoutHandler {
	return &BlackoutHandler{cmds: cmds, q: q}
}

// @Summary List blackouts
// @Tags blackouts
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Success 200 {array} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Router /venues/{venueId}/blackouts [get]
func (h *BlackoutHandler) List(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	views, err := h.q.ListBlackouts(c.Request.Context(), venueID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutViews(views))
}

// @Summary Create blackout
// @Description Block a date range, optionally repeating weekly, monthly or yearly
// @Tags blackouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param request body reqdto.CreateBlackoutRequest true "Create blackout request"
// @Success 201 {object} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /venues/{venueId}/blackouts [post]
func (h *BlackoutHandler) Create(c *gin.Context) {
	venueID, ok := pathUUID(c, "venueId")
	if !ok {
		return
	}
	var req reqdto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	b, err := h.cmds.CreateBlackout(c.Request.Context(), req.ToCommand(venueID))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlackoutView(queries.NewBlackoutView(b)))
}

// @Summary Update blackout
// @Tags blackouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Param request body reqdto.UpdateBlackoutRequest true "Update blackout request"
// @Success 200 {object} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /blackouts/{id} [patch]
func (h *BlackoutHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	b, err := h.cmds.UpdateBlackout(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutView(queries.NewBlackoutView(b)))
}

// @Summary Delete blackout
// @Tags blackouts
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /blackouts/{id} [delete]
func (h *BlackoutHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBlackout(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
