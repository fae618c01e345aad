package api

import (
	"net/http"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/handler/httperr"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarCommands commands.CalendarCommands
}

func NewCalendarHandler(calendarCommands commands.CalendarCommands) *CalendarHandler {
	return &CalendarHandler{calendarCommands: calendarCommands}
}

// @Summary Create room block
// @Description Block a room for maintenance or administrative reasons
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateBlockRequest true "Block request"
// @Success 201 {object} resdto.BusyPeriodResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/blocks [post]
func (h *CalendarHandler) CreateBlock(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	start, end, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.calendarCommands.CreateBlock(c.Request.Context(), actor, commands.CreateBlockCommand{
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
		Kind:      req.Kind,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBusyPeriodView(view))
}

// @Summary Delete room block
// @Description Remove a maintenance or admin block; booking holds cannot be deleted here
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Busy period ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /blocks/{id} [delete]
func (h *CalendarHandler) DeleteBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid busy period ID format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.calendarCommands.DeleteBlock(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
