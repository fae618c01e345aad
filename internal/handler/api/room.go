package api

import (
	"net/http"
	"strconv"
	"time"

	"hotelier/internal/domain/timespan"
	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/handler/httperr"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands        commands.RoomCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, availabilityQueries queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands:        roomCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Check room availability
// @Description Check whether a room is free for the given dates; quotes the total price when it is
// @Tags rooms
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/check-availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Query("room_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	checkIn, checkOut, err := parseStayQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}

	view, err := h.availabilityQueries.CheckRoom(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List available rooms
// @Description List active rooms free for the given dates, optionally filtered by minimum capacity
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param min_capacity query int false "Minimum room capacity"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	checkIn, checkOut, err := parseStayQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}

	minCapacity := 1
	if s := c.Query("min_capacity"); s != "" {
		minCapacity, err = strconv.Atoi(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "min_capacity must be an integer", nil)
			return
		}
	}

	rooms, err := h.availabilityQueries.ListAvailableRooms(c.Request.Context(), checkIn, checkOut, minCapacity)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]*resdto.AvailableRoomResponse, len(rooms))
	for i, rm := range rooms {
		response[i] = resdto.FromAvailableRoom(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create seasonal price
// @Description Add a seasonal nightly-rate override to a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateSeasonalPriceRequest true "Seasonal price"
// @Success 201 {object} resdto.SeasonalPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/seasonal-prices [post]
func (h *RoomHandler) CreateSeasonalPrice(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.CreateSeasonalPriceRequest
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

	view, err := h.roomCommands.CreateSeasonalPrice(c.Request.Context(), actor, commands.CreateSeasonalPriceCommand{
		RoomID:      roomID,
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		NightlyRate: req.NightlyRate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSeasonalPriceView(view))
}

// @Summary Delete seasonal price
// @Description Remove a seasonal nightly-rate override
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seasonal price ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /seasonal-prices/{id} [delete]
func (h *RoomHandler) DeleteSeasonalPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seasonal price ID format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.roomCommands.DeleteSeasonalPrice(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseStayQuery(c *gin.Context) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timespan.ParseDate(c.Query("check_in"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = timespan.ParseDate(c.Query("check_out"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
