package api

import (
	"net/http"

	"hotelier/internal/domain/booking"
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

// @Summary Create booking
// @Description Create a booking; checks availability, prices the stay and reserves the dates atomically
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}

	cmd := commands.CreateBookingCommand{
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	}
	// Anonymous bookings are allowed; link the account when one is present.
	if userID, ok := middleware.GetUserID(c); ok {
		cmd.UserID = &userID
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID; regular users only see their own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Staff and admins see all bookings and may filter; regular users see only their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Param start_date query string false "Keep bookings checking in on or after this date"
// @Param end_date query string false "Keep bookings checking out on or before this date"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filter, err := parseBookingFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter parameters", nil)
		return
	}

	items, err := h.bookingQueries.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update booking status
// @Description Transition a booking through its lifecycle; keeps the busy-period ledger in sync
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func parseBookingFilter(c *gin.Context) (queries.BookingFilter, error) {
	var filter queries.BookingFilter

	if s := c.Query("status"); s != "" {
		status, err := booking.NewStatus(s)
		if err != nil {
			return queries.BookingFilter{}, err
		}
		filter.Status = &status
	}
	if s := c.Query("start_date"); s != "" {
		d, err := timespan.ParseDate(s)
		if err != nil {
			return queries.BookingFilter{}, err
		}
		filter.StartDate = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := timespan.ParseDate(s)
		if err != nil {
			return queries.BookingFilter{}, err
		}
		filter.EndDate = &d
	}
	return filter, nil
}
