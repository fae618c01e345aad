package api

import (
	"errors"
	"net/http"

	"hotelier/internal/handler/httperr"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto the HTTP error taxonomy. Anything
// unrecognized is a 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	if ve, ok := commands.AsValidationError(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, ve.Message, httperr.FieldDetail{Field: ve.Field})
		return
	}

	switch {
	case errors.Is(err, queries.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check-out date must be after check-in date", nil)
	case errors.Is(err, commands.ErrRoomNotFound), errors.Is(err, queries.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrBlockNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Busy period not found", nil)
	case errors.Is(err, commands.ErrSeasonNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Seasonal price not found", nil)
	case errors.Is(err, commands.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available for the requested dates", nil)
	case errors.Is(err, commands.ErrConcurrencyConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting concurrent update, please retry", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
