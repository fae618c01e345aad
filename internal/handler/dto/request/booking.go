package request

import (
	"time"

	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

// Dates cross the wire as ISO-8601 calendar dates ("2026-07-01").

type CreateBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required"`
	CheckOutDate    string    `json:"check_out_date" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestEmail      string    `json:"guest_email" binding:"required"`
	GuestPhone      string    `json:"guest_phone" binding:"required"`
	NumberOfGuests  int       `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

func (r CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timespan.ParseDate(r.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = timespan.ParseDate(r.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
