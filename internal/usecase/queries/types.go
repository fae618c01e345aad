package queries

import (
	"time"

	"hotelier/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side). Dates are ISO-8601 calendar dates,
// money values exact decimal strings.

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomName        string     `json:"room_name"`
	CheckInDate     string     `json:"check_in_date"`
	CheckOutDate    string     `json:"check_out_date"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone"`
	NumberOfGuests  int        `json:"number_of_guests"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	TotalPrice      string     `json:"total_price"`
	Status          string     `json:"status"`
	Nights          int        `json:"nights"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	GuestName    string    `json:"guest_name"`
	TotalPrice   string    `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingFilter narrows elevated listings. StartDate keeps bookings checking
// in on or after it; EndDate keeps bookings checking out on or before it.
type BookingFilter struct {
	Status    *booking.Status
	StartDate *time.Time
	EndDate   *time.Time
}

type AvailabilityView struct {
	Available  bool    `json:"available"`
	TotalPrice *string `json:"total_price"`
}

type AvailableRoom struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	BaseRate string    `json:"base_rate"`
}

type BusyPeriodView struct {
	ID        uuid.UUID  `json:"id"`
	RoomID    uuid.UUID  `json:"room_id"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Kind      string     `json:"kind"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type SeasonalPriceView struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	NightlyRate string    `json:"nightly_rate"`
	CreatedAt   time.Time `json:"created_at"`
}
