package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

type BookingListResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		RoomID:          v.RoomID,
		RoomName:        v.RoomName,
		CheckInDate:     v.CheckInDate,
		CheckOutDate:    v.CheckOutDate,
		GuestName:       v.GuestName,
		GuestEmail:      v.GuestEmail,
		GuestPhone:      v.GuestPhone,
		NumberOfGuests:  v.NumberOfGuests,
		SpecialRequests: v.SpecialRequests,
		UserID:          v.UserID,
		TotalPrice:      v.TotalPrice,
		Status:          v.Status,
		Nights:          v.Nights,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           item.ID,
		RoomID:       item.RoomID,
		RoomName:     item.RoomName,
		CheckInDate:  item.CheckInDate,
		CheckOutDate: item.CheckOutDate,
		GuestName:    item.GuestName,
		TotalPrice:   item.TotalPrice,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt,
	}
}
