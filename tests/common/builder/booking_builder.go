//go:build unit || e2e

package builder

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder produces request payloads and read models for handler tests
// with consistent defaults.
type BookingBuilder struct {
	id           uuid.UUID
	roomID       uuid.UUID
	roomName     string
	checkInDate  string
	checkOutDate string
	guestName    string
	guestEmail   string
	guestPhone   string
	guests       int
	totalPrice   string
	status       string
	userID       *uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:           uuid.New(),
		roomID:       uuid.New(),
		roomName:     "Harbor Suite",
		checkInDate:  "2026-07-10",
		checkOutDate: "2026-07-13",
		guestName:    "Jane Walker",
		guestEmail:   "jane@example.com",
		guestPhone:   "+4915551234",
		guests:       2,
		totalPrice:   "300.00",
		status:       "PENDING",
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.roomID = id
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = &id
	return b
}

// BuildCreateRequestBody returns the JSON payload for the create endpoint as
// a mutable map so tests can knock out or override individual fields.
func (b *BookingBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"room_id":          b.roomID.String(),
		"check_in_date":    b.checkInDate,
		"check_out_date":   b.checkOutDate,
		"guest_name":       b.guestName,
		"guest_email":      b.guestEmail,
		"guest_phone":      b.guestPhone,
		"number_of_guests": b.guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.id,
		RoomID:         b.roomID,
		RoomName:       b.roomName,
		CheckInDate:    b.checkInDate,
		CheckOutDate:   b.checkOutDate,
		GuestName:      b.guestName,
		GuestEmail:     b.guestEmail,
		GuestPhone:     b.guestPhone,
		NumberOfGuests: b.guests,
		UserID:         b.userID,
		TotalPrice:     b.totalPrice,
		Status:         b.status,
		Nights:         3,
		CreatedAt:      time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.id,
		RoomID:       b.roomID,
		RoomName:     b.roomName,
		CheckInDate:  b.checkInDate,
		CheckOutDate: b.checkOutDate,
		GuestName:    b.guestName,
		TotalPrice:   b.totalPrice,
		Status:       b.status,
		CreatedAt:    time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}
