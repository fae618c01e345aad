package booking

import (
	"errors"
	"time"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

var (
	ErrCheckInInPast       = errors.New("check-in date cannot be in the past")
	ErrCapacityExceeded    = errors.New("number of guests exceeds room capacity")
	ErrNegativePrice       = errors.New("total price cannot be negative")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrRoomInactive        = errors.New("room is not active")
)

// Booking is the aggregate root of the lifecycle manager. The stay range is
// half-open [checkIn, checkOut): the checkout day is not billed and does not
// conflict with a same-day new check-in. Total price is computed once at
// creation and never recomputed on status changes.
type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	stay            timespan.DateRange
	guest           GuestDetails
	numberOfGuests  int
	specialRequests string
	userID          *uuid.UUID
	totalPrice      money.Money
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking validates a public create request against the room and prices
// the stay via the room's rate card. now anchors the not-in-the-past check
// so callers inject a clock.
func NewBooking(
	now time.Time,
	rm *room.Room,
	rates room.RateCard,
	stay timespan.DateRange,
	guest GuestDetails,
	numberOfGuests int,
	specialRequests string,
	userID *uuid.UUID,
) (*Booking, error) {
	if !rm.IsActive() {
		return nil, ErrRoomInactive
	}
	if stay.Start().Before(timespan.Truncate(now)) {
		return nil, ErrCheckInInPast
	}
	if !rm.Accommodates(numberOfGuests) {
		return nil, ErrCapacityExceeded
	}

	total := rates.PriceStay(stay)
	if total.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:              uuid.New(),
		roomID:          rm.ID(),
		stay:            stay,
		guest:           guest,
		numberOfGuests:  numberOfGuests,
		specialRequests: specialRequests,
		userID:          userID,
		totalPrice:      total,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	stay timespan.DateRange,
	guest GuestDetails,
	numberOfGuests int,
	specialRequests string,
	userID *uuid.UUID,
	totalPrice money.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomID:          roomID,
		stay:            stay,
		guest:           guest,
		numberOfGuests:  numberOfGuests,
		specialRequests: specialRequests,
		userID:          userID,
		totalPrice:      totalPrice,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo applies the explicit transition table and mutates the status
// on success. Ledger side effects belong to the caller.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) RoomID() uuid.UUID        { return b.roomID }
func (b *Booking) Stay() timespan.DateRange { return b.stay }
func (b *Booking) Guest() GuestDetails      { return b.guest }
func (b *Booking) NumberOfGuests() int      { return b.numberOfGuests }
func (b *Booking) SpecialRequests() string  { return b.specialRequests }
func (b *Booking) UserID() *uuid.UUID       { return b.userID }
func (b *Booking) TotalPrice() money.Money  { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) Nights() int {
	return b.stay.Nights()
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}
