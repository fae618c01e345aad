package calendar

import (
	"errors"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind         = errors.New("invalid busy period kind")
	ErrBlockNeedsNoBooking = errors.New("maintenance and admin blocks cannot reference a booking")
)

type Kind string

const (
	KindBookingHold Kind = "BOOKING_HOLD"
	KindMaintenance Kind = "MAINTENANCE"
	KindAdminBlock  Kind = "ADMIN_BLOCK"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindBookingHold, KindMaintenance, KindAdminBlock:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// BusyPeriod is one entry in a room's busy ledger: a date range during which
// the room cannot be newly booked, regardless of cause. bookingID is a plain
// back-reference, never ownership — deleting either side must not cascade to
// the other.
type BusyPeriod struct {
	id        uuid.UUID
	roomID    uuid.UUID
	period    timespan.DateRange
	kind      Kind
	bookingID *uuid.UUID
	notes     string
	createdBy *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewHold materializes a booking's room occupation in the ledger. Called
// when a booking enters a status that holds the room.
func NewHold(b *booking.Booking) *BusyPeriod {
	bookingID := b.ID()
	return &BusyPeriod{
		id:        uuid.New(),
		roomID:    b.RoomID(),
		period:    b.Stay(),
		kind:      KindBookingHold,
		bookingID: &bookingID,
		notes:     "auto-created for booking " + bookingID.String(),
	}
}

// NewBlock creates a maintenance or admin block, independent of any booking.
func NewBlock(roomID uuid.UUID, period timespan.DateRange, kind Kind, notes string, createdBy *uuid.UUID) (*BusyPeriod, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind == KindBookingHold {
		return nil, ErrBlockNeedsNoBooking
	}

	return &BusyPeriod{
		id:        uuid.New(),
		roomID:    roomID,
		period:    period,
		kind:      kind,
		notes:     notes,
		createdBy: createdBy,
	}, nil
}

func ReconstructBusyPeriod(
	id, roomID uuid.UUID,
	period timespan.DateRange,
	kind Kind,
	bookingID *uuid.UUID,
	notes string,
	createdBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *BusyPeriod {
	return &BusyPeriod{
		id:        id,
		roomID:    roomID,
		period:    period,
		kind:      kind,
		bookingID: bookingID,
		notes:     notes,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *BusyPeriod) ID() uuid.UUID              { return p.id }
func (p *BusyPeriod) RoomID() uuid.UUID          { return p.roomID }
func (p *BusyPeriod) Period() timespan.DateRange { return p.period }
func (p *BusyPeriod) Kind() Kind                 { return p.kind }
func (p *BusyPeriod) BookingID() *uuid.UUID      { return p.bookingID }
func (p *BusyPeriod) Notes() string              { return p.notes }
func (p *BusyPeriod) CreatedBy() *uuid.UUID      { return p.createdBy }
func (p *BusyPeriod) CreatedAt() time.Time       { return p.createdAt }
func (p *BusyPeriod) UpdatedAt() time.Time       { return p.updatedAt }

// Blocks reports whether this ledger entry conflicts with the given stay
// under the shared half-open overlap predicate.
func (p *BusyPeriod) Blocks(stay timespan.DateRange) bool {
	return p.period.Overlaps(stay)
}
