package shared

import (
	"context"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/calendar"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
)

// UnitOfWork runs write operations in a single transaction. The
// implementation retries serialization failures and surfaces a conflict-kind
// repository error when retries are exhausted.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transactional repositories. Command code locks the room row
// first (RoomRepository.FindForUpdate) so that the availability check and the
// booking+ledger writes are serialized per room — the read-then-write
// double-booking race cannot occur across concurrent transactions.
type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	BusyPeriods() BusyPeriodRepository
	SeasonalPrices() SeasonalPriceRepository
	Conflicts() ConflictReads
}

type RoomRepository interface {
	// FindForUpdate loads the room and takes a row lock, serializing all
	// booking/ledger mutations for that room until commit.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type BusyPeriodRepository interface {
	Create(ctx context.Context, p *calendar.BusyPeriod) error
	FindByID(ctx context.Context, id uuid.UUID) (*calendar.BusyPeriod, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type SeasonalPriceRepository interface {
	Create(ctx context.Context, s *room.SeasonalPrice) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*room.SeasonalPrice, error)
}

// ConflictReads answers the two overlap questions the availability oracle
// combines. Both the transactional write path and the public read path go
// through the same interface so the overlap semantics cannot drift.
type ConflictReads interface {
	CountOverlappingBookings(ctx context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error)
	CountOverlappingBusyPeriods(ctx context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error)
}
