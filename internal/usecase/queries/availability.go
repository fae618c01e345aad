package queries

import (
	"context"
	"time"

	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidDateRange = errs.New("invalid date range")
)

// AvailabilityReadStore is the read-side data source for the availability
// oracle and the pricing engine. It embeds the same ConflictReads contract
// the write path uses inside its transaction.
type AvailabilityReadStore interface {
	shared.ConflictReads
	RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	SeasonalPrices(ctx context.Context, roomID uuid.UUID) ([]*room.SeasonalPrice, error)
	ListAvailableRooms(ctx context.Context, stay timespan.DateRange, minCapacity int) ([]*AvailableRoom, error)
}

type AvailabilityQueries interface {
	// CheckRoom answers "can this room be booked for these dates, and at
	// what price". The price is only quoted when the room is available.
	CheckRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
	// ListAvailableRooms is the set-based bulk variant: active rooms with
	// neither a conflicting booking nor a conflicting busy period. It must
	// agree with CheckRoom called per room.
	ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, minCapacity int) ([]*AvailableRoom, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) CheckRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	stay, err := timespan.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	rm, err := q.store.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	available, err := shared.IsRoomAvailable(ctx, q.store, roomID, stay)
	if err != nil {
		return nil, err
	}
	if !available {
		return &AvailabilityView{Available: false}, nil
	}

	seasons, err := q.store.SeasonalPrices(ctx, roomID)
	if err != nil {
		return nil, err
	}

	total := room.NewRateCard(rm, seasons).PriceStay(stay).String()
	return &AvailabilityView{Available: true, TotalPrice: &total}, nil
}

func (q *availabilityQueriesImpl) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, minCapacity int) ([]*AvailableRoom, error) {
	stay, err := timespan.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}
	if minCapacity < 1 {
		minCapacity = 1
	}
	return q.store.ListAvailableRooms(ctx, stay, minCapacity)
}
