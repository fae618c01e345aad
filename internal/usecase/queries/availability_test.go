//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timespan.ParseDate(s)
	require.NoError(t, err)
	return d
}

// fakeAvailabilityStore holds booked and blocked ranges per room and answers
// the oracle's counters against them.
type fakeAvailabilityStore struct {
	rooms   map[uuid.UUID]*room.Room
	seasons map[uuid.UUID][]*room.SeasonalPrice
	booked  map[uuid.UUID][]timespan.DateRange
	blocked map[uuid.UUID][]timespan.DateRange
}

func newFakeAvailabilityStore() *fakeAvailabilityStore {
	return &fakeAvailabilityStore{
		rooms:   make(map[uuid.UUID]*room.Room),
		seasons: make(map[uuid.UUID][]*room.SeasonalPrice),
		booked:  make(map[uuid.UUID][]timespan.DateRange),
		blocked: make(map[uuid.UUID][]timespan.DateRange),
	}
}

func (f *fakeAvailabilityStore) RoomByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, queries.ErrRoomNotFound
	}
	return rm, nil
}

func (f *fakeAvailabilityStore) SeasonalPrices(_ context.Context, roomID uuid.UUID) ([]*room.SeasonalPrice, error) {
	return f.seasons[roomID], nil
}

func (f *fakeAvailabilityStore) CountOverlappingBookings(_ context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error) {
	return countOverlaps(f.booked[roomID], stay), nil
}

func (f *fakeAvailabilityStore) CountOverlappingBusyPeriods(_ context.Context, roomID uuid.UUID, stay timespan.DateRange) (int64, error) {
	return countOverlaps(f.blocked[roomID], stay), nil
}

func (f *fakeAvailabilityStore) ListAvailableRooms(ctx context.Context, stay timespan.DateRange, minCapacity int) ([]*queries.AvailableRoom, error) {
	var result []*queries.AvailableRoom
	for id, rm := range f.rooms {
		if !rm.IsActive() || rm.Capacity() < minCapacity {
			continue
		}
		if countOverlaps(f.booked[id], stay) > 0 || countOverlaps(f.blocked[id], stay) > 0 {
			continue
		}
		result = append(result, &queries.AvailableRoom{
			ID:       rm.ID(),
			Name:     rm.Name(),
			Capacity: rm.Capacity(),
			BaseRate: rm.BaseRate().String(),
		})
	}
	return result, nil
}

func countOverlaps(ranges []timespan.DateRange, stay timespan.DateRange) int64 {
	var n int64
	for _, r := range ranges {
		if r.Overlaps(stay) {
			n++
		}
	}
	return n
}

func seedRoom(t *testing.T, store *fakeAvailabilityStore, capacity int, baseRate string) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(uuid.New(), "Pier View "+uuid.NewString()[:8], capacity, money.MustParse(baseRate), true)
	require.NoError(t, err)
	store.rooms[rm.ID()] = rm
	return rm
}

func book(t *testing.T, store *fakeAvailabilityStore, roomID uuid.UUID, start, end string) {
	t.Helper()
	r, err := timespan.NewDateRange(date(t, start), date(t, end))
	require.NoError(t, err)
	store.booked[roomID] = append(store.booked[roomID], r)
}

func TestCheckRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("free room quotes the total price", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		rm := seedRoom(t, store, 2, "100.00")
		q := queries.NewAvailabilityQueries(store)

		view, err := q.CheckRoom(ctx, rm.ID(), date(t, "2026-07-01"), date(t, "2026-07-04"))
		require.NoError(t, err)
		assert.True(t, view.Available)
		require.NotNil(t, view.TotalPrice)
		assert.Equal(t, "300.00", *view.TotalPrice)
	})

	t.Run("occupied room answers unavailable with no price", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		rm := seedRoom(t, store, 2, "100.00")
		book(t, store, rm.ID(), "2026-07-01", "2026-07-05")
		q := queries.NewAvailabilityQueries(store)

		view, err := q.CheckRoom(ctx, rm.ID(), date(t, "2026-07-04"), date(t, "2026-07-08"))
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.Nil(t, view.TotalPrice)
	})

	t.Run("stay starting on the checkout day is available", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		rm := seedRoom(t, store, 2, "100.00")
		book(t, store, rm.ID(), "2026-07-01", "2026-07-05")
		q := queries.NewAvailabilityQueries(store)

		view, err := q.CheckRoom(ctx, rm.ID(), date(t, "2026-07-05"), date(t, "2026-07-08"))
		require.NoError(t, err)
		assert.True(t, view.Available)
	})

	t.Run("seasonal override is reflected in the quote", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		rm := seedRoom(t, store, 2, "100.00")
		season, err := room.NewSeasonalPrice(uuid.New(), rm.ID(), "gala week", date(t, "2026-07-02"), date(t, "2026-07-09"), money.MustParse("180.00"))
		require.NoError(t, err)
		store.seasons[rm.ID()] = []*room.SeasonalPrice{season}
		q := queries.NewAvailabilityQueries(store)

		// 07-01 at 100, 07-02 and 07-03 at 180.
		view, err := q.CheckRoom(ctx, rm.ID(), date(t, "2026-07-01"), date(t, "2026-07-04"))
		require.NoError(t, err)
		require.NotNil(t, view.TotalPrice)
		assert.Equal(t, "460.00", *view.TotalPrice)
	})

	t.Run("unknown room", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(newFakeAvailabilityStore())
		_, err := q.CheckRoom(ctx, uuid.New(), date(t, "2026-07-01"), date(t, "2026-07-04"))
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})

	t.Run("inverted dates", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		rm := seedRoom(t, store, 2, "100.00")
		q := queries.NewAvailabilityQueries(store)

		_, err := q.CheckRoom(ctx, rm.ID(), date(t, "2026-07-04"), date(t, "2026-07-01"))
		assert.ErrorIs(t, err, queries.ErrInvalidDateRange)
	})
}

func TestListAvailableRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("agrees with the per-room check", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		free := seedRoom(t, store, 2, "100.00")
		taken := seedRoom(t, store, 2, "100.00")
		book(t, store, taken.ID(), "2026-07-01", "2026-07-05")
		q := queries.NewAvailabilityQueries(store)

		rooms, err := q.ListAvailableRooms(ctx, date(t, "2026-07-02"), date(t, "2026-07-04"), 0)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, free.ID(), rooms[0].ID)

		view, err := q.CheckRoom(ctx, taken.ID(), date(t, "2026-07-02"), date(t, "2026-07-04"))
		require.NoError(t, err)
		assert.False(t, view.Available)
	})

	t.Run("filters by capacity", func(t *testing.T) {
		store := newFakeAvailabilityStore()
		seedRoom(t, store, 2, "100.00")
		family := seedRoom(t, store, 4, "150.00")
		q := queries.NewAvailabilityQueries(store)

		rooms, err := q.ListAvailableRooms(ctx, date(t, "2026-07-01"), date(t, "2026-07-04"), 3)
		require.NoError(t, err)

		expected := []*queries.AvailableRoom{{
			ID:       family.ID(),
			Name:     family.Name(),
			Capacity: 4,
			BaseRate: "150.00",
		}}
		if diff := cmp.Diff(expected, rooms); diff != "" {
			t.Errorf("available rooms mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inverted dates", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(newFakeAvailabilityStore())
		_, err := q.ListAvailableRooms(ctx, date(t, "2026-07-04"), date(t, "2026-07-01"), 1)
		assert.ErrorIs(t, err, queries.ErrInvalidDateRange)
	})
}
