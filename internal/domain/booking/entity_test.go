//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timespan.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, start, end string) timespan.DateRange {
	t.Helper()
	r, err := timespan.NewDateRange(date(t, start), date(t, end))
	require.NoError(t, err)
	return r
}

func guest(t *testing.T) booking.GuestDetails {
	t.Helper()
	g, err := booking.NewGuestDetails("Jane Walker", "jane@example.com", "+4915551234")
	require.NoError(t, err)
	return g
}

func activeRoom(t *testing.T) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(uuid.New(), "Garden Suite", 2, money.MustParse("100.00"), true)
	require.NoError(t, err)
	return rm
}

func newBooking(t *testing.T, rm *room.Room, s timespan.DateRange) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(now, rm, room.NewRateCard(rm, nil), s, guest(t), 2, "", nil)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rm := activeRoom(t)
		b := newBooking(t, rm, stay(t, "2026-07-10", "2026-07-13"))

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, rm.ID(), b.RoomID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "300.00", b.TotalPrice().String())
		assert.Equal(t, 3, b.Nights())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		rm := activeRoom(t)
		_, err := booking.NewBooking(now, rm, room.NewRateCard(rm, nil), stay(t, "2026-07-01", "2026-07-03"), guest(t), 2, "", nil)
		assert.NoError(t, err)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		rm := activeRoom(t)
		_, err := booking.NewBooking(now, rm, room.NewRateCard(rm, nil), stay(t, "2026-06-30", "2026-07-03"), guest(t), 2, "", nil)
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})

	t.Run("inactive room", func(t *testing.T) {
		rm, err := room.NewRoom(uuid.New(), "Closed Wing", 2, money.MustParse("100.00"), false)
		require.NoError(t, err)
		_, err = booking.NewBooking(now, rm, room.NewRateCard(rm, nil), stay(t, "2026-07-10", "2026-07-13"), guest(t), 2, "", nil)
		assert.ErrorIs(t, err, booking.ErrRoomInactive)
	})

	t.Run("too many guests", func(t *testing.T) {
		rm := activeRoom(t)
		_, err := booking.NewBooking(now, rm, room.NewRateCard(rm, nil), stay(t, "2026-07-10", "2026-07-13"), guest(t), 3, "", nil)
		assert.ErrorIs(t, err, booking.ErrCapacityExceeded)
	})
}

func TestGuestDetails(t *testing.T) {
	tests := []struct {
		name  string
		guest [3]string
		errIs error
	}{
		{"valid", [3]string{"Jane Walker", "jane@example.com", "+4915551234"}, nil},
		{"empty name", [3]string{"  ", "jane@example.com", "+4915551234"}, booking.ErrEmptyGuestName},
		{"email without at sign", [3]string{"Jane", "jane.example.com", "+4915551234"}, booking.ErrInvalidEmail},
		{"email starting with at sign", [3]string{"Jane", "@example.com", "+4915551234"}, booking.ErrInvalidEmail},
		{"email ending with at sign", [3]string{"Jane", "jane@", "+4915551234"}, booking.ErrInvalidEmail},
		{"empty phone", [3]string{"Jane", "jane@example.com", ""}, booking.ErrEmptyGuestPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewGuestDetails(tt.guest[0], tt.guest[1], tt.guest[2])
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransitionTable(t *testing.T) {
	all := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCheckedIn,
		booking.StatusCheckedOut,
	}

	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:    {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed:  {booking.StatusCancelled, booking.StatusCheckedIn},
		booking.StatusCheckedIn:  {booking.StatusCheckedOut},
		booking.StatusCancelled:  {booking.StatusPending, booking.StatusConfirmed},
		booking.StatusCheckedOut: {},
	}

	isAllowed := func(from, to booking.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, isAllowed(from, to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionTo(t *testing.T) {
	rm := activeRoom(t)

	t.Run("valid transition mutates status", func(t *testing.T) {
		b := newBooking(t, rm, stay(t, "2026-07-10", "2026-07-13"))
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("invalid transition leaves status unchanged", func(t *testing.T) {
		b := newBooking(t, rm, stay(t, "2026-07-10", "2026-07-13"))
		err := b.TransitionTo(booking.StatusCheckedOut)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		b := newBooking(t, rm, stay(t, "2026-07-10", "2026-07-13"))
		err := b.TransitionTo(booking.Status("EXPLODED"))
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("reactivation round trip", func(t *testing.T) {
		b := newBooking(t, rm, stay(t, "2026-07-10", "2026-07-13"))
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestHoldsRoom(t *testing.T) {
	assert.True(t, booking.StatusPending.HoldsRoom())
	assert.True(t, booking.StatusConfirmed.HoldsRoom())
	assert.False(t, booking.StatusCancelled.HoldsRoom())
	assert.False(t, booking.StatusCheckedIn.HoldsRoom())
	assert.False(t, booking.StatusCheckedOut.HoldsRoom())
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "CANCELLED", "CHECKED_IN", "CHECKED_OUT"} {
		_, err := booking.NewStatus(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"pending", "Confirmed", "DONE", ""} {
		_, err := booking.NewStatus(s)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, s)
	}
}
