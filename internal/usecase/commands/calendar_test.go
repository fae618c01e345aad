//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelier/internal/domain/calendar"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/domain/user"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockCmd(roomID uuid.UUID, kind, start, end string) commands.CreateBlockCommand {
	s, _ := timespan.ParseDate(start)
	e, _ := timespan.ParseDate(end)
	return commands.CreateBlockCommand{
		RoomID:    roomID,
		StartDate: s,
		EndDate:   e,
		Kind:      kind,
		Notes:     "plumbing",
	}
}

func TestCreateBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		view, err := cmds.CreateBlock(ctx, staff(), blockCmd(rm.ID(), "MAINTENANCE", "2026-08-01", "2026-08-05"))
		require.NoError(t, err)
		assert.Equal(t, "MAINTENANCE", view.Kind)
		assert.Nil(t, view.BookingID)
		require.Len(t, store.busy, 1)
	})

	t.Run("blocked dates become unavailable for booking", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		calCmds := commands.NewCalendarCommands(&fakeUoW{store: store})
		bookCmds := newCommands(store)

		_, err := calCmds.CreateBlock(ctx, staff(), blockCmd(rm.ID(), "ADMIN_BLOCK", "2026-07-11", "2026-07-14"))
		require.NoError(t, err)

		_, err = bookCmds.Create(ctx, createCmd(rm.ID(), "2026-07-10", "2026-07-12"))
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("requires an elevated actor", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		guestActor := user.Actor{ID: uuid.New(), Role: user.RoleGuest}
		_, err := cmds.CreateBlock(ctx, guestActor, blockCmd(rm.ID(), "MAINTENANCE", "2026-08-01", "2026-08-05"))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("booking hold kind is rejected", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		_, err := cmds.CreateBlock(ctx, staff(), blockCmd(rm.ID(), "BOOKING_HOLD", "2026-08-01", "2026-08-05"))
		ve, ok := commands.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "kind", ve.Field)
	})

	t.Run("inverted range", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		_, err := cmds.CreateBlock(ctx, staff(), blockCmd(rm.ID(), "MAINTENANCE", "2026-08-05", "2026-08-01"))
		ve, ok := commands.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "end_date", ve.Field)
	})

	t.Run("unknown room", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		_, err := cmds.CreateBlock(ctx, staff(), blockCmd(uuid.New(), "MAINTENANCE", "2026-08-01", "2026-08-05"))
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestDeleteBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("success frees the dates", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		view, err := cmds.CreateBlock(ctx, staff(), blockCmd(rm.ID(), "MAINTENANCE", "2026-08-01", "2026-08-05"))
		require.NoError(t, err)

		require.NoError(t, cmds.DeleteBlock(ctx, staff(), view.ID))
		assert.Empty(t, store.busy)
	})

	t.Run("booking holds cannot be deleted here", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		calCmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		_, err := newCommands(store).Create(ctx, createCmd(rm.ID(), "2026-07-10", "2026-07-13"))
		require.NoError(t, err)

		var holdID uuid.UUID
		for id, p := range store.busy {
			require.Equal(t, calendar.KindBookingHold, p.Kind())
			holdID = id
		}

		err = calCmds.DeleteBlock(ctx, staff(), holdID)
		ve, ok := commands.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "id", ve.Field)
		assert.Len(t, store.busy, 1)
	})

	t.Run("unknown block", func(t *testing.T) {
		store := newFakeStore()
		seedRoom(t, store)
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		err := cmds.DeleteBlock(ctx, staff(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrBlockNotFound)
	})

	t.Run("requires an elevated actor", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewCalendarCommands(&fakeUoW{store: store})

		guestActor := user.Actor{ID: uuid.New(), Role: user.RoleGuest}
		err := cmds.DeleteBlock(ctx, guestActor, uuid.New())
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestSeasonalPriceCommands(t *testing.T) {
	ctx := context.Background()

	seasonCmd := func(roomID uuid.UUID, rate string) commands.CreateSeasonalPriceCommand {
		s, _ := timespan.ParseDate("2026-06-01")
		e, _ := timespan.ParseDate("2026-06-30")
		return commands.CreateSeasonalPriceCommand{
			RoomID:      roomID,
			Name:        "early summer",
			StartDate:   s,
			EndDate:     e,
			NightlyRate: rate,
		}
	}

	t.Run("create and delete", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewRoomCommands(&fakeUoW{store: store})

		view, err := cmds.CreateSeasonalPrice(ctx, staff(), seasonCmd(rm.ID(), "75.50"))
		require.NoError(t, err)
		assert.Equal(t, "75.50", view.NightlyRate)
		require.Len(t, store.seasons, 1)

		require.NoError(t, cmds.DeleteSeasonalPrice(ctx, staff(), view.ID))
		assert.Empty(t, store.seasons)
	})

	t.Run("malformed rate", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewRoomCommands(&fakeUoW{store: store})

		_, err := cmds.CreateSeasonalPrice(ctx, staff(), seasonCmd(rm.ID(), "75.505"))
		ve, ok := commands.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "nightly_rate", ve.Field)
	})

	t.Run("requires an elevated actor", func(t *testing.T) {
		store := newFakeStore()
		rm := seedRoom(t, store)
		cmds := commands.NewRoomCommands(&fakeUoW{store: store})

		guestActor := user.Actor{ID: uuid.New(), Role: user.RoleGuest}
		_, err := cmds.CreateSeasonalPrice(ctx, guestActor, seasonCmd(rm.ID(), "75.50"))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("unknown season on delete", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewRoomCommands(&fakeUoW{store: store})

		err := cmds.DeleteSeasonalPrice(ctx, staff(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrSeasonNotFound)
	})
}
