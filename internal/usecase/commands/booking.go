package commands

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/calendar"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	NumberOfGuests  int
	SpecialRequests string
	UserID          *uuid.UUID
}

type BookingCommands interface {
	// Create validates the request, consults the availability oracle, prices
	// the stay and persists booking + BOOKING_HOLD ledger entry — all inside
	// one transaction holding the room's row lock.
	Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error)
	// UpdateStatus applies the explicit transition table and keeps the
	// busy-period ledger in sync with the booking's status.
	UpdateStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clock}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error) {
	guest, err := booking.NewGuestDetails(cmd.GuestName, cmd.GuestEmail, cmd.GuestPhone)
	if err != nil {
		return nil, guestValidationError(err)
	}

	stay, err := timespan.NewDateRange(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, NewValidationError("check_out_date", "check-out date must be after check-in date")
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, cmd.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		available, err := shared.IsRoomAvailable(ctx, tx.Conflicts(), rm.ID(), stay)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomUnavailable
		}

		seasons, err := tx.SeasonalPrices().ListByRoom(ctx, rm.ID())
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(
			c.clock.Now(),
			rm,
			room.NewRateCard(rm, seasons),
			stay,
			guest,
			cmd.NumberOfGuests,
			cmd.SpecialRequests,
			cmd.UserID,
		)
		if err != nil {
			return bookingValidationError(err)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := tx.BusyPeriods().Create(ctx, calendar.NewHold(b)); err != nil {
			return err
		}

		view = toBookingView(b, rm.Name())
		return nil
	})
	if err != nil {
		return nil, markConcurrencyConflict(err)
	}
	return view, nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error) {
	if !actor.IsElevated() {
		return nil, ErrForbidden
	}

	next, err := booking.NewStatus(newStatus)
	if err != nil {
		return nil, NewValidationError("status", "unrecognized status value")
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		// Lock the room row: ledger mutations are serialized per room.
		rm, err := tx.Rooms().FindForUpdate(ctx, b.RoomID())
		if err != nil {
			return err
		}

		previous := b.Status()
		if err := b.TransitionTo(next); err != nil {
			return NewValidationError("status", "transition from "+previous.String()+" to "+next.String()+" is not allowed")
		}

		if err := tx.Bookings().UpdateStatus(ctx, b.ID(), b.Status()); err != nil {
			return err
		}

		switch {
		case next == booking.StatusCancelled:
			if _, err := tx.BusyPeriods().DeleteByBookingID(ctx, b.ID()); err != nil {
				return err
			}
		case previous == booking.StatusCancelled && next.HoldsRoom():
			// Reactivation recreates the hold for the original dates without
			// re-checking availability: a conflict introduced while the
			// booking was cancelled is knowingly reintroduced.
			exists, err := tx.BusyPeriods().ExistsForBooking(ctx, b.ID())
			if err != nil {
				return err
			}
			if !exists {
				if err := tx.BusyPeriods().Create(ctx, calendar.NewHold(b)); err != nil {
					return err
				}
			}
		}

		view = toBookingView(b, rm.Name())
		view.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, markConcurrencyConflict(err)
	}
	return view, nil
}

func toBookingView(b *booking.Booking, roomName string) *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		RoomName:        roomName,
		CheckInDate:     timespan.FormatDate(b.Stay().Start()),
		CheckOutDate:    timespan.FormatDate(b.Stay().End()),
		GuestName:       b.Guest().Name(),
		GuestEmail:      b.Guest().Email(),
		GuestPhone:      b.Guest().Phone(),
		NumberOfGuests:  b.NumberOfGuests(),
		SpecialRequests: b.SpecialRequests(),
		UserID:          b.UserID(),
		TotalPrice:      b.TotalPrice().String(),
		Status:          b.Status().String(),
		Nights:          b.Nights(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func guestValidationError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidEmail):
		return NewValidationError("guest_email", "guest email is invalid")
	case errors.Is(err, booking.ErrEmptyGuestPhone):
		return NewValidationError("guest_phone", "guest phone is required")
	default:
		return NewValidationError("guest_name", err.Error())
	}
}

func bookingValidationError(err error) error {
	switch {
	case errors.Is(err, booking.ErrCheckInInPast):
		return NewValidationError("check_in_date", "check-in date cannot be in the past")
	case errors.Is(err, booking.ErrCapacityExceeded):
		return NewValidationError("number_of_guests", "number of guests exceeds room capacity")
	case errors.Is(err, booking.ErrRoomInactive):
		return NewValidationError("room_id", "room is not active")
	default:
		return err
	}
}

// markConcurrencyConflict translates retry-exhausted transaction conflicts
// into the caller-visible sentinel; callers should retry the whole
// operation once.
func markConcurrencyConflict(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrConcurrencyConflict)
	}
	return err
}
