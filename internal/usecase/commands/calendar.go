package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/calendar"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlockCommand struct {
	RoomID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Kind      string
	Notes     string
}

// CalendarCommands manages maintenance and admin-block busy periods, which
// exist independently of any booking. BOOKING_HOLD entries are owned by the
// booking lifecycle and cannot be created or deleted here.
type CalendarCommands interface {
	CreateBlock(ctx context.Context, actor user.Actor, cmd CreateBlockCommand) (*queries.BusyPeriodView, error)
	DeleteBlock(ctx context.Context, actor user.Actor, blockID uuid.UUID) error
}

type calendarCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCalendarCommands(uow shared.UnitOfWork) CalendarCommands {
	return &calendarCommandsImpl{uow: uow}
}

func (c *calendarCommandsImpl) CreateBlock(ctx context.Context, actor user.Actor, cmd CreateBlockCommand) (*queries.BusyPeriodView, error) {
	if !actor.IsElevated() {
		return nil, ErrForbidden
	}

	kind, err := calendar.NewKind(cmd.Kind)
	if err != nil {
		return nil, NewValidationError("kind", "kind must be MAINTENANCE or ADMIN_BLOCK")
	}

	period, err := timespan.NewDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, NewValidationError("end_date", "end date must be after start date")
	}

	createdBy := actor.ID
	block, err := calendar.NewBlock(cmd.RoomID, period, kind, cmd.Notes, &createdBy)
	if err != nil {
		return nil, NewValidationError("kind", "kind must be MAINTENANCE or ADMIN_BLOCK")
	}

	var view *queries.BusyPeriodView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindForUpdate(ctx, cmd.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.BusyPeriods().Create(ctx, block); err != nil {
			return err
		}

		view = toBusyPeriodView(block)
		return nil
	})
	if err != nil {
		return nil, markConcurrencyConflict(err)
	}
	return view, nil
}

func (c *calendarCommandsImpl) DeleteBlock(ctx context.Context, actor user.Actor, blockID uuid.UUID) error {
	if !actor.IsElevated() {
		return ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		block, err := tx.BusyPeriods().FindByID(ctx, blockID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBlockNotFound
			}
			return err
		}

		if block.Kind() == calendar.KindBookingHold {
			return NewValidationError("id", "booking holds are managed through the booking lifecycle")
		}

		if _, err := tx.Rooms().FindForUpdate(ctx, block.RoomID()); err != nil {
			return err
		}

		return tx.BusyPeriods().DeleteByID(ctx, blockID)
	})
	return markConcurrencyConflict(err)
}

func toBusyPeriodView(p *calendar.BusyPeriod) *queries.BusyPeriodView {
	return &queries.BusyPeriodView{
		ID:        p.ID(),
		RoomID:    p.RoomID(),
		StartDate: timespan.FormatDate(p.Period().Start()),
		EndDate:   timespan.FormatDate(p.Period().End()),
		Kind:      string(p.Kind()),
		BookingID: p.BookingID(),
		Notes:     p.Notes(),
		CreatedAt: p.CreatedAt(),
	}
}
