package commands

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain/money"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/timespan"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSeasonalPriceCommand struct {
	RoomID      uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	NightlyRate string
}

// RoomCommands covers the pricing administration the booking core owns:
// seasonal overrides of a room's nightly rate. Room CRUD itself belongs to
// the admin collaborators outside this service.
type RoomCommands interface {
	CreateSeasonalPrice(ctx context.Context, actor user.Actor, cmd CreateSeasonalPriceCommand) (*queries.SeasonalPriceView, error)
	DeleteSeasonalPrice(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) CreateSeasonalPrice(ctx context.Context, actor user.Actor, cmd CreateSeasonalPriceCommand) (*queries.SeasonalPriceView, error) {
	if !actor.IsElevated() {
		return nil, ErrForbidden
	}

	rate, err := money.Parse(cmd.NightlyRate)
	if err != nil {
		return nil, NewValidationError("nightly_rate", "nightly rate must be a decimal amount with at most 2 fractional digits")
	}

	season, err := room.NewSeasonalPrice(uuid.New(), cmd.RoomID, cmd.Name, cmd.StartDate, cmd.EndDate, rate)
	if err != nil {
		return nil, seasonValidationError(err)
	}

	var view *queries.SeasonalPriceView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindForUpdate(ctx, cmd.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.SeasonalPrices().Create(ctx, season); err != nil {
			return err
		}

		view = &queries.SeasonalPriceView{
			ID:          season.ID(),
			RoomID:      season.RoomID(),
			Name:        season.Name(),
			StartDate:   timespan.FormatDate(season.StartDate()),
			EndDate:     timespan.FormatDate(season.EndDate()),
			NightlyRate: season.Rate().String(),
			CreatedAt:   season.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, markConcurrencyConflict(err)
	}
	return view, nil
}

func (c *roomCommandsImpl) DeleteSeasonalPrice(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsElevated() {
		return ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.SeasonalPrices().DeleteByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSeasonNotFound
			}
			return err
		}
		return nil
	})
	return markConcurrencyConflict(err)
}

func seasonValidationError(err error) error {
	switch {
	case errors.Is(err, room.ErrEmptySeasonName):
		return NewValidationError("name", "season name is required")
	case errors.Is(err, room.ErrInvalidSeason):
		return NewValidationError("end_date", "end date must be after start date")
	case errors.Is(err, room.ErrNegativeSeasonRate):
		return NewValidationError("nightly_rate", "nightly rate cannot be negative")
	default:
		return err
	}
}
