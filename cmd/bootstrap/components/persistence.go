package components

import (
	"hotelier/internal/infra/readstore"
	"hotelier/internal/infra/uow"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)
