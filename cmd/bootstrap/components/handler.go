package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
