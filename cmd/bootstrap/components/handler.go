package components

import (
	"appointment-finder/internal/handler"
	"appointment-finder/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewLocationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
