package bootstrap

import (
	"appointment-finder/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything the CLI needs: config, logging, the location table,
// upstream clients and usecases.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	LocationTableModule,
	components.InfraModule,
	components.UseCaseModule,
)

// Module adds the HTTP handlers and router on top of CoreModule.
var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
