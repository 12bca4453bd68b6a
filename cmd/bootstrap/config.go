package bootstrap

import (
	"appointment-finder/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SchedulingConfig { return cfg.Scheduling },
		func(cfg config.Config) config.GeocodingConfig { return cfg.Geocoding },
	),
)
