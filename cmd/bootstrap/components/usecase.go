package components

import (
	"appointment-finder/internal/pkg/clock"
	"appointment-finder/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewGeoLocator,
		usecase.NewAvailabilityService,
		usecase.NewFinderUseCase,
		usecase.NewLocationUseCase,
	),
)
