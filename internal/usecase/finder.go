package usecase

import (
	"context"
	"log/slog"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/domain/location"
)

//go:generate mockgen -source=finder.go -destination=../../tests/mock/usecase/finder.go -package=usecasemock

const (
	searchAvailable   = "available"
	searchUnavailable = "unavailable"
	searchError       = "error"
)

// FinderResult is the answer to one earliest-appointment search.
type FinderResult struct {
	PostalCode   location.PostalCode
	LocationIDs  []location.LocationID
	Appointments []appointment.Record
	Available    bool
	// Diagnostics carries the empty and failed locations of the batch.
	Diagnostics appointment.Availability
}

type FinderUseCase interface {
	FindEarliest(ctx context.Context, coord geo.Coordinate, credential string) (*FinderResult, error)
	RequiresCredential() bool
}

type finderUseCaseImpl struct {
	locator      GeoLocator
	directory    LocationDirectory
	availability AvailabilityService
	observer     QueryObserver
	logger       *slog.Logger
}

func NewFinderUseCase(
	locator GeoLocator,
	directory LocationDirectory,
	availability AvailabilityService,
	observer QueryObserver,
	logger *slog.Logger,
) FinderUseCase {
	return &finderUseCaseImpl{
		locator:      locator,
		directory:    directory,
		availability: availability,
		observer:     observer,
		logger:       logger,
	}
}

func (uc *finderUseCaseImpl) RequiresCredential() bool {
	return uc.locator.RequiresCredential()
}

// FindEarliest runs locate, resolve, query and reduce. Only the locate step can
// fail; scheduling problems surface as diagnostics on a well-formed result.
func (uc *finderUseCaseImpl) FindEarliest(ctx context.Context, coord geo.Coordinate, credential string) (*FinderResult, error) {
	code, err := uc.locator.Locate(ctx, coord, credential)
	if err != nil {
		uc.observer.ObserveSearch(searchError)
		return nil, err
	}

	ids := uc.directory.Resolve(code)
	if len(ids) == 0 {
		uc.logger.Warn("no locations registered for postal code", "postal_code", code.String())
	}

	availability := uc.availability.NextAvailable(ctx, ids)
	uc.reportDiagnostics(code, availability)

	records := appointment.Records(availability.Earliest)
	result := &FinderResult{
		PostalCode:   code,
		LocationIDs:  ids,
		Appointments: records,
		Available:    len(records) > 0,
		Diagnostics:  availability,
	}

	if !result.Available {
		uc.logger.Warn("no appointments available for specified location", "postal_code", code.String())
		uc.observer.ObserveSearch(searchUnavailable)
		return result, nil
	}

	uc.observer.ObserveSearch(searchAvailable)
	return result, nil
}

func (uc *finderUseCaseImpl) reportDiagnostics(code location.PostalCode, a appointment.Availability) {
	if len(a.Empty) > 0 {
		uc.logger.Warn("no appointments available",
			"postal_code", code.String(),
			"location_ids", a.Empty,
		)
	}
	for _, status := range a.FailedStatuses() {
		uc.logger.Warn("next-available query failed",
			"postal_code", code.String(),
			"status_code", status,
			"location_ids", a.Failed[status],
		)
	}
}
