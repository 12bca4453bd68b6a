package usecase

import (
	"context"
	"time"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/domain/location"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

// Geocoder extracts raw postal code strings for a coordinate from an external source.
type Geocoder interface {
	PostalCodes(ctx context.Context, coord geo.Coordinate, credential string) ([]string, error)
	RequiresCredential() bool
}

type LocationDirectory interface {
	Resolve(code location.PostalCode) []location.LocationID
	ResolveInverse(id location.LocationID) []location.PostalCode
}

// AppointmentSource answers one location's next-available query. Failures are
// reported as appointment.Failed results, never as errors.
type AppointmentSource interface {
	NextAvailable(ctx context.Context, id location.LocationID) appointment.QueryResult
}

type QueryObserver interface {
	ObserveLocationQuery(outcome string, elapsed time.Duration)
	ObserveSearch(result string)
}
