package usecase

import (
	"context"
	"errors"
	"log/slog"

	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/pkg/errs"
)

//go:generate mockgen -source=locate.go -destination=../../tests/mock/usecase/locate.go -package=usecasemock

type GeoLocator interface {
	Locate(ctx context.Context, coord geo.Coordinate, credential string) (location.PostalCode, error)
	RequiresCredential() bool
}

type geoLocatorImpl struct {
	geocoder Geocoder
	logger   *slog.Logger
}

func NewGeoLocator(geocoder Geocoder, logger *slog.Logger) GeoLocator {
	return &geoLocatorImpl{geocoder: geocoder, logger: logger}
}

func (l *geoLocatorImpl) RequiresCredential() bool {
	return l.geocoder.RequiresCredential()
}

// Locate reduces the geocoder's postal codes to the most frequent one.
func (l *geoLocatorImpl) Locate(ctx context.Context, coord geo.Coordinate, credential string) (location.PostalCode, error) {
	raw, err := l.geocoder.PostalCodes(ctx, coord, credential)
	if err != nil {
		if errors.Is(err, errs.ErrCredentialRequired) || errors.Is(err, errs.ErrGeocodingService) {
			return 0, err
		}
		return 0, errs.Mark(errs.Wrap(err, "reverse geocoding failed"), errs.ErrGeocodingService)
	}

	code, ok := location.DominantPostalCode(raw)
	if !ok {
		return 0, errs.Mark(errs.Newf("no postal code component for %s", coord.String()), errs.ErrGeoLookup)
	}

	l.logger.Debug("located postal code", "coordinate", coord.String(), "postal_code", code.String(), "candidates", len(raw))
	return code, nil
}
