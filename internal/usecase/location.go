package usecase

import (
	"context"
	"log/slog"

	"appointment-finder/internal/domain/location"
)

//go:generate mockgen -source=location.go -destination=../../tests/mock/usecase/location.go -package=usecasemock

// LocationUseCase exposes the postal code table in both directions.
type LocationUseCase interface {
	LocationsByPostalCode(ctx context.Context, code location.PostalCode) []location.LocationID
	PostalCodesByLocation(ctx context.Context, id location.LocationID) []location.PostalCode
}

type locationUseCaseImpl struct {
	directory LocationDirectory
	logger    *slog.Logger
}

func NewLocationUseCase(directory LocationDirectory, logger *slog.Logger) LocationUseCase {
	return &locationUseCaseImpl{directory: directory, logger: logger}
}

func (uc *locationUseCaseImpl) LocationsByPostalCode(ctx context.Context, code location.PostalCode) []location.LocationID {
	ids := uc.directory.Resolve(code)
	uc.logger.DebugContext(ctx, "resolved postal code", "postal_code", code.String(), "locations", len(ids))
	return ids
}

func (uc *locationUseCaseImpl) PostalCodesByLocation(ctx context.Context, id location.LocationID) []location.PostalCode {
	codes := uc.directory.ResolveInverse(id)
	uc.logger.DebugContext(ctx, "resolved location", "location_id", id.String(), "postal_codes", len(codes))
	return codes
}
