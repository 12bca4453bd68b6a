package errs

import "errors"

// Sentinel errors shared by the domain, usecase and handler layers
var (
	// Input errors
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidPostalCode  = errors.New("invalid postal code")
	ErrInvalidLocationID  = errors.New("invalid location id")
	ErrCredentialRequired = errors.New("geocoding credential required")

	// Geocoding errors
	ErrGeoLookup        = errors.New("no postal code found for coordinate")
	ErrGeocodingService = errors.New("geocoding service failure")

	// Location table errors
	ErrLocationTableUnavailable = errors.New("location table unavailable")
)
