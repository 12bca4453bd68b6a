package request

import (
	"appointment-finder/internal/domain/location"
)

type PostalCodeURI struct {
	Code string `uri:"code" binding:"required"`
}

func (u *PostalCodeURI) ToDomain() (location.PostalCode, error) {
	return location.ParsePostalCode(u.Code)
}

type LocationURI struct {
	ID string `uri:"id" binding:"required"`
}

func (u *LocationURI) ToDomain() (location.LocationID, error) {
	return location.NewLocationID(u.ID)
}
