package request

import (
	"appointment-finder/internal/domain/geo"
)

// Pointers distinguish a missing parameter from the valid value 0.
type NextAppointmentQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lng *float64 `form:"lng" binding:"required"`
}

func (q *NextAppointmentQuery) ToDomain() (geo.Coordinate, error) {
	return geo.NewCoordinate(*q.Lat, *q.Lng)
}
