package geo

import (
	"math"
	"strconv"

	"appointment-finder/internal/pkg/errs"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

type Coordinate struct {
	lat float64
	lng float64
}

func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return Coordinate{}, errs.Mark(errs.Newf("latitude %v out of range", lat), errs.ErrInvalidCoordinate)
	}
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return Coordinate{}, errs.Mark(errs.Newf("longitude %v out of range", lng), errs.ErrInvalidCoordinate)
	}
	return Coordinate{lat: lat, lng: lng}, nil
}

func (c Coordinate) Latitude() float64  { return c.lat }
func (c Coordinate) Longitude() float64 { return c.lng }

// String renders "lat,lng", the form reverse geocoders accept.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.lng, 'f', -1, 64)
}
