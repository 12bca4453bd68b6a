//go:build unit

package geo_test

import (
	"math"
	"testing"

	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lng   float64
		errIs error
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "north pole", lat: 90, lng: 0},
		{name: "antimeridian west", lat: 0, lng: -180},
		{name: "antimeridian east", lat: 0, lng: 180},
		{name: "latitude above range", lat: 90.0001, lng: 0, errIs: errs.ErrInvalidCoordinate},
		{name: "latitude below range", lat: -90.0001, lng: 0, errIs: errs.ErrInvalidCoordinate},
		{name: "longitude above range", lat: 0, lng: 180.5, errIs: errs.ErrInvalidCoordinate},
		{name: "NaN latitude", lat: math.NaN(), lng: 0, errIs: errs.ErrInvalidCoordinate},
		{name: "NaN longitude", lat: 0, lng: math.NaN(), errIs: errs.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := geo.NewCoordinate(tt.lat, tt.lng)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, c.Latitude())
			assert.Equal(t, tt.lng, c.Longitude())
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	c, err := geo.NewCoordinate(38.614407, -92.276468)
	require.NoError(t, err)
	assert.Equal(t, "38.614407,-92.276468", c.String())
}
