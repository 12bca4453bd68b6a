//go:build unit

package geocoding_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/infra/geocoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// country, postal code, place, admin1 name, admin1 code, admin2 name, admin2 code, admin3 name, admin3 code, lat, lon, accuracy
const geoNamesDump = "US\t65109\tJefferson City\tMissouri\tMO\tCole\t051\t\t\t38.5767\t-92.2735\t4\n" +
	"US\t65101\tJefferson City\tMissouri\tMO\tCole\t051\t\t\t38.5468\t-92.1525\t4\n" +
	"US\t94107\tSan Francisco\tCalifornia\tCA\tSan Francisco\t075\t\t\t37.7621\t-122.3971\t4\n" +
	"US\tbroken\tline\n" +
	"US\t99999\tNowhere\tNone\tNN\t\t\t\t\tnot-a-lat\t0\t1\n"

func TestGeoNames_PostalCodes(t *testing.T) {
	g, err := geocoding.NewGeoNames(strings.NewReader(geoNamesDump), 20, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.False(t, g.RequiresCredential())

	t.Run("nearest postal code first", func(t *testing.T) {
		coord, err := geo.NewCoordinate(38.614407, -92.276468)
		require.NoError(t, err)

		got, err := g.PostalCodes(context.Background(), coord, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"65109", "65101"}, got)
	})

	t.Run("nothing within radius", func(t *testing.T) {
		coord, err := geo.NewCoordinate(0, 0)
		require.NoError(t, err)

		got, err := g.PostalCodes(context.Background(), coord, "")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		coord, _ := geo.NewCoordinate(37.76, -122.39)

		_, err := g.PostalCodes(ctx, coord, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewGeoNames_Errors(t *testing.T) {
	t.Run("non-positive radius", func(t *testing.T) {
		_, err := geocoding.NewGeoNames(strings.NewReader(geoNamesDump), 0, discardLogger())
		assert.Error(t, err)
	})

	t.Run("no usable rows", func(t *testing.T) {
		_, err := geocoding.NewGeoNames(strings.NewReader("garbage\n"), 5, discardLogger())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := geocoding.LoadGeoNames(filepath.Join(t.TempDir(), "US.txt"), 5, discardLogger())
		assert.True(t, infra.IsKind(err, infra.KindSource))
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "US.txt")
		require.NoError(t, os.WriteFile(path, []byte(geoNamesDump), 0o600))

		g, err := geocoding.LoadGeoNames(path, 5, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 3, g.Size())
	})
}

// Centroids on either side of the antimeridian, about 2 km apart.
const dateLineDump = "FJ\t00001\tEast\t\t\t\t\t\t\t-17.0000\t179.9900\t4\n" +
	"FJ\t00002\tWest\t\t\t\t\t\t\t-17.0000\t-179.9900\t4\n" +
	"AQ\t00003\tPole\t\t\t\t\t\t\t89.9950\t45.0000\t4\n"

func TestGeoNames_PostalCodesAcrossAntimeridian(t *testing.T) {
	g, err := geocoding.NewGeoNames(strings.NewReader(dateLineDump), 5, discardLogger())
	require.NoError(t, err)

	tests := []struct {
		name     string
		lat, lng float64
		want     []string
	}{
		{name: "east of the line sees the west centroid", lat: -17.0, lng: 179.995, want: []string{"00001", "00002"}},
		{name: "west of the line sees the east centroid", lat: -17.0, lng: -179.995, want: []string{"00002", "00001"}},
		{name: "just short of the line", lat: -17.0, lng: 179.999, want: []string{"00001", "00002"}},
		{name: "near the pole any longitude matches", lat: 89.999, lng: -135, want: []string{"00003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := geo.NewCoordinate(tt.lat, tt.lng)
			require.NoError(t, err)

			got, err := g.PostalCodes(context.Background(), coord, "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
