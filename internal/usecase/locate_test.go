//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/pkg/errs"
	"appointment-finder/internal/usecase"
	"appointment-finder/tests/common/builder"
	usecasemock "appointment-finder/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeoLocator_Locate(t *testing.T) {
	coord := builder.SanFrancisco()

	tests := []struct {
		name     string
		raw      []string
		geoErr   error
		want     location.PostalCode
		errIs    error
		errIsNot error
	}{
		{
			name: "single postal code",
			raw:  []string{"94107"},
			want: 94107,
		},
		{
			name: "mode wins over first",
			raw:  []string{"94110", "94107", "94107"},
			want: 94107,
		},
		{
			name: "frequency tie resolved by first encountered",
			raw:  []string{"94110", "94107", "94107", "94110"},
			want: 94110,
		},
		{
			name: "unparseable values skipped",
			raw:  []string{"n/a", "94107-1234"},
			want: 94107,
		},
		{
			name:  "no postal code component",
			raw:   nil,
			errIs: errs.ErrGeoLookup,
		},
		{
			name:  "only unparseable values",
			raw:   []string{"SW1A 1AA"},
			errIs: errs.ErrGeoLookup,
		},
		{
			name:   "credential missing passes through",
			geoErr: errs.ErrCredentialRequired,
			errIs:  errs.ErrCredentialRequired,
		},
		{
			name:     "unmarked failure becomes service failure",
			geoErr:   errors.New("connection reset"),
			errIs:    errs.ErrGeocodingService,
			errIsNot: errs.ErrGeoLookup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			geocoder := usecasemock.NewMockGeocoder(ctrl)
			geocoder.EXPECT().PostalCodes(gomock.Any(), coord, "key").Return(tt.raw, tt.geoErr).Times(1)

			locator := usecase.NewGeoLocator(geocoder, discardLogger())
			got, err := locator.Locate(context.Background(), coord, "key")

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				if tt.errIsNot != nil {
					assert.NotErrorIs(t, err, tt.errIsNot)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeoLocator_RequiresCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	geocoder := usecasemock.NewMockGeocoder(ctrl)
	geocoder.EXPECT().RequiresCredential().Return(true)

	assert.True(t, usecase.NewGeoLocator(geocoder, discardLogger()).RequiresCredential())
}
