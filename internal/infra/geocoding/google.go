package geocoding

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/pkg/config"
	"appointment-finder/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

const postalCodeType = "postal_code"

// Google reverse-geocodes through the Google Geocoding API. The caller's key
// is used for each request; the configured key is only a fallback.
type Google struct {
	defaultKey string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewGoogle(cfg config.GeocodingConfig, httpClient *http.Client, logger *slog.Logger) *Google {
	return &Google{
		defaultKey: cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (g *Google) RequiresCredential() bool {
	return g.defaultKey == ""
}

// PostalCodes returns the long name of every postal_code component across all
// results, in response order.
func (g *Google) PostalCodes(ctx context.Context, coord geo.Coordinate, credential string) ([]string, error) {
	key := credential
	if key == "" {
		key = g.defaultKey
	}
	if key == "" {
		return nil, errs.ErrCredentialRequired
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(key),
		maps.WithHTTPClient(g.httpClient),
	}
	if g.baseURL != "" {
		opts = append(opts, maps.WithBaseURL(g.baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(g.logger, infra.KindTransport, "failed to build geocoding client", err), errs.ErrGeocodingService)
	}

	results, err := client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coord.Latitude(), Lng: coord.Longitude()},
	})
	// The client accepts OK and ZERO_RESULTS; any other API status is an error.
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(g.logger, infra.KindUpstreamStatus, "reverse geocoding failed for "+coord.String(), err), errs.ErrGeocodingService)
	}

	return extractPostalCodes(results), nil
}

func extractPostalCodes(results []maps.GeocodingResult) []string {
	var codes []string
	for _, result := range results {
		for _, component := range result.AddressComponents {
			if slices.Contains(component.Types, postalCodeType) {
				codes = append(codes, component.LongName)
			}
		}
	}
	return codes
}
