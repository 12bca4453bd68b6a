package components

import (
	"log/slog"
	"net/http"

	"appointment-finder/internal/infra/geocoding"
	"appointment-finder/internal/infra/scheduling"
	"appointment-finder/internal/pkg/config"
	"appointment-finder/internal/pkg/metrics"
	"appointment-finder/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewGeocoder,
		fx.Annotate(
			NewSchedulingClient,
			fx.As(new(usecase.AppointmentSource)),
		),
		fx.Annotate(
			NewMetricsRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(usecase.QueryObserver)),
		),
	),
)

func NewGeocoder(cfg config.GeocodingConfig, logger *slog.Logger) (usecase.Geocoder, error) {
	switch cfg.Provider {
	case config.GeocodingProviderGeoNames:
		g, err := geocoding.LoadGeoNames(cfg.GeoNamesFile, cfg.SearchRadiusKm, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("geonames geocoder ready", "file", cfg.GeoNamesFile, "postal_codes", g.Size())
		return g, nil
	default:
		return geocoding.NewGoogle(cfg, &http.Client{Timeout: cfg.RequestTimeout}, logger), nil
	}
}

// NewSchedulingClient keeps one idle connection per concurrent worker. Timeouts
// are applied per request by the client itself.
func NewSchedulingClient(cfg config.SchedulingConfig, logger *slog.Logger) *scheduling.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxConcurrency
	return scheduling.NewClient(cfg, &http.Client{Transport: transport}, logger)
}

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
