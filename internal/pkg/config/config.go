package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (credentials, upstream URLs, etc.)
// - default: Values common across all environments (timeouts, concurrency, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server        ServerConfig
	CORS          CORSConfig
	Log           LogConfig
	Geocoding     GeocodingConfig
	Scheduling    SchedulingConfig
	LocationTable LocationTableConfig
	DB            DBConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Geocoding-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

const (
	GeocodingProviderGoogle   = "google"
	GeocodingProviderGeoNames = "geonames"
)

type GeocodingConfig struct {
	Provider string `envconfig:"GEOCODING_PROVIDER" default:"google"`
	// APIKey is only a fallback; callers normally pass their own key per request.
	APIKey         string        `envconfig:"GEOCODING_API_KEY"`
	BaseURL        string        `envconfig:"GEOCODING_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"GEOCODING_TIMEOUT" default:"10s"`
	GeoNamesFile   string        `envconfig:"GEONAMES_FILE" default:"US.txt"`
	SearchRadiusKm float64       `envconfig:"GEONAMES_SEARCH_RADIUS_KM" default:"5"`
}

type SchedulingConfig struct {
	BaseURL        string        `envconfig:"SCHEDULING_BASE_URL" default:"https://manage-livestage.solvhealth.com/partner/next-available/"`
	RequestTimeout time.Duration `envconfig:"SCHEDULING_TIMEOUT" default:"10s"`
	MaxConcurrency int           `envconfig:"SCHEDULING_MAX_CONCURRENCY" default:"8"`
	RateLimit      float64       `envconfig:"SCHEDULING_RATE_LIMIT" default:"20"`
	RateBurst      int           `envconfig:"SCHEDULING_RATE_BURST" default:"5"`
}

const (
	LocationSourceCSV      = "csv"
	LocationSourcePostgres = "postgres"
)

type LocationTableConfig struct {
	Source  string `envconfig:"LOCATION_TABLE_SOURCE" default:"csv"`
	CSVPath string `envconfig:"LOCATION_TABLE_CSV" default:"mapping.csv"`
}

// DBConfig is only read when LOCATION_TABLE_SOURCE=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Geocoding.Provider {
	case GeocodingProviderGoogle, GeocodingProviderGeoNames:
	default:
		return fmt.Errorf("unsupported GEOCODING_PROVIDER %q", c.Geocoding.Provider)
	}
	switch c.LocationTable.Source {
	case LocationSourceCSV, LocationSourcePostgres:
	default:
		return fmt.Errorf("unsupported LOCATION_TABLE_SOURCE %q", c.LocationTable.Source)
	}
	if c.Scheduling.MaxConcurrency < 1 {
		return fmt.Errorf("SCHEDULING_MAX_CONCURRENCY must be positive, got %d", c.Scheduling.MaxConcurrency)
	}
	if c.Scheduling.RequestTimeout <= 0 {
		return fmt.Errorf("SCHEDULING_TIMEOUT must be positive, got %s", c.Scheduling.RequestTimeout)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Geocoding-Key"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Geocoding: GeocodingConfig{
			Provider:       GeocodingProviderGoogle,
			RequestTimeout: 2 * time.Second,
			SearchRadiusKm: 5,
		},
		Scheduling: SchedulingConfig{
			RequestTimeout: 2 * time.Second,
			MaxConcurrency: 4,
			RateLimit:      1000,
			RateBurst:      100,
		},
		LocationTable: LocationTableConfig{
			Source: LocationSourceCSV,
		},
	}
}
