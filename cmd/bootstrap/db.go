package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/infra/db"
	"appointment-finder/internal/infra/locationtable"
	"appointment-finder/internal/pkg/config"
	"appointment-finder/internal/usecase"

	"go.uber.org/fx"
)

const tableLoadTimeout = 30 * time.Second

var LocationTableModule = fx.Module("location_table",
	fx.Provide(
		NewLocationTable,
		func(t *location.Table) usecase.LocationDirectory { return t },
	),
)

// NewLocationTable loads the postal code table once at startup. The Postgres
// pool only lives for the duration of the snapshot.
func NewLocationTable(cfg config.Config, logger *slog.Logger) (*location.Table, error) {
	var (
		table *location.Table
		err   error
	)
	switch cfg.LocationTable.Source {
	case config.LocationSourcePostgres:
		table, err = loadFromPostgres(cfg.DB, logger)
	default:
		table, err = locationtable.LoadCSV(cfg.LocationTable.CSVPath, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("location table loaded",
		"source", cfg.LocationTable.Source,
		"rows", table.Rows(),
		"postal_codes", table.PostalCodes(),
	)
	return table, nil
}

func loadFromPostgres(cfg config.DBConfig, logger *slog.Logger) (*location.Table, error) {
	ctx, cancel := context.WithTimeout(context.Background(), tableLoadTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return locationtable.LoadPostgres(ctx, pool, logger)
}
