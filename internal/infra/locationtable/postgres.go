package locationtable

import (
	"context"
	"log/slog"

	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

const selectMappings = `SELECT zip_code::text, location_id FROM location_mappings ORDER BY id`

// Querier is the slice of pgx used by the loader; *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres snapshots the location_mappings table. The returned table does
// not keep a reference to db.
func LoadPostgres(ctx context.Context, db Querier, logger *slog.Logger) (*location.Table, error) {
	rows, err := db.Query(ctx, selectMappings)
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(logger, infra.KindSource, "failed to query location_mappings", err), errs.ErrLocationTableUnavailable)
	}

	type row struct {
		ZipCode    string
		LocationID string
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[row])
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(logger, infra.KindDecode, "failed to scan location_mappings", err), errs.ErrLocationTableUnavailable)
	}

	mappings := make([]location.Mapping, 0, len(raw))
	for _, r := range raw {
		m, err := toMapping(r.ZipCode, r.LocationID)
		if err != nil {
			logger.Warn("skipping invalid location_mappings row", "zip_code", r.ZipCode, "location_id", r.LocationID, "error", err)
			continue
		}
		mappings = append(mappings, m)
	}

	return location.NewTable(mappings), nil
}
