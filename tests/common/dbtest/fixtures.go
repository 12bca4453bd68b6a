//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"appointment-finder/internal/domain/location"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertMappings appends rows to location_mappings in slice order.
func InsertMappings(t *testing.T, db DBLike, rows []location.Mapping) {
	t.Helper()

	ctx := context.Background()
	for _, r := range rows {
		_, err := db.Exec(ctx,
			"INSERT INTO location_mappings (zip_code, location_id) VALUES ($1, $2)",
			int(r.PostalCode), r.LocationID.String())
		require.NoError(t, err)
	}
}

func CountMappings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM location_mappings").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties the mapping table and restarts its identity so row order is reproducible.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE location_mappings RESTART IDENTITY")
	return err
}
