//go:build unit

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveLocationQuery("scheduled", 20*time.Millisecond)
	r.ObserveLocationQuery("scheduled", 30*time.Millisecond)
	r.ObserveLocationQuery("failed", time.Second)
	r.ObserveSearch("available")

	assert.InDelta(t, 2, testutil.ToFloat64(r.queries.WithLabelValues("scheduled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.queries.WithLabelValues("failed")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(r.queries.WithLabelValues("empty")), 0)

	expected := `
# HELP appointment_finder_searches_total Earliest-appointment searches by result (available, unavailable, error).
# TYPE appointment_finder_searches_total counter
appointment_finder_searches_total{result="available"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "appointment_finder_searches_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestNewRecorderRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
