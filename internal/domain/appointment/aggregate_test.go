//go:build unit

package appointment_test

import (
	"testing"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/location"
	"appointment-finder/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func earliestIDs(a appointment.Availability) []location.LocationID {
	ids := make([]location.LocationID, 0, len(a.Earliest))
	for _, r := range a.Earliest {
		ids = append(ids, r.LocationID)
	}
	return ids
}

func TestAggregate(t *testing.T) {
	t.Run("earliest set is exactly the minimum", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Scheduled("A", 300).
			Scheduled("B", 100).
			Empty("C").
			Scheduled("D", 100).
			Scheduled("E", 101).
			BuildAvailability()

		assert.Equal(t, []location.LocationID{"B", "D"}, earliestIDs(a))
		tm, ok := a.EarliestTime()
		assert.True(t, ok)
		assert.Equal(t, int64(100), tm)
	})

	t.Run("ties keep encounter order and exclude later times", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Scheduled("A", 100).
			Scheduled("B", 100).
			Scheduled("C", 150).
			BuildAvailability()

		assert.Equal(t, []location.LocationID{"A", "B"}, earliestIDs(a))
	})

	t.Run("no scheduled result yields an empty set", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Empty("A").
			Failed("B", 503).
			BuildAvailability()

		assert.Empty(t, a.Earliest)
		_, ok := a.EarliestTime()
		assert.False(t, ok)
		assert.True(t, a.HasDiagnostics())
	})

	t.Run("failure beside a scheduled result is diagnostic only", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Failed("A", 404).
			Scheduled("B", 42).
			BuildAvailability()

		assert.Equal(t, []location.LocationID{"B"}, earliestIDs(a))
		assert.Equal(t, map[int][]location.LocationID{404: {"A"}}, a.Failed)
	})

	t.Run("diagnostics group by status without duplicates", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Failed("A", 500).
			Failed("B", 404).
			Failed("A", 500).
			Failed("C", 500).
			Empty("D").
			Empty("D").
			BuildAvailability()

		want := map[int][]location.LocationID{404: {"B"}, 500: {"A", "C"}}
		if diff := cmp.Diff(want, a.Failed); diff != "" {
			t.Errorf("failed mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []int{404, 500}, a.FailedStatuses())
		assert.Equal(t, []location.LocationID{"D"}, a.Empty)
	})

	t.Run("empty input", func(t *testing.T) {
		a := appointment.Aggregate(nil)
		assert.Empty(t, a.Earliest)
		assert.False(t, a.HasDiagnostics())
		assert.Empty(t, a.FailedStatuses())
	})

	t.Run("any input order gives the same winners as a set", func(t *testing.T) {
		forward := builder.NewResultsBuilder().Scheduled("A", 7).Failed("B", 500).Scheduled("C", 7).Scheduled("D", 9)
		backward := builder.NewResultsBuilder().Scheduled("D", 9).Scheduled("C", 7).Failed("B", 500).Scheduled("A", 7)

		assert.ElementsMatch(t, earliestIDs(forward.BuildAvailability()), earliestIDs(backward.BuildAvailability()))
	})
}

func TestRecords(t *testing.T) {
	t.Run("duplicate location is reported once", func(t *testing.T) {
		a := builder.NewResultsBuilder().
			Scheduled("A", 1000).
			Scheduled("B", 1000).
			Scheduled("A", 1000).
			BuildAvailability()

		want := []appointment.Record{
			{LocationID: "A", AppointmentTime: 1000},
			{LocationID: "B", AppointmentTime: 1000},
		}
		if diff := cmp.Diff(want, appointment.Records(a.Earliest)); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty earliest set renders as empty, non-nil", func(t *testing.T) {
		got := appointment.Records(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestQueryResult(t *testing.T) {
	s := appointment.Scheduled(5)
	tm, ok := s.EpochMillis()
	assert.True(t, ok)
	assert.Equal(t, int64(5), tm)
	assert.Equal(t, "scheduled", s.Outcome().String())

	f := appointment.Failed(502)
	_, ok = f.EpochMillis()
	assert.False(t, ok)
	assert.Equal(t, 502, f.Status())
	assert.Equal(t, "failed", f.Outcome().String())

	assert.Equal(t, "empty", appointment.Empty().Outcome().String())
	assert.Equal(t, 0, appointment.Empty().Status())
}
