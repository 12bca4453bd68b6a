//go:build unit

package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/pkg/clock"
	"appointment-finder/internal/pkg/config"
	"appointment-finder/internal/usecase"
	"appointment-finder/tests/common/builder"
	usecasemock "appointment-finder/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// stubSource answers from a fixed table, optionally sleeping so completion order differs from input order.
type stubSource struct {
	answers  map[location.LocationID]appointment.QueryResult
	delays   map[location.LocationID]time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *stubSource) NextAvailable(_ context.Context, id location.LocationID) appointment.QueryResult {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(s.delays[id])
	return s.answers[id]
}

func newService(t *testing.T, source usecase.AppointmentSource, maxConcurrency int) usecase.AvailabilityService {
	t.Helper()
	ctrl := gomock.NewController(t)
	observer := usecasemock.NewMockQueryObserver(ctrl)
	observer.EXPECT().ObserveLocationQuery(gomock.Any(), gomock.Any()).AnyTimes()
	return usecase.NewAvailabilityService(source, observer, clock.NewRealClock(), config.SchedulingConfig{MaxConcurrency: maxConcurrency})
}

var availabilityOpts = cmp.Options{
	cmp.AllowUnexported(appointment.QueryResult{}),
	cmpopts.EquateEmpty(),
}

func TestAvailabilityService_NextAvailable(t *testing.T) {
	t.Run("earliest set is independent of completion order", func(t *testing.T) {
		source := &stubSource{
			answers: map[location.LocationID]appointment.QueryResult{
				"A": appointment.Scheduled(2000),
				"B": appointment.Scheduled(1000),
				"C": appointment.Scheduled(1000),
				"D": appointment.Failed(500),
			},
			delays: map[location.LocationID]time.Duration{
				"A": 0,
				"B": 30 * time.Millisecond,
				"C": 0,
				"D": 10 * time.Millisecond,
			},
		}
		ids := []location.LocationID{"A", "B", "C", "D"}

		got := newService(t, source, 4).NextAvailable(context.Background(), ids)

		want := builder.NewResultsBuilder().
			Scheduled("A", 2000).
			Scheduled("B", 1000).
			Scheduled("C", 1000).
			Failed("D", 500).
			BuildAvailability()
		if diff := cmp.Diff(want, got, availabilityOpts); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []location.LocationID{"B", "C"}, []location.LocationID{got.Earliest[0].LocationID, got.Earliest[1].LocationID})
	})

	t.Run("concurrency never exceeds the limit", func(t *testing.T) {
		answers := map[location.LocationID]appointment.QueryResult{}
		delays := map[location.LocationID]time.Duration{}
		var ids []location.LocationID
		for _, id := range []location.LocationID{"a", "b", "c", "d", "e", "f", "g", "h"} {
			answers[id] = appointment.Empty()
			delays[id] = 5 * time.Millisecond
			ids = append(ids, id)
		}
		source := &stubSource{answers: answers, delays: delays}

		got := newService(t, source, 2).NextAvailable(context.Background(), ids)

		assert.LessOrEqual(t, source.peak.Load(), int32(2))
		assert.Empty(t, got.Earliest)
		assert.Equal(t, ids, got.Empty)
	})

	t.Run("no locations queries nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := usecasemock.NewMockAppointmentSource(ctrl)

		got := newService(t, source, 4).NextAvailable(context.Background(), nil)

		assert.Empty(t, got.Earliest)
		assert.False(t, got.HasDiagnostics())
	})

	t.Run("every query is observed with its outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := usecasemock.NewMockAppointmentSource(ctrl)
		source.EXPECT().NextAvailable(gomock.Any(), location.LocationID("A")).Return(appointment.Scheduled(10))
		source.EXPECT().NextAvailable(gomock.Any(), location.LocationID("B")).Return(appointment.Failed(504))

		observer := usecasemock.NewMockQueryObserver(ctrl)
		observer.EXPECT().ObserveLocationQuery("scheduled", gomock.Any()).Times(1)
		observer.EXPECT().ObserveLocationQuery("failed", gomock.Any()).Times(1)

		svc := usecase.NewAvailabilityService(source, observer, clock.NewRealClock(), config.SchedulingConfig{MaxConcurrency: 0})
		got := svc.NextAvailable(context.Background(), []location.LocationID{"A", "B"})

		assert.Len(t, got.Earliest, 1)
		assert.Equal(t, []location.LocationID{"B"}, got.Failed[504])
	})

	t.Run("query latency is measured on the injected clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clk := clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

		source := usecasemock.NewMockAppointmentSource(ctrl)
		source.EXPECT().NextAvailable(gomock.Any(), location.LocationID("A")).
			DoAndReturn(func(context.Context, location.LocationID) appointment.QueryResult {
				clk.Add(250 * time.Millisecond)
				return appointment.Empty()
			})

		observer := usecasemock.NewMockQueryObserver(ctrl)
		observer.EXPECT().ObserveLocationQuery("empty", 250*time.Millisecond).Times(1)

		svc := usecase.NewAvailabilityService(source, observer, clk, config.SchedulingConfig{MaxConcurrency: 1})
		got := svc.NextAvailable(context.Background(), []location.LocationID{"A"})

		assert.Equal(t, []location.LocationID{"A"}, got.Empty)
	})
}
