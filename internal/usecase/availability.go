package usecase

import (
	"context"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/pkg/clock"
	"appointment-finder/internal/pkg/config"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=availability.go -destination=../../tests/mock/usecase/availability.go -package=usecasemock

type AvailabilityService interface {
	NextAvailable(ctx context.Context, ids []location.LocationID) appointment.Availability
}

type availabilityServiceImpl struct {
	source         AppointmentSource
	observer       QueryObserver
	clock          clock.Clock
	maxConcurrency int
}

func NewAvailabilityService(source AppointmentSource, observer QueryObserver, clk clock.Clock, cfg config.SchedulingConfig) AvailabilityService {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &availabilityServiceImpl{
		source:         source,
		observer:       observer,
		clock:          clk,
		maxConcurrency: maxConcurrency,
	}
}

// NextAvailable queries every location concurrently and reduces the answers.
// Each worker owns one slot of results, so the fold sees input order no matter
// how the queries finish.
func (s *availabilityServiceImpl) NextAvailable(ctx context.Context, ids []location.LocationID) appointment.Availability {
	results := make([]appointment.LocationResult, len(ids))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			start := s.clock.Now()
			r := s.source.NextAvailable(ctx, id)
			s.observer.ObserveLocationQuery(r.Outcome().String(), clock.Since(s.clock, start))
			results[i] = appointment.LocationResult{LocationID: id, Result: r}
			return nil
		})
	}
	_ = g.Wait()

	return appointment.Aggregate(results)
}
