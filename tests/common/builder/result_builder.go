//go:build unit || e2e

package builder

import (
	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/domain/location"
)

// ResultsBuilder assembles a batch of per-location query results in input order.
type ResultsBuilder struct {
	results []appointment.LocationResult
}

func NewResultsBuilder() *ResultsBuilder {
	return &ResultsBuilder{}
}

func (b *ResultsBuilder) Scheduled(id string, epochMillis int64) *ResultsBuilder {
	return b.add(id, appointment.Scheduled(epochMillis))
}

func (b *ResultsBuilder) Empty(id string) *ResultsBuilder {
	return b.add(id, appointment.Empty())
}

func (b *ResultsBuilder) Failed(id string, status int) *ResultsBuilder {
	return b.add(id, appointment.Failed(status))
}

func (b *ResultsBuilder) add(id string, r appointment.QueryResult) *ResultsBuilder {
	b.results = append(b.results, appointment.LocationResult{LocationID: location.LocationID(id), Result: r})
	return b
}

func (b *ResultsBuilder) Build() []appointment.LocationResult {
	return append([]appointment.LocationResult{}, b.results...)
}

func (b *ResultsBuilder) BuildAvailability() appointment.Availability {
	return appointment.Aggregate(b.results)
}

// IDs lists the location ids of the batch in input order.
func (b *ResultsBuilder) IDs() []location.LocationID {
	ids := make([]location.LocationID, len(b.results))
	for i, r := range b.results {
		ids[i] = r.LocationID
	}
	return ids
}

// SanFrancisco is a valid coordinate inside 94107.
func SanFrancisco() geo.Coordinate {
	c, err := geo.NewCoordinate(37.7688, -122.3942)
	if err != nil {
		panic(err)
	}
	return c
}
