package appointment

import (
	"appointment-finder/internal/domain/location"
)

type Outcome int

const (
	OutcomeScheduled Outcome = iota + 1
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeScheduled:
		return "scheduled"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// QueryResult is the classified answer of the scheduling service for one location.
type QueryResult struct {
	outcome     Outcome
	epochMillis int64
	status      int
}

// Scheduled is a 2xx response offering a slot at epochMillis.
func Scheduled(epochMillis int64) QueryResult {
	return QueryResult{outcome: OutcomeScheduled, epochMillis: epochMillis}
}

// Empty is a 2xx response with no slot on offer.
func Empty() QueryResult {
	return QueryResult{outcome: OutcomeEmpty}
}

// Failed is a response outside 2xx, or a transport failure mapped to a gateway status.
func Failed(status int) QueryResult {
	return QueryResult{outcome: OutcomeFailed, status: status}
}

func (r QueryResult) Outcome() Outcome { return r.outcome }

func (r QueryResult) EpochMillis() (int64, bool) {
	return r.epochMillis, r.outcome == OutcomeScheduled
}

// Status is the HTTP status of a Failed result, zero otherwise.
func (r QueryResult) Status() int { return r.status }

type LocationResult struct {
	LocationID location.LocationID
	Result     QueryResult
}
