package appointment

import (
	"slices"

	"appointment-finder/internal/domain/location"
)

// Availability is the reduction of a batch of per-location results.
type Availability struct {
	// Earliest holds every Scheduled result equal to the batch minimum, in encounter order.
	Earliest []LocationResult
	// Empty lists locations that answered without a slot.
	Empty []location.LocationID
	// Failed groups failing locations by HTTP status.
	Failed map[int][]location.LocationID
}

// Aggregate partitions results by outcome and keeps the locations tied for
// the earliest scheduled time. It never fails; with no Scheduled result the
// Earliest set is empty.
func Aggregate(results []LocationResult) Availability {
	a := Availability{Failed: make(map[int][]location.LocationID)}

	var (
		minTime int64
		found   bool
	)
	for _, r := range results {
		switch r.Result.Outcome() {
		case OutcomeScheduled:
			t, _ := r.Result.EpochMillis()
			if !found || t < minTime {
				minTime = t
				found = true
			}
		case OutcomeEmpty:
			a.Empty = appendUnique(a.Empty, r.LocationID)
		case OutcomeFailed:
			a.Failed[r.Result.Status()] = appendUnique(a.Failed[r.Result.Status()], r.LocationID)
		}
	}
	if !found {
		return a
	}

	for _, r := range results {
		if t, ok := r.Result.EpochMillis(); ok && t == minTime {
			a.Earliest = append(a.Earliest, r)
		}
	}
	return a
}

// EarliestTime is the shared time of the Earliest set.
func (a Availability) EarliestTime() (int64, bool) {
	if len(a.Earliest) == 0 {
		return 0, false
	}
	t, _ := a.Earliest[0].Result.EpochMillis()
	return t, true
}

func (a Availability) HasDiagnostics() bool {
	return len(a.Empty) > 0 || len(a.Failed) > 0
}

// FailedStatuses returns the failing status codes in ascending order.
func (a Availability) FailedStatuses() []int {
	statuses := make([]int, 0, len(a.Failed))
	for status := range a.Failed {
		statuses = append(statuses, status)
	}
	slices.Sort(statuses)
	return statuses
}

func appendUnique(ids []location.LocationID, id location.LocationID) []location.LocationID {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
