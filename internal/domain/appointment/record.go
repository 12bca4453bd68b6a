package appointment

import (
	"appointment-finder/internal/domain/location"
)

// Record is one winning location in the final answer.
type Record struct {
	LocationID      location.LocationID
	AppointmentTime int64
}

// Records turns the earliest set into records, keeping the first occurrence of each location.
func Records(earliest []LocationResult) []Record {
	seen := make(map[location.LocationID]struct{}, len(earliest))
	records := make([]Record, 0, len(earliest))
	for _, r := range earliest {
		t, ok := r.Result.EpochMillis()
		if !ok {
			continue
		}
		if _, dup := seen[r.LocationID]; dup {
			continue
		}
		seen[r.LocationID] = struct{}{}
		records = append(records, Record{LocationID: r.LocationID, AppointmentTime: t})
	}
	return records
}
