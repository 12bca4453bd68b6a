package response

import (
	"appointment-finder/internal/domain/appointment"

	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	LocationID      string `json:"location_id"`
	AppointmentTime int64  `json:"appointment_time"`
}

type AppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromRecords renders the earliest set. An empty set encodes as "appointments": [].
func FromRecords(records []appointment.Record) (*AppointmentsResponse, error) {
	items := make([]AppointmentResponse, 0, len(records))
	if len(records) > 0 {
		if err := copier.Copy(&items, &records); err != nil {
			return nil, err
		}
	}
	return &AppointmentsResponse{Appointments: items}, nil
}
