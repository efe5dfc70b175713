package response

import (
	"time"

	"campus-events/internal/data/entity"
)

type AuditoriumResponse struct {
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
}

func AuditoriumToResponse(auditorium *entity.Auditorium) AuditoriumResponse {
	return AuditoriumResponse{
		Name:       auditorium.Name,
		Capacity:   auditorium.Capacity,
		Facilities: auditorium.Facilities,
	}
}

// BookedSlot is one reserved window shown on the availability calendar.
type BookedSlot struct {
	EventName string `json:"event_name"`
	ClubName  string `json:"club_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	TimeRange string `json:"time_range"`
}

// AvailabilityReport is the per-auditorium, per-date projection over booked
// slots.
type AvailabilityReport struct {
	Auditorium  string       `json:"auditorium"`
	Date        string       `json:"date"`
	Capacity    int          `json:"capacity"`
	Facilities  []string     `json:"facilities"`
	IsAvailable bool         `json:"is_available"`
	Bookings    []BookedSlot `json:"bookings"`
}

func NewAvailabilityReport(auditorium *entity.Auditorium, date time.Time, slots []BookedSlot) AvailabilityReport {
	if slots == nil {
		slots = []BookedSlot{}
	}
	return AvailabilityReport{
		Auditorium:  auditorium.Name,
		Date:        date.Format(time.DateOnly),
		Capacity:    auditorium.Capacity,
		Facilities:  auditorium.Facilities,
		IsAvailable: len(slots) == 0,
		Bookings:    slots,
	}
}
