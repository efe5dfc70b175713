package entity

import (
	"time"

	"campus-events/internal/schedule"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// Event is the primary record; its auditorium reservation lives in a
// dependent Booking row that moves together with the event's schedule fields.
type Event struct {
	Base
	Name               string             `db:"name"`
	Category           string             `db:"category"`
	Date               time.Time          `db:"date"`
	StartTime          schedule.TimeOfDay `db:"start_time"`
	EndTime            schedule.TimeOfDay `db:"end_time"`
	Venue              string             `db:"venue"`
	Auditorium         string             `db:"auditorium"`
	Poster             string             `db:"poster"`
	IsPaid             bool               `db:"is_paid"`
	Price              float64            `db:"price"`
	Description        string             `db:"description"`
	RegistrationLink   string             `db:"registration_link"`
	ClubID             uuid.UUID          `db:"club_id"`
	ClubName           string             `db:"club_name"`
	ClubProfilePicture string             `db:"club_profile_picture"`
	Status             EventStatus        `db:"status"`
}

// Interval projects the event's current schedule onto the conflict checker's
// input type.
func (e *Event) Interval() schedule.Interval {
	return schedule.Interval{
		Auditorium: e.Auditorium,
		Date:       e.Date,
		Start:      e.StartTime,
		End:        e.EndTime,
	}
}
