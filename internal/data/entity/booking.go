package entity

import (
	"time"

	"campus-events/internal/schedule"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking reserves one auditorium for one time window on one date. It is
// created together with its owning Event and its interval must always mirror
// the event's schedule fields while status is booked.
type Booking struct {
	Base
	Auditorium string             `db:"auditorium"`
	EventID    uuid.UUID          `db:"event_id"`
	ClubID     uuid.UUID          `db:"club_id"`
	ClubName   string             `db:"club_name"`
	Date       time.Time          `db:"date"`
	StartTime  schedule.TimeOfDay `db:"start_time"`
	EndTime    schedule.TimeOfDay `db:"end_time"`
	Status     BookingStatus      `db:"status"`
}

// Interval projects the booking onto the conflict checker's input type.
func (b *Booking) Interval() schedule.Interval {
	return schedule.Interval{
		Auditorium: b.Auditorium,
		Date:       b.Date,
		Start:      b.StartTime,
		End:        b.EndTime,
	}
}
