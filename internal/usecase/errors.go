package usecase

import (
	"errors"
	"fmt"

	"campus-events/internal/data/entity"
)

// Service error taxonomy. Handlers translate these to transport status via
// errors.Is / errors.As; services never log-and-swallow.
var (
	// ErrInvalidSchedule covers unparsable times and end <= start.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrUnknownResource means the auditorium is not in the catalog.
	ErrUnknownResource = errors.New("unknown auditorium")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// ErrBusy means the per-(auditorium, date) lock could not be acquired
	// in time; the caller should retry.
	ErrBusy = errors.New("booking slot busy, try again")
)

// ConflictError rejects a create or schedule update that collides with an
// existing booked interval. It carries the colliding booking so the caller
// can render who holds the slot and when without re-querying.
type ConflictError struct {
	Conflicting *entity.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("auditorium is already booked from %s to %s on this date",
		e.Conflicting.StartTime, e.Conflicting.EndTime)
}
