package request

type CreateEventRequest struct {
	Name             string  `json:"name" validate:"required,min=3,max=150"`
	Category         string  `json:"category" validate:"required"`
	Date             string  `json:"date" validate:"required"`
	StartTime        string  `json:"start_time" validate:"required"`
	EndTime          string  `json:"end_time" validate:"required"`
	Venue            string  `json:"venue" validate:"required"`
	Auditorium       string  `json:"auditorium" validate:"required"`
	Poster           string  `json:"poster,omitempty"`
	IsPaid           bool    `json:"is_paid"`
	Price            float64 `json:"price" validate:"min=0"`
	Description      string  `json:"description" validate:"required"`
	RegistrationLink string  `json:"registration_link,omitempty"`
}

// UpdateEventRequest is a partial patch; nil fields keep the event's
// current value. Touching any schedule field (auditorium, date, start, end)
// triggers a fresh conflict check over the merged schedule.
type UpdateEventRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Category         *string  `json:"category,omitempty"`
	Date             *string  `json:"date,omitempty"`
	StartTime        *string  `json:"start_time,omitempty"`
	EndTime          *string  `json:"end_time,omitempty"`
	Venue            *string  `json:"venue,omitempty"`
	Auditorium       *string  `json:"auditorium,omitempty"`
	Poster           *string  `json:"poster,omitempty"`
	IsPaid           *bool    `json:"is_paid,omitempty"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Description      *string  `json:"description,omitempty"`
	RegistrationLink *string  `json:"registration_link,omitempty"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed"`
}

// TouchesSchedule reports whether the patch changes any field the booking
// conflict check depends on.
func (r *UpdateEventRequest) TouchesSchedule() bool {
	return r.Auditorium != nil || r.Date != nil || r.StartTime != nil || r.EndTime != nil
}
