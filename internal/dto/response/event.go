package response

import (
	"time"

	"campus-events/internal/data/entity"
)

type EventResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Category           string             `json:"category"`
	Date               string             `json:"date"`
	StartTime          string             `json:"start_time"`
	EndTime            string             `json:"end_time"`
	Venue              string             `json:"venue"`
	Auditorium         string             `json:"auditorium"`
	Poster             string             `json:"poster,omitempty"`
	IsPaid             bool               `json:"is_paid"`
	Price              float64            `json:"price"`
	Description        string             `json:"description"`
	RegistrationLink   string             `json:"registration_link,omitempty"`
	ClubID             string             `json:"club_id"`
	ClubName           string             `json:"club_name"`
	ClubProfilePicture string             `json:"club_profile_picture,omitempty"`
	Status             entity.EventStatus `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:                 event.ID.String(),
		Name:               event.Name,
		Category:           event.Category,
		Date:               event.Date.Format(time.DateOnly),
		StartTime:          event.StartTime.String(),
		EndTime:            event.EndTime.String(),
		Venue:              event.Venue,
		Auditorium:         event.Auditorium,
		Poster:             event.Poster,
		IsPaid:             event.IsPaid,
		Price:              event.Price,
		Description:        event.Description,
		RegistrationLink:   event.RegistrationLink,
		ClubID:             event.ClubID.String(),
		ClubName:           event.ClubName,
		ClubProfilePicture: event.ClubProfilePicture,
		Status:             event.Status,
		CreatedAt:          event.CreatedAt,
	}
}

func EventsToResponse(events []*entity.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = EventToResponse(event)
	}
	return responses
}

// BookingConflict is the structured payload returned alongside a 409 so the
// caller can render "busy from X to Y" without re-querying.
type BookingConflict struct {
	ClubName  string `json:"club_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func BookingToConflict(booking *entity.Booking) BookingConflict {
	return BookingConflict{
		ClubName:  booking.ClubName,
		StartTime: booking.StartTime.String(),
		EndTime:   booking.EndTime.String(),
	}
}
