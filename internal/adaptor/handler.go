package adaptor

import (
	"campus-events/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Event      *EventHandler
	Auditorium *AuditoriumHandler
	Contact    *ContactHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Event:      NewEventHandler(service.Event, log),
		Auditorium: NewAuditoriumHandler(service.Auditorium, log),
		Contact:    NewContactHandler(service.Contact, log),
	}
}
