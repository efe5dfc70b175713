package usecase

import (
	"campus-events/internal/data/repository"
	"campus-events/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Event      EventService
	Auditorium AuditoriumService
	Contact    ContactService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Event:      NewEventService(repo, log),
		Auditorium: NewAuditoriumService(repo, log),
		Contact:    NewContactService(repo, log),
	}
}
