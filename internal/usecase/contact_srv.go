package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"
	"campus-events/internal/dto/response"
	"campus-events/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, req *request.ContactRequest) error
	List(ctx context.Context) ([]response.ContactResponse, error)
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	contact := &entity.Contact{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:       req.Name,
		SRN:        req.SRN,
		Branch:     req.Branch,
		Department: req.Department,
		Query:      req.Query,
		Status:     entity.ContactStatusPending,
	}

	if err := s.repo.Contact.Create(ctx, contact); err != nil {
		s.log.Error("Failed to submit contact query", zap.Error(err))
		return err
	}

	s.log.Info("Contact query submitted", zap.String("srn", req.SRN))

	return nil
}

func (s *contactService) List(ctx context.Context) ([]response.ContactResponse, error) {
	contacts, err := s.repo.Contact.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list contact queries", zap.Error(err))
		return nil, err
	}

	responses := make([]response.ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = response.ContactToResponse(contact)
	}

	return responses, nil
}
