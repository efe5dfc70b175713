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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Me(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfilePicture(ctx context.Context, userID string, req *request.UpdateProfilePictureRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("process password: %w", err)
	}

	// SRN only applies to students
	srn := ""
	if req.Role == string(entity.RoleStudent) {
		srn = req.SRN
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.Role(req.Role),
		SRN:          srn,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid password attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role), user.Name)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token:          token,
		Role:           string(user.Role),
		Name:           user.Name,
		SRN:            user.SRN,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfilePicture(ctx context.Context, userID string, req *request.UpdateProfilePictureRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.repo.User.UpdateProfilePicture(ctx, userUUID, req.ProfilePicture); err != nil {
		s.log.Error("Failed to update profile picture",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return err
	}

	return nil
}
