package services

import (
	"time"

	"pitchplan_backend/internal/auth"
	"pitchplan_backend/internal/email"
	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/internal/services/dto"
	"pitchplan_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Register creates a new account with free-tier defaults: 5 generations per
// month, counter at zero, reset at the start of next month.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, "Username already taken")
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, "Email already registered")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hashedPassword,
		PlanType:         models.PlanTypeFree,
		GenerationsUsed:  0,
		GenerationsLimit: models.DefaultFreeGenerations,
		ResetDate:        NextResetDate(time.Now()),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best effort; a failed welcome mail must not fail registration.
	go func() {
		subject, body := email.WelcomeEmail(user.Username)
		if err := s.emailProvider.Send(user.Email, subject, body); err != nil {
			logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
		}
	}()

	return &dto.AuthResponse{
		User:  dto.UserInfoFromModel(user),
		Token: token,
	}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials()
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:  dto.UserInfoFromModel(user),
		Token: token,
	}, nil
}
