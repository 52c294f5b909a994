package services

import (
	"time"

	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/internal/services/dto"
	"pitchplan_backend/pkg/apperrors"
)

type UserService interface {
	GetStats(userID string, now time.Time) (*dto.StatsResponse, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

func NewUserService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *UserServiceImpl) GetStats(userID string, now time.Time) (*dto.StatsResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUnauthorizedError("Authentication required")
		}
		return nil, apperrors.InternalError(err)
	}

	total, err := s.sessionRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Sessions saved since the start of the current calendar month.
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := s.sessionRepo.CountByUserSince(userID, startOfMonth)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		TotalSessions:        total,
		MonthlyGenerations:   monthly,
		RemainingGenerations: user.RemainingGenerations(),
		PlanType:             string(user.PlanType),
		ResetDate:            user.ResetDate,
	}, nil
}
