package services

import (
	"context"
	"time"

	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/pkg/apperrors"
)

// QuotaService decides whether a user may generate a session right now and
// accounts for successful generations.
type QuotaService interface {
	// Authorize applies the monthly rollover when due, then evaluates the
	// plan limit. It returns the fresh user row on success and
	// QUOTA_EXCEEDED when a free user is at the ceiling.
	Authorize(ctx context.Context, userID string, now time.Time) (*models.User, error)

	// Consume counts one successful generation. It is a no-op for unlimited
	// plans; for free users the limit check and the increment are one
	// conditional update, so a concurrent loser gets QUOTA_EXCEEDED here
	// even after passing Authorize.
	Consume(ctx context.Context, user *models.User) error
}

type QuotaServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewQuotaService(userRepo repositories.UserRepository) QuotaService {
	return &QuotaServiceImpl{userRepo: userRepo}
}

func (s *QuotaServiceImpl) Authorize(ctx context.Context, userID string, now time.Time) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUnauthorizedError("Authentication required")
		}
		return nil, apperrors.InternalError(err)
	}

	// Monthly rollover: zero the counter, advance the reset date, and
	// evaluate the limit against the refreshed row.
	if !now.Before(user.ResetDate) {
		nextReset := NextResetDate(now)
		if err := s.userRepo.ResetGenerations(user.ID, nextReset); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "generation quota reset", "user_id", user.ID, "next_reset", nextReset)

		user, err = s.userRepo.FindByID(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if user.IsUnlimited() {
		return user, nil
	}

	if user.GenerationsUsed >= user.GenerationsLimit {
		return nil, apperrors.ErrQuotaExceeded()
	}

	return user, nil
}

func (s *QuotaServiceImpl) Consume(ctx context.Context, user *models.User) error {
	if user.IsUnlimited() {
		return nil
	}

	consumed, err := s.userRepo.ConsumeGeneration(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !consumed {
		// Another request from the same account won the last slot between
		// our check and this increment.
		logger.CtxWarn(ctx, "generation slot lost to concurrent request", "user_id", user.ID)
		return apperrors.ErrQuotaExceeded()
	}
	return nil
}

// NextResetDate returns the first instant of the calendar month after now,
// in now's location.
func NextResetDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
}
