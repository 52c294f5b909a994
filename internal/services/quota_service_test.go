package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchplan_backend/internal/models"
	"pitchplan_backend/pkg/apperrors"
)

func freeUser(used int) *models.User {
	return &models.User{
		BaseModel:        models.BaseModel{ID: "user-free"},
		Username:         "coach",
		Email:            "coach@example.com",
		PlanType:         models.PlanTypeFree,
		GenerationsUsed:  used,
		GenerationsLimit: models.DefaultFreeGenerations,
		ResetDate:        time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
}

func proUser() *models.User {
	return &models.User{
		BaseModel:        models.BaseModel{ID: "user-pro"},
		Username:         "pro-coach",
		Email:            "pro@example.com",
		PlanType:         models.PlanTypePro,
		GenerationsUsed:  120,
		GenerationsLimit: models.UnlimitedGenerations,
		ResetDate:        time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestQuotaAuthorizeUnderLimit(t *testing.T) {
	repo := newFakeUserRepo(freeUser(3))
	quota := NewQuotaService(repo)
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	user, err := quota.Authorize(context.Background(), "user-free", now)
	require.NoError(t, err)
	assert.Equal(t, 3, user.GenerationsUsed)

	require.NoError(t, quota.Consume(context.Background(), user))
	stored, err := repo.FindByID("user-free")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.GenerationsUsed)
}

func TestQuotaAuthorizeAtLimit(t *testing.T) {
	repo := newFakeUserRepo(freeUser(models.DefaultFreeGenerations))
	quota := NewQuotaService(repo)
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	_, err := quota.Authorize(context.Background(), "user-free", now)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeQuotaExceeded, appErr.Code)

	stored, err := repo.FindByID("user-free")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFreeGenerations, stored.GenerationsUsed)
}

func TestQuotaUnlimitedPlan(t *testing.T) {
	repo := newFakeUserRepo(proUser())
	quota := NewQuotaService(repo)
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	user, err := quota.Authorize(context.Background(), "user-pro", now)
	require.NoError(t, err)
	require.NoError(t, quota.Consume(context.Background(), user))

	// Unlimited plans never touch the counter.
	stored, err := repo.FindByID("user-pro")
	require.NoError(t, err)
	assert.Equal(t, 120, stored.GenerationsUsed)
}

func TestQuotaMonthlyRollover(t *testing.T) {
	user := freeUser(models.DefaultFreeGenerations)
	user.ResetDate = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo(user)
	quota := NewQuotaService(repo)

	// Past the reset date, a maxed-out user gets a fresh allowance.
	now := time.Date(2026, time.September, 10, 8, 30, 0, 0, time.UTC)
	fresh, err := quota.Authorize(context.Background(), "user-free", now)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.GenerationsUsed)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), fresh.ResetDate)
}

func TestQuotaRolloverNotDue(t *testing.T) {
	user := freeUser(2)
	repo := newFakeUserRepo(user)
	quota := NewQuotaService(repo)
	now := time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC)

	fresh, err := quota.Authorize(context.Background(), "user-free", now)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.GenerationsUsed)
	assert.Equal(t, user.ResetDate, fresh.ResetDate)
}

func TestQuotaAuthorizeUnknownUser(t *testing.T) {
	quota := NewQuotaService(newFakeUserRepo())
	_, err := quota.Authorize(context.Background(), "ghost", time.Now())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestQuotaConcurrentConsumers(t *testing.T) {
	// One slot left; many racing requests. Exactly one may consume it.
	repo := newFakeUserRepo(freeUser(models.DefaultFreeGenerations - 1))
	quota := NewQuotaService(repo)

	user, err := repo.FindByID("user-free")
	require.NoError(t, err)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = quota.Consume(context.Background(), user)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeQuotaExceeded, appErr.Code)
	}
	assert.Equal(t, 1, winners)

	stored, err := repo.FindByID("user-free")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFreeGenerations, stored.GenerationsUsed)
}

func TestNextResetDate(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			now:  time.Date(2026, time.September, 15, 12, 30, 0, 0, time.UTC),
			want: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// December rolls into January of the next year.
			now:  time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextResetDate(tc.now))
	}
}
