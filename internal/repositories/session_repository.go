package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pitchplan_backend/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *models.TrainingSession) error

	// FindOwned returns the session only when it belongs to userID.
	// An ownership mismatch is reported the same way as absence.
	FindOwned(id, userID string) (*models.TrainingSession, error)

	FindByUser(userID string) ([]models.TrainingSession, error)

	// DeleteOwned removes the session when it belongs to userID and reports
	// whether a row was removed.
	DeleteOwned(id, userID string) (bool, error)

	CountByUser(userID string) (int64, error)
	CountByUserSince(userID string, since time.Time) (int64, error)
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(session *models.TrainingSession) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindOwned(id, userID string) (*models.TrainingSession, error) {
	var session models.TrainingSession
	err := r.db.First(&session, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindByUser(userID string) ([]models.TrainingSession, error) {
	var sessions []models.TrainingSession
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepositoryImpl) DeleteOwned(id, userID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.TrainingSession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SessionRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainingSession{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *SessionRepositoryImpl) CountByUserSince(userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainingSession{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
