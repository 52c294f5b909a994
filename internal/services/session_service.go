package services

import (
	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/plan"
	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/internal/services/dto"
	"pitchplan_backend/pkg/apperrors"
)

// SessionService owns saved session documents: create, list, fetch, delete,
// always scoped to the owning user.
type SessionService interface {
	Save(userID string, doc *plan.Session) (*dto.SessionRecord, error)
	List(userID string) ([]dto.SessionRecord, error)
	Get(userID, sessionID string) (*dto.SessionRecord, error)
	Delete(userID, sessionID string) error
}

type SessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo}
}

func (s *SessionServiceImpl) Save(userID string, doc *plan.Session) (*dto.SessionRecord, error) {
	record, err := models.SessionFromPlan(userID, doc)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid session document: " + err.Error())
	}

	if err := s.sessionRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	stored, err := dto.SessionRecordFromModel(record)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stored, nil
}

func (s *SessionServiceImpl) List(userID string) ([]dto.SessionRecord, error) {
	sessions, err := s.sessionRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	records := make([]dto.SessionRecord, 0, len(sessions))
	for i := range sessions {
		record, err := dto.SessionRecordFromModel(&sessions[i])
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		records = append(records, *record)
	}
	return records, nil
}

func (s *SessionServiceImpl) Get(userID, sessionID string) (*dto.SessionRecord, error) {
	session, err := s.sessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		if err == repositories.ErrSessionNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	record, err := dto.SessionRecordFromModel(session)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *SessionServiceImpl) Delete(userID, sessionID string) error {
	deleted, err := s.sessionRepo.DeleteOwned(sessionID, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !deleted {
		return apperrors.ErrNotFound(repositories.ErrSessionNotFound)
	}
	return nil
}
