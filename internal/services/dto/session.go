package dto

import (
	"time"

	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/plan"
)

// SessionRecord is a stored session document plus its persistence metadata.
// The embedded plan fields flatten into the JSON payload.
type SessionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	plan.Session
}

func SessionRecordFromModel(m *models.TrainingSession) (*SessionRecord, error) {
	p, err := m.ToPlan()
	if err != nil {
		return nil, err
	}
	return &SessionRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Session:   *p,
	}, nil
}
