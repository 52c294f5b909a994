package models

import (
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"pitchplan_backend/internal/plan"
)

// TrainingSession is a saved session-plan document. Scalar fields are typed
// columns, the structured blocks live in JSONB and the string lists in
// Postgres text arrays, mirroring the generation contract.
type TrainingSession struct {
	BaseModel
	UserID          string      `gorm:"type:uuid;not null;index" json:"userId"`
	Title           string      `gorm:"not null" json:"title"`
	SessionType     SessionType `gorm:"type:varchar(20);not null" json:"sessionType"`
	SessionFocus    string      `gorm:"not null" json:"sessionFocus"`
	DurationMinutes int         `gorm:"not null" json:"durationMinutes"`
	Participants    int         `gorm:"not null" json:"participants"`
	Level           string      `json:"level"`

	Objectives  pq.StringArray `gorm:"type:text[];not null" json:"objectives"`
	Equipment   pq.StringArray `gorm:"type:text[];not null" json:"equipment"`
	SafetyNotes pq.StringArray `gorm:"type:text[];not null" json:"safetyNotes"`

	Warmup         datatypes.JSON `gorm:"type:jsonb;not null" json:"warmup"`
	Practices      datatypes.JSON `gorm:"type:jsonb;not null" json:"practices"`
	SmallSidedGame datatypes.JSON `gorm:"type:jsonb;not null" json:"smallSidedGame"`
	Cooldown       datatypes.JSON `gorm:"type:jsonb;not null" json:"cooldown"`
	Diagrams       datatypes.JSON `gorm:"type:jsonb;not null" json:"diagrams"`
}

// SessionFromPlan builds a persistable record owned by userID from a
// generated document.
func SessionFromPlan(userID string, p *plan.Session) (*TrainingSession, error) {
	warmup, err := json.Marshal(p.Warmup)
	if err != nil {
		return nil, fmt.Errorf("marshal warmup: %w", err)
	}
	practices, err := json.Marshal(p.Practices)
	if err != nil {
		return nil, fmt.Errorf("marshal practices: %w", err)
	}
	ssg, err := json.Marshal(p.SmallSidedGame)
	if err != nil {
		return nil, fmt.Errorf("marshal small-sided game: %w", err)
	}
	cooldown, err := json.Marshal(p.Cooldown)
	if err != nil {
		return nil, fmt.Errorf("marshal cooldown: %w", err)
	}
	diagrams, err := json.Marshal(p.Diagrams)
	if err != nil {
		return nil, fmt.Errorf("marshal diagrams: %w", err)
	}

	return &TrainingSession{
		UserID:          userID,
		Title:           p.Title,
		SessionType:     SessionType(p.SessionType),
		SessionFocus:    p.SessionFocus,
		DurationMinutes: p.DurationMinutes,
		Participants:    p.Participants,
		Level:           p.Level,
		Objectives:      pq.StringArray(p.Objectives),
		Equipment:       pq.StringArray(p.Equipment),
		SafetyNotes:     pq.StringArray(p.SafetyNotes),
		Warmup:          datatypes.JSON(warmup),
		Practices:       datatypes.JSON(practices),
		SmallSidedGame:  datatypes.JSON(ssg),
		Cooldown:        datatypes.JSON(cooldown),
		Diagrams:        datatypes.JSON(diagrams),
	}, nil
}

// ToPlan reassembles the stored record into the document shape.
func (s *TrainingSession) ToPlan() (*plan.Session, error) {
	p := &plan.Session{
		Title:           s.Title,
		Level:           s.Level,
		SessionType:     string(s.SessionType),
		SessionFocus:    s.SessionFocus,
		DurationMinutes: s.DurationMinutes,
		Participants:    s.Participants,
		Objectives:      []string(s.Objectives),
		Equipment:       []string(s.Equipment),
		SafetyNotes:     []string(s.SafetyNotes),
	}

	if err := json.Unmarshal(s.Warmup, &p.Warmup); err != nil {
		return nil, fmt.Errorf("unmarshal warmup: %w", err)
	}
	if err := json.Unmarshal(s.Practices, &p.Practices); err != nil {
		return nil, fmt.Errorf("unmarshal practices: %w", err)
	}
	if err := json.Unmarshal(s.SmallSidedGame, &p.SmallSidedGame); err != nil {
		return nil, fmt.Errorf("unmarshal small-sided game: %w", err)
	}
	if err := json.Unmarshal(s.Cooldown, &p.Cooldown); err != nil {
		return nil, fmt.Errorf("unmarshal cooldown: %w", err)
	}
	if err := json.Unmarshal(s.Diagrams, &p.Diagrams); err != nil {
		return nil, fmt.Errorf("unmarshal diagrams: %w", err)
	}

	return p, nil
}
