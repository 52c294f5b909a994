package generator

import (
	"context"
	"math/rand"

	"pitchplan_backend/internal/plan"
)

// MockGenerator serves fixture documents keyed by (session type, focus).
// Unknown pairs fall back to the default fixture, so every request yields a
// schema-conformant document. The fixture's duration, participants, level,
// type and focus are overwritten with the actual request values.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (g *MockGenerator) Generate(_ context.Context, req plan.Request) (*plan.Session, error) {
	fixture := defaultFixture
	if byFocus, ok := mockSessions[req.SessionType]; ok {
		if f, ok := byFocus[req.SessionFocus]; ok {
			fixture = f
		}
	}

	// Copy before overwriting; fixtures are shared package state.
	session := *fixture
	session.DurationMinutes = req.DurationMinutes
	session.Participants = req.Participants
	session.Level = req.LevelOrDefault()
	session.SessionType = req.SessionType
	session.SessionFocus = req.SessionFocus

	return &session, nil
}

// LoadingPhrase returns a random phrase for the client's progress overlay.
func LoadingPhrase() string {
	return loadingPhrases[rand.Intn(len(loadingPhrases))]
}

var loadingPhrases = []string{
	"Analyzing tactics from legendary coaches...",
	"Getting my coaching hat on...",
	"Studying professional training methods...",
	"Ingesting real-life sessions...",
	"Consulting with football experts...",
	"Reviewing championship-winning drills...",
	"Crafting the perfect session...",
	"Drawing inspiration from the pitch...",
	"Tailoring drills to your players...",
	"Building your training masterpiece...",
}
