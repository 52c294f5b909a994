package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *Session {
	return &Session{
		Title:           "Finishing Under Pressure",
		Level:           "General",
		SessionType:     "outfield",
		SessionFocus:    "shooting",
		DurationMinutes: 60,
		Participants:    14,
		Objectives:      []string{"Improve shot technique"},
		Equipment:       []string{"Balls", "Cones", "Goals"},
		Warmup: Warmup{
			Name:            "Dynamic Movement",
			DurationMinutes: 8,
			Description:     "Light jog, dynamic stretches, short sprints.",
		},
		Practices: []Practice{
			{
				Name:             "1v1 to Goal",
				DurationMinutes:  18,
				PlayersRequired:  8,
				AreaMeters:       []float64{30, 20},
				SetupDescription: "Two lines facing a full-size goal with a keeper.",
				Steps:            []string{"Attacker drives at defender", "Finish inside 10 seconds"},
				CoachingPoints:   []string{"Strike across the keeper"},
				Aims:             []string{"Composure in front of goal"},
				DifficultyLevel:  3,
				DiagramSVG:       "<svg viewBox=\"0 0 100 100\"></svg>",
			},
		},
		SmallSidedGame: GameBlock{DurationMinutes: 22, Description: "5v5 with counting goals only from inside the box."},
		Cooldown:       GameBlock{DurationMinutes: 6, Description: "Static stretching and review."},
		SafetyNotes:    []string{"Keepers wear gloves."},
	}
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	require.NoError(t, validSession().Validate())
}

func TestValidateRejectsMissingBlocks(t *testing.T) {
	cases := map[string]func(*Session){
		"missing title":       func(s *Session) { s.Title = "" },
		"zero duration":       func(s *Session) { s.DurationMinutes = 0 },
		"zero participants":   func(s *Session) { s.Participants = 0 },
		"missing warmup":      func(s *Session) { s.Warmup.DurationMinutes = 0 },
		"missing ssg":         func(s *Session) { s.SmallSidedGame.DurationMinutes = 0 },
		"missing cooldown":    func(s *Session) { s.Cooldown.DurationMinutes = 0 },
		"no practices":        func(s *Session) { s.Practices = nil },
		"too many practices":  func(s *Session) { s.Practices = make([]Practice, 5) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := validSession()
			mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestValidateRejectsBrokenPractice(t *testing.T) {
	cases := map[string]func(*Practice){
		"missing name":            func(p *Practice) { p.Name = "" },
		"missing setup":           func(p *Practice) { p.SetupDescription = "" },
		"no steps":                func(p *Practice) { p.Steps = nil },
		"no coaching points":      func(p *Practice) { p.CoachingPoints = nil },
		"no aims":                 func(p *Practice) { p.Aims = nil },
		"difficulty too low":      func(p *Practice) { p.DifficultyLevel = 0 },
		"difficulty too high":     func(p *Practice) { p.DifficultyLevel = 6 },
		"missing diagram":         func(p *Practice) { p.DiagramSVG = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := validSession()
			mutate(&s.Practices[0])
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLevelOrDefault(t *testing.T) {
	assert.Equal(t, "General", Request{}.LevelOrDefault())
	assert.Equal(t, "U12", Request{Level: "U12"}.LevelOrDefault())
}
