package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchplan_backend/internal/plan"
)

func TestMockGeneratorOverwritesRequestFields(t *testing.T) {
	gen := NewMockGenerator()

	session, err := gen.Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 45,
		Participants:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "outfield", session.SessionType)
	assert.Equal(t, "passing", session.SessionFocus)
	assert.Equal(t, 45, session.DurationMinutes)
	assert.Equal(t, 10, session.Participants)
	assert.Equal(t, "General", session.Level)
}

func TestMockGeneratorHonorsRequestedLevel(t *testing.T) {
	gen := NewMockGenerator()

	session, err := gen.Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    16,
		Level:           "U14 Advanced",
	})
	require.NoError(t, err)
	assert.Equal(t, "U14 Advanced", session.Level)
}

func TestMockGeneratorKnownFixtures(t *testing.T) {
	gen := NewMockGenerator()

	outfield, err := gen.Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    12,
	})
	require.NoError(t, err)
	require.NoError(t, outfield.Validate())
	assert.GreaterOrEqual(t, len(outfield.Practices), 1)
	assert.LessOrEqual(t, len(outfield.Practices), 4)
	for _, p := range outfield.Practices {
		assert.NotEmpty(t, p.DiagramSVG)
	}

	keeper, err := gen.Generate(context.Background(), plan.Request{
		SessionType:     "goalkeeping",
		SessionFocus:    "handling",
		DurationMinutes: 45,
		Participants:    4,
	})
	require.NoError(t, err)
	require.NoError(t, keeper.Validate())
	assert.NotEqual(t, outfield.Title, keeper.Title)
}

func TestMockGeneratorUnknownPairFallsBack(t *testing.T) {
	gen := NewMockGenerator()

	session, err := gen.Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "set pieces under floodlights",
		DurationMinutes: 30,
		Participants:    8,
	})
	require.NoError(t, err)
	require.NoError(t, session.Validate())

	// The fallback still reports the requested type and focus.
	assert.Equal(t, "outfield", session.SessionType)
	assert.Equal(t, "set pieces under floodlights", session.SessionFocus)
	assert.Equal(t, 30, session.DurationMinutes)
}

func TestMockGeneratorCopiesFixture(t *testing.T) {
	gen := NewMockGenerator()
	req := plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 90,
		Participants:    22,
	}

	first, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	first.Title = "mutated"

	second, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Title)
}

func TestLoadingPhrase(t *testing.T) {
	phrase := LoadingPhrase()
	assert.Contains(t, loadingPhrases, phrase)
}
