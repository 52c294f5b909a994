package plan

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a document that does not satisfy the contract.
var ErrMalformed = errors.New("malformed session document")

// Validate checks the structural shape of a generated document: title and
// blocks present, 1-4 practices each carrying setup, steps, coaching points,
// aims, a difficulty between 1 and 5 and a diagram. The timing-percentage
// rules stay enforced through the model instruction only; a document that
// parses and carries all blocks is accepted regardless of its split.
func (s *Session) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: missing title", ErrMalformed)
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("%w: non-positive duration", ErrMalformed)
	}
	if s.Participants <= 0 {
		return fmt.Errorf("%w: non-positive participants", ErrMalformed)
	}
	if s.Warmup.DurationMinutes <= 0 {
		return fmt.Errorf("%w: missing warmup", ErrMalformed)
	}
	if s.SmallSidedGame.DurationMinutes <= 0 {
		return fmt.Errorf("%w: missing small-sided game", ErrMalformed)
	}
	if s.Cooldown.DurationMinutes <= 0 {
		return fmt.Errorf("%w: missing cooldown", ErrMalformed)
	}

	if len(s.Practices) < 1 || len(s.Practices) > 4 {
		return fmt.Errorf("%w: expected 1-4 practices, got %d", ErrMalformed, len(s.Practices))
	}

	for i, p := range s.Practices {
		if err := p.validate(); err != nil {
			return fmt.Errorf("practice %d (%q): %w", i+1, p.Name, err)
		}
	}

	return nil
}

func (p *Practice) validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrMalformed)
	case p.DurationMinutes <= 0:
		return fmt.Errorf("%w: non-positive duration", ErrMalformed)
	case p.SetupDescription == "":
		return fmt.Errorf("%w: missing setup description", ErrMalformed)
	case len(p.Steps) == 0:
		return fmt.Errorf("%w: missing steps", ErrMalformed)
	case len(p.CoachingPoints) == 0:
		return fmt.Errorf("%w: missing coaching points", ErrMalformed)
	case len(p.Aims) == 0:
		return fmt.Errorf("%w: missing aims", ErrMalformed)
	case p.DifficultyLevel < 1 || p.DifficultyLevel > 5:
		return fmt.Errorf("%w: difficulty level out of range", ErrMalformed)
	case p.DiagramSVG == "":
		return fmt.Errorf("%w: missing diagram", ErrMalformed)
	}
	return nil
}
