package services

import (
	"context"
	"time"

	"pitchplan_backend/internal/generator"
	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/plan"
	"pitchplan_backend/pkg/apperrors"
)

// GenerationService runs the generate flow: quota check, document
// generation, usage accounting. The generated document is returned to the
// caller unsaved; persisting it is a separate explicit action.
type GenerationService interface {
	Generate(ctx context.Context, userID string, req plan.Request, forceLive bool) (*plan.Session, error)
}

type GenerationServiceImpl struct {
	quota QuotaService

	// primary is chosen once at wiring time (mock in development, live
	// otherwise). live backs the development-only ?mock=false escape hatch.
	primary generator.Generator
	live    generator.Generator
}

func NewGenerationService(quota QuotaService, primary, live generator.Generator) GenerationService {
	return &GenerationServiceImpl{
		quota:   quota,
		primary: primary,
		live:    live,
	}
}

func (s *GenerationServiceImpl) Generate(ctx context.Context, userID string, req plan.Request, forceLive bool) (*plan.Session, error) {
	user, err := s.quota.Authorize(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	gen := s.primary
	if forceLive && s.live != nil {
		gen = s.live
	}

	start := time.Now()
	session, err := gen.Generate(ctx, req)
	if err != nil {
		// Quota state stays untouched; usage only counts after success.
		logger.CtxWithError(ctx, "session generation failed", err,
			"session_type", req.SessionType, "session_focus", req.SessionFocus)
		return nil, apperrors.ErrGenerationFailed(err)
	}

	logger.CtxInfo(ctx, "session generated",
		"session_type", req.SessionType,
		"session_focus", req.SessionFocus,
		"duration", time.Since(start))

	if err := s.quota.Consume(ctx, user); err != nil {
		return nil, err
	}

	return session, nil
}
