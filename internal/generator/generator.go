// Package generator produces training-session documents, either through the
// OpenAI chat-completions API or through a deterministic fixture table used
// in development to avoid burning API credits.
package generator

import (
	"context"
	"errors"

	"pitchplan_backend/internal/plan"
)

// Upstream failure kinds. The handler maps all of them to a generic
// generation-failure response; the distinction exists for logs and tests.
var (
	// ErrUpstream covers transport failures and non-2xx responses.
	ErrUpstream = errors.New("model call failed")

	// ErrMalformedResponse covers replies that are not valid JSON or do not
	// satisfy the document contract.
	ErrMalformedResponse = errors.New("model returned malformed content")
)

// Generator turns a validated request into a session document. The
// implementation is chosen once at wiring time.
type Generator interface {
	Generate(ctx context.Context, req plan.Request) (*plan.Session, error)
}
