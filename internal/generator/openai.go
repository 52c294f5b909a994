package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/plan"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = `You are an expert football coach. Produce a single-session training plan following the JSON schema below. Use the given inputs (session_type, session_focus, total_minutes, participants, level, random_seed). Follow session structure rules: warm-up 10-20%, main practices 2-4, small-sided game 10-25%, cool down 5-10%. Each practice must have setup, steps, coaching points, aims, difficulty, and an SVG diagram. Use the random_seed to vary drills. Keep language concise, coach-friendly, and progression logical.

JSON Schema:
{
  "title": "string",
  "level": "string",
  "session_type": "goalkeeping|outfield",
  "session_focus": "string",
  "duration_minutes": number,
  "participants": number,
  "objectives": ["string","string","string"],
  "equipment": ["string", "..."],
  "warmup": { "name": "string", "duration_minutes": number, "description": "string" },
  "practices": [
    {
      "name": "string",
      "duration_minutes": number,
      "players_required": number,
      "area_meters": [length, width],
      "setup_description": "string",
      "steps": ["string", "..."],
      "coaching_points": ["string", "..."],
      "aims": ["string", "..."],
      "difficulty_level": number,
      "diagram_svg": "string"
    }
  ],
  "small_sided_game": { "duration_minutes": number, "description": "string" },
  "cooldown": { "duration_minutes": number, "description": "string" },
  "safety_notes": ["string", "..."],
  "diagrams": [{"practice_name": "string", "svg": "string"}]
}

Respond with valid JSON only.`

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// OpenAIGenerator calls the chat-completions API. The HTTP client carries a
// timeout because the upstream call has unbounded latency otherwise.
type OpenAIGenerator struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

func NewOpenAIGenerator(apiKey, model string, timeout time.Duration) *OpenAIGenerator {
	return &OpenAIGenerator{
		apiKey: apiKey,
		model:  model,
		url:    openaiURL,
		client: &http.Client{Timeout: timeout},
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req plan.Request) (*plan.Session, error) {
	// The seed only nudges the model towards variety between identical
	// requests; it has no correctness role.
	seed := fmt.Sprintf("%d-%06d", time.Now().UnixMilli(), rand.Intn(1000000))

	userPrompt := fmt.Sprintf(`Generate a football training session.
session_type: %s
session_focus: %s
total_minutes: %d
participants: %d
level: %s
random_seed: %s
Include measurable aims, pitch area in meters, required equipment, and SVG diagrams.`,
		req.SessionType, req.SessionFocus, req.DurationMinutes, req.Participants,
		req.LevelOrDefault(), seed)

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    0.8,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.CtxError(ctx, "openai call failed", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrMalformedResponse)
	}

	var session plan.Session
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &session, nil
}
