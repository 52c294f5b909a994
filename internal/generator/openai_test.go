package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchplan_backend/internal/plan"
)

func testGenerator(url string) *OpenAIGenerator {
	gen := NewOpenAIGenerator("test-key", "gpt-4o", 5*time.Second)
	gen.url = url
	return gen
}

func completionWith(t *testing.T, content string) []byte {
	t.Helper()
	payload, err := json.Marshal(chatResponse{
		Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: content}}},
	})
	require.NoError(t, err)
	return payload
}

func TestOpenAIGeneratorParsesCompletion(t *testing.T) {
	mock, err := NewMockGenerator().Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    12,
	})
	require.NoError(t, err)
	doc, err := json.Marshal(mock)
	require.NoError(t, err)

	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write(completionWith(t, string(doc)))
	}))
	defer server.Close()

	session, err := testGenerator(server.URL).Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, mock.Title, session.Title)

	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "session_focus: passing")
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	assert.InDelta(t, 0.8, gotReq.Temperature, 0.001)
}

func TestOpenAIGeneratorUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testGenerator(server.URL).Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    12,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestOpenAIGeneratorMalformedCompletion(t *testing.T) {
	cases := map[string]string{
		"not json":         "here is your session plan: ...",
		"wrong shape":      `{"foo": "bar"}`,
		"invalid document": `{"title": "x", "duration_minutes": -5}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(completionWith(t, content))
			}))
			defer server.Close()

			_, err := testGenerator(server.URL).Generate(context.Background(), plan.Request{
				SessionType:     "outfield",
				SessionFocus:    "passing",
				DurationMinutes: 60,
				Participants:    12,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestOpenAIGeneratorEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	_, err := testGenerator(server.URL).Generate(context.Background(), plan.Request{
		SessionType:     "outfield",
		SessionFocus:    "passing",
		DurationMinutes: 60,
		Participants:    12,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
