package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func newTestClient(url string) *ChatClient {
	return NewChatClient(config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: url + "/",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestGenerateContent_Success(t *testing.T) {
	// Mock chat completion server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		assert.Equal(t, "test-model", payload.Model)
		assert.Equal(t, 1000, payload.MaxTokens)
		assert.InDelta(t, 0.7, payload.Temperature, 1e-9)
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, ChatMessage{Role: "system", Content: "be brief"}, payload.Messages[0])
		assert.Equal(t, ChatMessage{Role: "user", Content: "hello"}, payload.Messages[1])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  first\n"}, "finish_reason": "stop"},
				{"message": map[string]string{"role": "assistant", "content": "second"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	resp, err := client.GenerateContent(context.Background(), []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, "be brief"),
		llms.TextParts(llms.ChatMessageTypeHuman, "hello"),
	}, llms.WithMaxTokens(1000), llms.WithTemperature(0.7))
	require.NoError(t, err)
	require.Len(t, resp.Choices, 2)
	// content is returned untouched
	assert.Equal(t, "  first\n", resp.Choices[0].Content)
	assert.Equal(t, "stop", resp.Choices[0].StopReason)
}

func TestGenerateContent_ModelOverride(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "other-model", payload.Model)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer ts.Close()

	out, err := newTestClient(ts.URL).Call(context.Background(), "hi", llms.WithModel("other-model"))
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestGenerateContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"upstream error message", http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`, "model API returned status 401: Incorrect API key provided"},
		{"plain text error", http.StatusTooManyRequests, "quota exceeded", "model API returned status 429: quota exceeded"},
		{"empty error body", http.StatusBadGateway, "", "model API returned status 502"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "empty response from model"},
		{"malformed body", http.StatusOK, `{"choices":`, "malformed chat response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newTestClient(ts.URL).GenerateContent(context.Background(), []llms.MessageContent{
				llms.TextParts(llms.ChatMessageTypeHuman, "hello"),
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateContent_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(ts.URL).GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, "hello"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChatRole(t *testing.T) {
	_, err := chatRole(llms.ChatMessageTypeTool)
	assert.Error(t, err)

	role, err := chatRole(llms.ChatMessageTypeAI)
	require.NoError(t, err)
	assert.Equal(t, "assistant", role)
}

func TestNewChatClient_TimeoutFromConfig(t *testing.T) {
	c := NewChatClient(config.LLMConfig{Timeout: 42 * time.Second})
	assert.Equal(t, 42*time.Second, c.client.Timeout)

	c = NewChatClient(config.LLMConfig{})
	assert.Zero(t, c.client.Timeout)
}
