package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// maxErrorBody bounds how much of an upstream error body is kept
const maxErrorBody = 4 << 10

// ChatClient is a minimal client for OpenAI-compatible chat completion APIs
// (OpenAI, Groq, OpenRouter, local gateways).
type ChatClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Ensure ChatClient implements llms.Model
var _ llms.Model = (*ChatClient)(nil)

// NewChatClient creates a chat client using values from the provided config.
// The HTTP timeout is LLM_TIMEOUT; a zero value leaves the client unbounded
// and relies on the caller's context deadline.
func NewChatClient(cfg config.LLMConfig) *ChatClient {
	return &ChatClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// ChatMessage is one entry of the messages array
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateContent sends the messages to the chat completion endpoint and
// returns one choice per upstream choice.
func (c *ChatClient) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    make([]ChatMessage, 0, len(messages)),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.Model != "" {
		reqBody.Model = opts.Model
	}

	for _, msg := range messages {
		role, err := chatRole(msg.Role)
		if err != nil {
			return nil, err
		}
		var content strings.Builder
		for _, part := range msg.Parts {
			textPart, ok := part.(llms.TextContent)
			if !ok {
				return nil, fmt.Errorf("unsupported message part %T", part)
			}
			content.WriteString(textPart.Text)
		}
		reqBody.Messages = append(reqBody.Messages, ChatMessage{Role: role, Content: content.String()})
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, statusError(resp)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("malformed chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model: no choices")
	}

	out := &llms.ContentResponse{Choices: make([]*llms.ContentChoice, 0, len(cr.Choices))}
	for _, choice := range cr.Choices {
		out.Choices = append(out.Choices, &llms.ContentChoice{
			Content:    choice.Message.Content,
			StopReason: choice.FinishReason,
		})
	}
	return out, nil
}

// Call implements the deprecated Call method for backwards compatibility
func (c *ChatClient) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c, prompt, options...)
}

func chatRole(t llms.ChatMessageType) (string, error) {
	switch t {
	case llms.ChatMessageTypeSystem:
		return "system", nil
	case llms.ChatMessageTypeHuman, llms.ChatMessageTypeGeneric:
		return "user", nil
	case llms.ChatMessageTypeAI:
		return "assistant", nil
	default:
		return "", fmt.Errorf("unsupported message role %q", t)
	}
}

// statusError keeps the upstream's own explanation when it sends one
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		return fmt.Errorf("model API returned status %d: %s", resp.StatusCode, er.Error.Message)
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return fmt.Errorf("model API returned status %d: %s", resp.StatusCode, text)
	}
	return fmt.Errorf("model API returned status %d", resp.StatusCode)
}
