package handler

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/usecase/share"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/mailer"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

type fakeModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, messages[len(messages)-1].Parts[0].(llms.TextContent).Text)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Message
}

func (s *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			AllowedOrigins: []string{"*"},
			BodyLimit:      "10M",
		},
		LLM: config.LLMConfig{
			Model:       "gpt-3.5-turbo",
			MaxTokens:   1000,
			Temperature: 0.7,
			Timeout:     5 * time.Second,
		},
		Mail: config.MailConfig{Timeout: 5 * time.Second},
	}
}

func newTestServer(cfg *config.Config, model llms.Model, sender mailer.Sender) *echo.Echo {
	logger := zap.NewNop()
	v := pkgvalidator.New()
	h := NewSummaryHandler(
		summary.NewService(model, cfg.LLM, logger),
		share.NewService(sender, share.Options{Timeout: cfg.Mail.Timeout}, logger),
		share.NewAdmission(v),
		logger,
	)
	return NewServer(cfg, h, logger)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec, out
}

func TestSummarize_EndToEndDefault(t *testing.T) {
	model := &fakeModel{reply: "Team agreed to ship v2 Friday."}
	e := newTestServer(testConfig(), model, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize", `{"transcript":"Alice: Let's ship v2 Friday."}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{
		"success":        true,
		"summary":        "Team agreed to ship v2 Friday.",
		"originalPrompt": "Default summary",
	}, body)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Alice: Let's ship v2 Friday.")
}

func TestSummarize_CustomPromptEchoed(t *testing.T) {
	model := &fakeModel{reply: "- ship v2"}
	e := newTestServer(testConfig(), model, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize",
		`{"transcript":"Alice: Let's ship v2 Friday.","customPrompt":"Action items only"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Action items only", body["originalPrompt"])
	assert.Contains(t, model.prompts[0], `"Action items only"`)
}

func TestSummarize_MissingTranscript(t *testing.T) {
	for _, payload := range []string{`{}`, `{"transcript":""}`, `{"transcript":"   "}`} {
		model := &fakeModel{reply: "never"}
		e := newTestServer(testConfig(), model, &fakeSender{})

		rec, body := doJSON(t, e, http.MethodPost, "/api/summarize", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "transcript required", body["error"])
		assert.Empty(t, model.prompts)
	}
}

func TestSummarize_UpstreamFailure(t *testing.T) {
	model := &fakeModel{err: stdErrors.New("model API returned status 401: Incorrect API key provided")}
	e := newTestServer(testConfig(), model, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize", `{"transcript":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate summary", body["error"])
	assert.Equal(t, "model API returned status 401: Incorrect API key provided", body["details"])
}

func TestSummarize_MalformedJSON(t *testing.T) {
	e := newTestServer(testConfig(), &fakeModel{}, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize", `{"transcript":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestSummarize_BodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.BodyLimit = "1K"
	model := &fakeModel{reply: "never"}
	e := newTestServer(cfg, model, &fakeSender{})

	payload := `{"transcript":"` + strings.Repeat("a", 2048) + `"}`
	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize", payload)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, model.prompts)
}

func TestShare_EndToEnd(t *testing.T) {
	sender := &fakeSender{}
	e := newTestServer(testConfig(), &fakeModel{}, sender)

	rec, body := doJSON(t, e, http.MethodPost, "/api/share",
		`{"recipients":["bob@x.com","carol@y.com"],"subject":"","summary":"Ship v2 Friday","senderName":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{
		"success":    true,
		"message":    "Summary shared successfully",
		"recipients": float64(2),
	}, body)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Meeting Summary", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "Meeting Summarizer")
}

func TestShare_AdmissionDropsInvalidAndDuplicates(t *testing.T) {
	sender := &fakeSender{}
	e := newTestServer(testConfig(), &fakeModel{}, sender)

	rec, body := doJSON(t, e, http.MethodPost, "/api/share",
		`{"recipients":["a@example.com","a@example.com","not-an-email"],"summary":"s"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["recipients"])
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"a@example.com"}, sender.sent[0].To)
}

func TestShare_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"missing recipients", `{"summary":"s"}`, "recipients required"},
		{"empty recipients", `{"recipients":[],"summary":"s"}`, "recipients required"},
		{"no valid recipient", `{"recipients":["nope"],"summary":"s"}`, "recipients required"},
		{"empty summary", `{"recipients":["bob@x.com","carol@y.com"],"summary":""}`, "summary required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			e := newTestServer(testConfig(), &fakeModel{}, sender)

			rec, body := doJSON(t, e, http.MethodPost, "/api/share", tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, body["error"])
			assert.Empty(t, sender.sent)
		})
	}
}

func TestShare_TransportFailure(t *testing.T) {
	sender := &fakeSender{err: stdErrors.New("dial tcp 10.0.0.1:587: connect: connection refused")}
	e := newTestServer(testConfig(), &fakeModel{}, sender)

	rec, body := doJSON(t, e, http.MethodPost, "/api/share", `{"recipients":["bob@x.com"],"summary":"s"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to share summary", body["error"])
	assert.Equal(t, "dial tcp 10.0.0.1:587: connect: connection refused", body["details"])
}

func TestShare_LargeRequestWithinBodyLimit(t *testing.T) {
	sender := &fakeSender{}
	e := newTestServer(testConfig(), &fakeModel{}, sender)

	recipients := make([]string, 501)
	for i := range recipients {
		recipients[i] = fmt.Sprintf("user%d@example.com", i)
	}
	payload, err := json.Marshal(map[string]interface{}{
		"recipients": recipients,
		"subject":    strings.Repeat("x", 1000),
		"senderName": strings.Repeat("n", 300),
		"summary":    "s",
	})
	require.NoError(t, err)

	rec, body := doJSON(t, e, http.MethodPost, "/api/share", string(payload))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(501), body["recipients"])
	require.Len(t, sender.sent, 1)
	assert.Len(t, sender.sent[0].To, 501)
	assert.Equal(t, strings.Repeat("x", 1000), sender.sent[0].Subject)
}

func TestSummarize_LongCustomPrompt(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	e := newTestServer(testConfig(), model, &fakeSender{})

	instruction := strings.Repeat("p", 2001)
	rec, body := doJSON(t, e, http.MethodPost, "/api/summarize",
		`{"transcript":"Alice: hi","customPrompt":"`+instruction+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, instruction, body["originalPrompt"])
	assert.Len(t, model.prompts, 1)
}

func TestHealth(t *testing.T) {
	e := newTestServer(testConfig(), &fakeModel{}, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Server is running", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(testConfig(), &fakeModel{}, &fakeSender{})

	rec, body := doJSON(t, e, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", body["error"])
}
