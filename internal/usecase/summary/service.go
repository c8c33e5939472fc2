package summary

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/callcontext"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// Operation names the call in logs and call context
const Operation = "summarize"

// Service defines the summarization use case
type Service interface {
	// Summarize turns a transcript and optional instruction into a summary
	// with exactly one model call.
	Summarize(ctx context.Context, req entities.SummaryRequest) (*entities.Summary, error)
}

type summaryService struct {
	model  llms.Model
	cfg    config.LLMConfig
	logger *zap.Logger
}

// Ensure summaryService implements Service interface
var _ Service = (*summaryService)(nil)

// NewService constructs the summarization service. The model and config
// are fixed for the service's lifetime.
func NewService(model llms.Model, cfg config.LLMConfig, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &summaryService{
		model:  model,
		cfg:    cfg,
		logger: logger,
	}
}

// Summarize validates the transcript, builds the prompt and returns the
// model's first completion verbatim.
func (s *summaryService) Summarize(ctx context.Context, req entities.SummaryRequest) (*entities.Summary, error) {
	if !req.HasTranscript() {
		return nil, errors.ErrInvalidArgument(entities.MsgTranscriptRequired)
	}

	custom := req.IsCustom()
	prompt := BuildPrompt(req.Transcript, req.CustomInstruction, custom)

	ctx, cancel := callcontext.Begin(ctx, Operation, s.cfg.Timeout)
	defer cancel()

	fields := []zap.Field{
		zap.String("request_id", callcontext.GetRequestID(ctx)),
		zap.String("operation", callcontext.GetOperation(ctx)),
		zap.Bool("custom_prompt", custom),
		zap.Int("transcript_length", len(req.Transcript)),
		zap.String("model", s.cfg.Model),
	}

	resp, err := s.model.GenerateContent(ctx, prompt.Messages(),
		llms.WithModel(s.cfg.Model),
		llms.WithMaxTokens(s.cfg.MaxTokens),
		llms.WithTemperature(s.cfg.Temperature),
	)
	if err != nil {
		if callcontext.IsTimeout(err) {
			err = fmt.Errorf("model call timed out after %s: %w", s.cfg.Timeout, err)
		}
		s.logger.Error("summarize failed",
			append(fields, zap.Duration("latency", callcontext.Elapsed(ctx)), zap.Error(err))...)
		return nil, errors.ErrAISummaryFailed(err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		err := fmt.Errorf("empty response from model: no choices")
		s.logger.Error("summarize failed", append(fields, zap.Error(err))...)
		return nil, errors.ErrAISummaryFailed(err)
	}

	s.logger.Info("summarize succeeded",
		append(fields,
			zap.Duration("latency", callcontext.Elapsed(ctx)),
			zap.String("stop_reason", resp.Choices[0].StopReason),
		)...)

	return entities.NewSummary(req, resp.Choices[0].Content), nil
}
