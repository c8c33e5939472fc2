package share

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/callcontext"
	"github.com/johnquangdev/meeting-summarizer/pkg/mailer"
)

// Operation names the call in logs and call context
const Operation = "share"

// Service defines the dispatch use case
type Service interface {
	// Share sends one message carrying the summary to every recipient.
	// Recipients must already be admitted.
	Share(ctx context.Context, req entities.ShareRequest) (*entities.DispatchResult, error)
}

// Options holds the dispatcher's fixed settings
type Options struct {
	Timeout time.Duration
}

type shareService struct {
	sender mailer.Sender
	opts   Options
	logger *zap.Logger
}

// Ensure shareService implements Service interface
var _ Service = (*shareService)(nil)

// NewService constructs the dispatch service around a mail transport
func NewService(sender mailer.Sender, opts Options, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &shareService{
		sender: sender,
		opts:   opts,
		logger: logger,
	}
}

// Share validates the request, renders the email and performs one send
func (s *shareService) Share(ctx context.Context, req entities.ShareRequest) (*entities.DispatchResult, error) {
	if len(req.Recipients) == 0 {
		return nil, errors.ErrInvalidArgument(entities.MsgRecipientsRequired)
	}
	if !req.HasSummary() {
		return nil, errors.ErrInvalidArgument(entities.MsgSummaryRequired)
	}

	result := &entities.DispatchResult{
		Recipients: len(req.Recipients),
		Subject:    req.ResolvedSubject(),
		SenderName: req.ResolvedSenderName(),
	}

	body, err := RenderHTML(result.SenderName, req.Summary)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	ctx, cancel := callcontext.Begin(ctx, Operation, s.opts.Timeout)
	defer cancel()

	fields := []zap.Field{
		zap.String("request_id", callcontext.GetRequestID(ctx)),
		zap.String("operation", callcontext.GetOperation(ctx)),
		zap.Int("recipients", result.Recipients),
		zap.String("subject", result.Subject),
	}

	if err := s.sender.Send(ctx, mailer.Message{
		To:      req.Recipients,
		Subject: result.Subject,
		HTML:    body,
	}); err != nil {
		if callcontext.IsTimeout(err) {
			err = fmt.Errorf("mail transport timed out after %s: %w", s.opts.Timeout, err)
		}
		s.logger.Error("share failed",
			append(fields, zap.Duration("latency", callcontext.Elapsed(ctx)), zap.Error(err))...)
		return nil, errors.ErrShareFailed(err)
	}

	s.logger.Info("share succeeded",
		append(fields, zap.Duration("latency", callcontext.Elapsed(ctx)))...)

	return result, nil
}
