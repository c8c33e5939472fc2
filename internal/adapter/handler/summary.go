package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/share"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// Summary handles the summarize and share endpoints
type Summary struct {
	summarizer summary.Service
	dispatcher share.Service
	admission  *share.Admission
	logger     *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summarizer summary.Service, dispatcher share.Service, admission *share.Admission, logger *zap.Logger) *Summary {
	return &Summary{
		summarizer: summarizer,
		dispatcher: dispatcher,
		admission:  admission,
		logger:     logger,
	}
}

// Summarize handles POST /summarize
// @Summary      Summarize a transcript
// @Description  Sends the transcript, framed by an optional custom instruction, to the language model and returns its summary
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequest   true  "Transcript and optional instruction"
// @Success      200      {object}  dto.SummarizeResponse  "Summary generated"
// @Failure      400      {object}  common.ErrorResponse   "Missing transcript or invalid payload"
// @Failure      500      {object}  common.ErrorResponse   "Model call failed"
// @Router       /summarize [post]
func (h *Summary) Summarize(c echo.Context) error {
	var req dto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	result, err := h.summarizer.Summarize(c.Request().Context(), entities.SummaryRequest{
		Transcript:        req.Transcript,
		CustomInstruction: req.CustomPrompt,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummarizeResponse(result))
}

// Share handles POST /share
// @Summary      Share a summary by email
// @Description  Admits the recipients (invalid and duplicate addresses are dropped) and sends one email to all of them
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ShareRequest      true  "Recipients, subject, summary and sender name"
// @Success      200      {object}  dto.ShareResponse     "Summary shared"
// @Failure      400      {object}  common.ErrorResponse  "Missing recipients or summary"
// @Failure      500      {object}  common.ErrorResponse  "Mail transport failed"
// @Router       /share [post]
func (h *Summary) Share(c echo.Context) error {
	var req dto.ShareRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	recipients := h.admission.Admit(req.Recipients)
	if dropped := len(req.Recipients) - len(recipients); dropped > 0 && h.logger != nil {
		h.logger.Debug("recipients dropped by admission",
			zap.String("request_id", getRequestID(c)),
			zap.Int("dropped", dropped),
		)
	}

	result, err := h.dispatcher.Share(c.Request().Context(), entities.ShareRequest{
		Recipients: recipients,
		Subject:    req.Subject,
		Summary:    req.Summary,
		SenderName: req.SenderName,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToShareResponse(result))
}
