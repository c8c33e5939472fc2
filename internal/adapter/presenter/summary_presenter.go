package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// ShareSuccessMessage is returned after a successful dispatch
const ShareSuccessMessage = "Summary shared successfully"

// ToSummarizeResponse converts a Summary entity to SummarizeResponse DTO
func ToSummarizeResponse(s *entities.Summary) *dto.SummarizeResponse {
	if s == nil {
		return nil
	}

	return &dto.SummarizeResponse{
		Success:        true,
		Summary:        s.Text,
		OriginalPrompt: s.OriginalPrompt,
	}
}

// ToShareResponse converts a DispatchResult to ShareResponse DTO
func ToShareResponse(r *entities.DispatchResult) *dto.ShareResponse {
	if r == nil {
		return nil
	}

	return &dto.ShareResponse{
		Success:    true,
		Message:    ShareSuccessMessage,
		Recipients: r.Recipients,
	}
}
