package entities

import "strings"

// DefaultPromptLabel is echoed as the original prompt when no custom
// instruction was given.
const DefaultPromptLabel = "Default summary"

// SummaryRequest is one summarization call's input. It is never persisted.
type SummaryRequest struct {
	Transcript        string
	CustomInstruction string
}

// HasTranscript reports whether the transcript has non-whitespace content
func (r SummaryRequest) HasTranscript() bool {
	return strings.TrimSpace(r.Transcript) != ""
}

// IsCustom reports whether the request reframes the default intent
func (r SummaryRequest) IsCustom() bool {
	return strings.TrimSpace(r.CustomInstruction) != ""
}

// Summary is the model's condensation of a transcript
type Summary struct {
	Text           string
	OriginalPrompt string
	Custom         bool
}

// NewSummary builds the summary for req from the model's text
func NewSummary(req SummaryRequest, text string) *Summary {
	s := &Summary{
		Text:           text,
		OriginalPrompt: DefaultPromptLabel,
	}
	if req.IsCustom() {
		s.OriginalPrompt = req.CustomInstruction
		s.Custom = true
	}
	return s
}
