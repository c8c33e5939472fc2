package summary

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// SystemDirective is attached to every model request
const SystemDirective = "You are a professional meeting summarizer. Provide clear, structured summaries that are easy to read and actionable."

const (
	customPromptFormat  = "Please summarize the following transcript based on this instruction: \"%s\"\n\nTranscript:\n%s"
	defaultPromptFormat = "Please provide a comprehensive summary of the following transcript:\n\n%s"
)

// Prompt is the pair of messages sent to the model
type Prompt struct {
	System string
	User   string
}

// BuildPrompt frames the transcript with the custom instruction when one is
// given, and with the comprehensive-summary intent otherwise. The instruction
// and transcript are embedded verbatim.
func BuildPrompt(transcript, instruction string, custom bool) Prompt {
	p := Prompt{System: SystemDirective}
	if custom {
		p.User = fmt.Sprintf(customPromptFormat, instruction, transcript)
	} else {
		p.User = fmt.Sprintf(defaultPromptFormat, transcript)
	}
	return p
}

// Messages converts the prompt into model messages
func (p Prompt) Messages() []llms.MessageContent {
	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.System),
		llms.TextParts(llms.ChatMessageTypeHuman, p.User),
	}
}
