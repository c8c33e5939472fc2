package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestBuildPrompt_Default(t *testing.T) {
	p := BuildPrompt("Alice: hi", "", false)

	assert.Equal(t, SystemDirective, p.System)
	assert.Equal(t, "Please provide a comprehensive summary of the following transcript:\n\nAlice: hi", p.User)
}

func TestBuildPrompt_Custom(t *testing.T) {
	p := BuildPrompt("Alice: hi", "Focus on decisions", true)

	assert.Equal(t, SystemDirective, p.System)
	assert.Equal(t,
		"Please summarize the following transcript based on this instruction: \"Focus on decisions\"\n\nTranscript:\nAlice: hi",
		p.User)
}

func TestBuildPrompt_IsPure(t *testing.T) {
	assert.Equal(t, BuildPrompt("t", "i", true), BuildPrompt("t", "i", true))
}

func TestPrompt_Messages(t *testing.T) {
	msgs := BuildPrompt("t", "", false).Messages()

	assert.Len(t, msgs, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, msgs[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, msgs[1].Role)
}
