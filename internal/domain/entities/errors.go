package entities

// Validation messages surfaced to callers
const (
	MsgTranscriptRequired = "transcript required"
	MsgRecipientsRequired = "recipients required"
	MsgSummaryRequired    = "summary required"
)
