package entities

import "strings"

const (
	DefaultSubject    = "Meeting Summary"
	DefaultSenderName = "Meeting Summarizer"
)

// ShareRequest is one dispatch call's input. Recipients are expected to be
// admitted (validated and unique) already.
type ShareRequest struct {
	Recipients []string
	Subject    string
	Summary    string
	SenderName string
}

// HasSummary reports whether the summary has non-whitespace content
func (r ShareRequest) HasSummary() bool {
	return strings.TrimSpace(r.Summary) != ""
}

// ResolvedSubject returns the subject, defaulted when blank
func (r ShareRequest) ResolvedSubject() string {
	if strings.TrimSpace(r.Subject) == "" {
		return DefaultSubject
	}
	return r.Subject
}

// ResolvedSenderName returns the sender name, defaulted when blank
func (r ShareRequest) ResolvedSenderName() string {
	if strings.TrimSpace(r.SenderName) == "" {
		return DefaultSenderName
	}
	return r.SenderName
}

// DispatchResult describes a successful dispatch
type DispatchResult struct {
	Recipients int
	Subject    string
	SenderName string
}
