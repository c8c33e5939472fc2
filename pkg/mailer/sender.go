// Package mailer delivers rendered summaries through an email transport.
package mailer

import "context"

// Message is one outbound email addressed to every recipient at once.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender is the interface that email transports implement. A Send either
// accepts the whole message or reports a failure for it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
