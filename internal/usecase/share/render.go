package share

import (
	"bytes"
	"fmt"
	"html/template"
)

// Footer is the static attribution under every shared summary
const Footer = "This summary was generated using AI Meeting Summarizer"

var emailTemplate = template.Must(template.New("summary").Parse(`
<h2>Meeting Summary</h2>
<p><strong>From:</strong> {{.SenderName}}</p>
<hr>
<div style="white-space: pre-wrap;">{{.Summary}}</div>
<hr>
<p><em>{{.Footer}}</em></p>
`))

type emailView struct {
	SenderName string
	Summary    string
	Footer     string
}

// RenderHTML renders the fixed email body. Values are HTML-escaped so the
// reader sees the literal summary text; pre-wrap keeps its whitespace.
func RenderHTML(senderName, summary string) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, emailView{
		SenderName: senderName,
		Summary:    summary,
		Footer:     Footer,
	}); err != nil {
		return "", fmt.Errorf("failed to render summary email: %w", err)
	}
	return buf.String(), nil
}
