package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Message is the rendered notification for one submission.
type Message struct {
	Subject string
	Text    string
	HTML    string
	ReplyTo string
}

var messageHTML = template.Must(template.New("message").Parse(`<h2>New contact request</h2>
<table cellpadding="4">
<tr><th align="left">Name</th><td>{{.Name}}</td></tr>
<tr><th align="left">Email</th><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><th align="left">Phone</th><td>{{.Phone}}</td></tr>{{end}}
{{if .Company}}<tr><th align="left">Company</th><td>{{.Company}}</td></tr>{{end}}
<tr><th align="left">Service</th><td>{{.Service}}</td></tr>
<tr><th align="left">Received</th><td>{{.Received}}</td></tr>
</table>
<p style="white-space: pre-wrap">{{.Message}}</p>
`))

// Compose renders the notification sent for sub.
func Compose(sub Submission) (Message, error) {
	service := ServiceLabel(sub.ServiceType)
	received := sub.ReceivedAt.UTC().Format(time.RFC1123)

	data := struct {
		Submission
		Service  string
		Received string
	}{sub, service, received}

	var html bytes.Buffer
	if err := messageHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("compose contact message: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Name: %s\n", sub.Name)
	fmt.Fprintf(&text, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", sub.Phone)
	}
	if sub.Company != "" {
		fmt.Fprintf(&text, "Company: %s\n", sub.Company)
	}
	fmt.Fprintf(&text, "Service: %s\n", service)
	fmt.Fprintf(&text, "Received: %s\n\n%s\n", received, sub.Message)

	return Message{
		Subject: headerSafe(fmt.Sprintf("New %s inquiry from %s", service, sub.Name)),
		Text:    text.String(),
		HTML:    html.String(),
		ReplyTo: headerSafe(sub.Email),
	}, nil
}

// headerSafe drops line breaks so visitor input cannot add mail headers.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
