package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Render renders a named email template with data, returning subject, text
// and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "invitation":
		return renderInvitation(data)
	default:
		return "", "", "", fmt.Errorf("unknown email template: %s", name)
	}
}

var invitationHTML = template.Must(template.New("invitation").Parse(`
<h2>Welcome to {{.CompanyName}}</h2>
<p>You have been invited to join the {{.CompanyName}} platform.</p>
<p>Please click the link below to set your password and activate your account:</p>
<p><a href="{{.AcceptLink}}">Accept Invitation</a></p>
<p>This link will expire in {{.ExpiresInDays}} days.</p>
<p>If you did not request this invitation, please ignore this email.</p>
<p>Thank you,<br>The {{.CompanyName}} Team</p>
`))

func renderInvitation(data map[string]any) (string, string, string, error) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["CompanyName"]; !ok {
		data["CompanyName"] = "Realtex AI"
	}
	if _, ok := data["ExpiresInDays"]; !ok {
		data["ExpiresInDays"] = 7
	}
	var buf bytes.Buffer
	if err := invitationHTML.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject := fmt.Sprintf("Welcome to %v - Invitation to Join", data["CompanyName"])
	text := fmt.Sprintf("You have been invited to join %v. Accept your invitation: %v", data["CompanyName"], data["AcceptLink"])
	return subject, text, buf.String(), nil
}
