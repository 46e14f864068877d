package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a known template rendered by the worker with Data; raw
// Subject/Text/HTML are passed through when no template is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "invitation"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateInvitation is the onboarding invitation sent when an administrator
// creates or re-invites an account.
const TemplateInvitation = "invitation"
