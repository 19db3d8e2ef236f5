package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateFormReceived corresponds to
	// templates/emails/form_received.html.
	TemplateFormReceived Template = "form_received"
)
