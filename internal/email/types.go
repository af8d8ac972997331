package email

// Email is one outgoing message.
type Email struct {
	From     string
	FromName string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload handed to an email template.
type TemplateData map[string]interface{}
