package email

// Provider sends email messages.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendWithTemplate renders the named template with data and delivers
	// the result as the HTML body.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders named email templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
