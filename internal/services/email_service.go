package services

import (
	"context"

	"petlink_backend/internal/email"
)

// EmailService is the delivery surface used by the outbox worker.
type EmailService struct {
	provider email.Provider
	from     string
	fromName string
}

func NewEmailService(provider email.Provider, from, fromName string) *EmailService {
	return &EmailService{
		provider: provider,
		from:     from,
		fromName: fromName,
	}
}

// SendTemplatedEmail renders the named template and delivers the result.
func (s *EmailService) SendTemplatedEmail(ctx context.Context, to []string, subject, templateName string, data email.TemplateData) error {
	emailMsg := &email.Email{
		From:     s.from,
		FromName: s.fromName,
		To:       to,
		Subject:  subject,
	}

	return s.provider.SendWithTemplate(templateName, data, emailMsg)
}

// SendHTMLEmail delivers a pre-rendered HTML message.
func (s *EmailService) SendHTMLEmail(ctx context.Context, to []string, subject, htmlBody string) error {
	emailMsg := &email.Email{
		From:     s.from,
		FromName: s.fromName,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	}

	return s.provider.Send(emailMsg)
}
