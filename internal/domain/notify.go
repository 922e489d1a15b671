package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// TextSender defines the contract for sending text messages to the
// configured operator number.
type TextSender interface {
	Send(ctx context.Context, body string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DealAlertEmailData holds data for the deal alert email.
type DealAlertEmailData struct {
	Body      string
	DealCount int
}

// Notifier dispatches aggregated deal messages. Transport failures surface
// as *DeliveryError and are never retried.
type Notifier interface {
	SendText(ctx context.Context, body string) error
	// SendEmail performs one send per recipient.
	SendEmail(ctx context.Context, body string, dealCount int, recipients []string) error
}
