package services

import (
	"context"
	"fmt"
	"log/slog"

	"flightdealclub/internal/domain"
)

type notifierService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	texter   domain.TextSender
	logger   *slog.Logger
}

// NewNotifier returns a Notifier that dispatches through the given mail and
// text channels.
func NewNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, texter domain.TextSender, logger *slog.Logger) domain.Notifier {
	return &notifierService{mailer: mailer, renderer: renderer, texter: texter, logger: logger}
}

func (n *notifierService) SendText(ctx context.Context, body string) error {
	if err := n.texter.Send(ctx, body); err != nil {
		return fmt.Errorf("send text alert: %w", err)
	}
	return nil
}

// SendEmail renders the deal alert once and performs one send per recipient.
// The first transport failure is returned as a *DeliveryError naming the
// recipient it failed for.
func (n *notifierService) SendEmail(ctx context.Context, body string, dealCount int, recipients []string) error {
	data := &domain.DealAlertEmailData{Body: body, DealCount: dealCount}
	subject, htmlBody, textBody, err := n.renderer.Render("deal_alert", data)
	if err != nil {
		return fmt.Errorf("render deal_alert template: %w", err)
	}
	for _, to := range recipients {
		if err := n.mailer.Send(to, subject, htmlBody, textBody); err != nil {
			return &domain.DeliveryError{Channel: "email", Recipient: to, Err: err}
		}
		n.logger.Info("deal alert email sent", "to", to, "deals", dealCount)
	}
	return nil
}
