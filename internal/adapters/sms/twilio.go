// Package sms implements the text-message channel. Messages go to the fixed
// operator number configured at startup.
package sms

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"flightdealclub/internal/domain"
)

// TwilioConfig holds credentials and the fixed from/to numbers.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string
}

// SenderConfig holds configuration for creating a text sender.
type SenderConfig struct {
	Provider string
	Twilio   TwilioConfig
}

// NewSender creates a text sender from config. Provider "twilio" uses the
// Twilio Messages API; "noop" or unknown logs instead of sending.
func NewSender(config SenderConfig) (domain.TextSender, error) {
	switch config.Provider {
	case "twilio":
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.Twilio.AccountSID,
			Password: config.Twilio.AuthToken,
		})
		return &twilioSender{
			client: client,
			from:   config.Twilio.FromNumber,
			to:     config.Twilio.ToNumber,
		}, nil
	case "noop":
		return &noopSender{}, nil
	default:
		log.Printf("[SMS] Unknown sms provider %q, using noop", config.Provider)
		return &noopSender{}, nil
	}
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
	to     string
}

func (s *twilioSender) Send(ctx context.Context, body string) error {
	params := &api.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(s.from)
	params.SetTo(s.to)
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return &domain.DeliveryError{Channel: "sms", Recipient: s.to, Err: fmt.Errorf("create message: %w", err)}
	}
	if resp.Sid != nil {
		log.Printf("[SMS] Text sent via Twilio. SID: %s", *resp.Sid)
	}
	return nil
}

type noopSender struct{}

func (n *noopSender) Send(ctx context.Context, body string) error {
	log.Println("[SMS] Text would be sent (noop)", "body", body)
	return nil
}
