// The notifier binary runs one batch pass: load the catalog and registry,
// backfill missing airport codes, search every destination for every user,
// and notify users whose price thresholds were beaten.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"flightdealclub/config"
	"flightdealclub/internal/adapters/email"
	"flightdealclub/internal/adapters/kiwi"
	"flightdealclub/internal/adapters/sheets"
	"flightdealclub/internal/adapters/sms"
	"flightdealclub/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Printf("run failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg)
	ctx := context.Background()

	httpClient := &http.Client{Timeout: 60 * time.Second}
	store := sheets.NewClient(httpClient, cfg.SheetsBaseURL, cfg.SheetsToken)
	provider := kiwi.NewClient(httpClient, cfg.FlightAPIBaseURL, cfg.FlightAPIKey)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	texter, err := sms.NewSender(sms.SenderConfig{
		Provider: cfg.SMSProvider,
		Twilio: sms.TwilioConfig{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			FromNumber: cfg.TwilioFromNumber,
			ToNumber:   cfg.TwilioToNumber,
		},
	})
	if err != nil {
		return fmt.Errorf("create text sender: %w", err)
	}

	catalog, err := services.NewCatalogAccessor(ctx, store)
	if err != nil {
		return err
	}
	registry, err := services.NewUserRegistry(ctx, store)
	if err != nil {
		return err
	}

	search := services.NewFlightSearchService(provider)
	backfill := services.NewBackfillService(catalog, search, logger)
	backfillResult, err := backfill.Run(ctx)
	if err != nil {
		return fmt.Errorf("backfill airport codes: %w", err)
	}
	logger.Info("backfill complete", "resolved", backfillResult.Resolved, "failed", len(backfillResult.Failures))

	notifier := services.NewNotifier(mailer, email.NewTemplateRenderer(), texter, logger)
	finder := services.NewDealFinder(catalog, registry, search, notifier, services.SearchOptions{
		DayRange:     cfg.SearchDayRange,
		TripType:     cfg.TripType,
		Currency:     cfg.Currency,
		MaxStopovers: cfg.MaxStopovers,
	}, logger)

	report, err := finder.Run(ctx)
	if err != nil {
		return fmt.Errorf("find deals: %w", err)
	}
	logger.Info("run complete",
		"deals", report.DealsFound,
		"notifications", report.NotificationsSent,
		"search_failures", len(report.SearchFailures),
		"delivery_failures", len(report.DeliveryFailures))
	if catalog.Dirty() {
		logger.Warn("catalog cache has unconfirmed mutations; the sheet may be behind")
	}
	if report.Failed() {
		return fmt.Errorf("completed with %d search and %d delivery failures",
			len(report.SearchFailures), len(report.DeliveryFailures))
	}
	return nil
}
