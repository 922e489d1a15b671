package config

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All fields are populated from environment variables.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Remote spreadsheet store holding the destination catalog and user registry.
	SheetsBaseURL string `env:"SHEETS_BASE_URL,required"`
	SheetsToken   string `env:"SHEETS_TOKEN"`

	// Flight search provider.
	FlightAPIBaseURL string `env:"FLIGHT_API_BASE_URL" envDefault:"https://tequila-api.kiwi.com"`
	FlightAPIKey     string `env:"FLIGHT_API_KEY,required"`

	// Search parameters for the batch run.
	SearchDayRange int    `env:"SEARCH_DAY_RANGE" envDefault:"180"`
	TripType       string `env:"TRIP_TYPE" envDefault:"round"`
	Currency       string `env:"CURRENCY" envDefault:"USD"`
	MaxStopovers   int    `env:"MAX_STOPOVERS" envDefault:"0"`

	// Email channel. Provider "ses" requires the AWS credentials below;
	// "noop" logs instead of sending.
	EmailProvider    string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	EmailFromAddress string `env:"EMAIL_FROM_ADDRESS"`
	EmailFromName    string `env:"EMAIL_FROM_NAME" envDefault:"Flight Deal Club"`
	AWSRegion        string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID   string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `env:"AWS_SECRET_ACCESS_KEY"`

	// Text-message channel. Provider "twilio" requires the Twilio credentials
	// below; "noop" logs instead of sending.
	SMSProvider      string `env:"SMS_PROVIDER" envDefault:"noop"`
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`
	TwilioToNumber   string `env:"TWILIO_TO_NUMBER"`
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load parses environment variables and returns a Config.
// It attempts to load a .env file first when not in production; in production
// we rely on system environment variables alone. A missing required credential
// is a startup error.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.EmailProvider == "ses" {
		if cfg.EmailFromAddress == "" || cfg.AWSAccessKeyID == "" || cfg.AWSSecretKey == "" {
			return nil, fmt.Errorf("EMAIL_PROVIDER=ses requires EMAIL_FROM_ADDRESS, AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
		}
	}
	if cfg.SMSProvider == "twilio" {
		if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" || cfg.TwilioToNumber == "" {
			return nil, fmt.Errorf("SMS_PROVIDER=twilio requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER and TWILIO_TO_NUMBER")
		}
	}
	if cfg.SearchDayRange <= 0 {
		return nil, fmt.Errorf("SEARCH_DAY_RANGE must be positive, got %d", cfg.SearchDayRange)
	}

	return cfg, nil
}
