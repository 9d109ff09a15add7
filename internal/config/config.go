package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Backend  BackendConfig
	Policy   PolicyConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	WhatsApp WhatsAppConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port           string   `env:"APP_PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// BackendConfig points at the site backend serving the calculator configuration.
type BackendConfig struct {
	BaseURL string        `env:"API_BASE_URL"`
	Timeout time.Duration `env:"POLICY_FETCH_TIMEOUT" envDefault:"15s"`
}

// PolicyConfig controls loading and refreshing of the pricing policy.
type PolicyConfig struct {
	RefreshSchedule string        `env:"POLICY_REFRESH_SCHEDULE" envDefault:"@every 60s"`
	FetchRetries    int           `env:"POLICY_FETCH_RETRIES" envDefault:"2"`
	RetryInterval   time.Duration `env:"POLICY_RETRY_INTERVAL" envDefault:"1s"`
}

// MongoDBConfig holds settings for the inquiry store. Empty URI disables it.
type MongoDBConfig struct {
	URI    string `env:"MONGODB_URI"`
	DBName string `env:"MONGODB_DB_NAME" envDefault:"eliksir"`
}

// SheetsConfig holds settings for the inquiry sheet. Empty values disable it.
type SheetsConfig struct {
	CredentialsPath string `env:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
	SpreadsheetID   string `env:"GOOGLE_SHEET_INQUIRIES_ID"`
}

// WhatsAppConfig contains credentials for inquiry notifications. Empty token disables them.
type WhatsAppConfig struct {
	AccessToken   string `env:"WHATSAPP_TOKEN"`
	PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	BaseURL       string `env:"WHATSAPP_BASE_URL" envDefault:"https://graph.facebook.com"`
	APIVersion    string `env:"WHATSAPP_API_VERSION" envDefault:"v20.0"`
	NotifyTo      string `env:"WHATSAPP_NOTIFY_TO"`
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("API_BASE_URL must be provided")
	}

	if c.Policy.FetchRetries < 0 {
		return errors.New("POLICY_FETCH_RETRIES must not be negative")
	}

	if _, err := cron.ParseStandard(c.Policy.RefreshSchedule); err != nil {
		return fmt.Errorf("POLICY_REFRESH_SCHEDULE is invalid: %w", err)
	}

	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_INQUIRIES_ID must be provided together")
	}

	if c.WhatsApp.AccessToken != "" {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.NotifyTo == "":
			return errors.New("WHATSAPP_NOTIFY_TO must be provided")
		}
	}

	return nil
}

// MongoEnabled reports whether inquiries are persisted to MongoDB.
func (c *Config) MongoEnabled() bool { return c.MongoDB.URI != "" }

// SheetsEnabled reports whether inquiries are appended to a Google Sheet.
func (c *Config) SheetsEnabled() bool { return c.Sheets.SpreadsheetID != "" }

// WhatsAppEnabled reports whether new inquiries are announced over WhatsApp.
func (c *Config) WhatsAppEnabled() bool { return c.WhatsApp.AccessToken != "" }
