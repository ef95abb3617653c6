package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration shared by the speech synthesis commands
type Config struct {
	// Google Cloud Text-to-Speech configuration
	// Empty credentials file means Application Default Credentials are used.
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS" default:""`
	Endpoint        string `envconfig:"TTS_ENDPOINT" default:""`           // e.g. texttospeech.googleapis.com:443
	LanguageCode    string `envconfig:"TTS_LANGUAGE_CODE" default:"en-US"` // Voice language for both presets
	Timeout         int    `envconfig:"TTS_TIMEOUT" default:"60"`          // seconds, 0 disables the deadline

	// Resilience configuration
	RetryMaxAttempts    int `envconfig:"RETRY_MAX_ATTEMPTS" default:"1"`      // 1 means a single attempt
	RetryInitialBackoff int `envconfig:"RETRY_INITIAL_BACKOFF" default:"200"` // Initial backoff in milliseconds

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"warn"`           // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"true"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	PushgatewayURL string `envconfig:"METRICS_PUSHGATEWAY_URL" default:""` // Used when METRICS_ENABLED is true
	MetricsJob     string `envconfig:"METRICS_JOB" default:"speech-synth"`
}

// Load reads configuration from environment variables
// It first attempts to load from .env file if it exists, then from environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that envconfig cannot express
func (c *Config) Validate() error {
	if c.LanguageCode == "" {
		return fmt.Errorf("TTS_LANGUAGE_CODE must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("TTS_TIMEOUT must be >= 0, got %d", c.Timeout)
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be >= 1, got %d", c.RetryMaxAttempts)
	}
	if c.RetryInitialBackoff < 0 {
		return fmt.Errorf("RETRY_INITIAL_BACKOFF must be >= 0, got %d", c.RetryInitialBackoff)
	}
	return nil
}

// CallTimeout returns the per-call deadline, zero when disabled
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
