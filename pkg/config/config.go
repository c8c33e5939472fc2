package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Mail   MailConfig
	Log    LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	BodyLimit       string        `envconfig:"BODY_LIMIT" default:"10M"`
}

// LLMConfig holds the chat-completion model configuration
type LLMConfig struct {
	APIKey      string        `envconfig:"OPENAI_API_KEY"`
	BaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"LLM_MODEL" default:"gpt-3.5-turbo"`
	MaxTokens   int           `envconfig:"LLM_MAX_TOKENS" default:"1000"`
	Temperature float64       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
}

// MailConfig holds the SMTP transport configuration
type MailConfig struct {
	User      string        `envconfig:"EMAIL_USER"`
	Password  string        `envconfig:"EMAIL_PASS"`
	From      string        `envconfig:"EMAIL_FROM"`
	Host      string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port      int           `envconfig:"SMTP_PORT" default:"587"`
	TLSPolicy string        `envconfig:"SMTP_TLS" default:"mandatory"`
	Timeout   time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}

	// Sections are processed one by one with an empty prefix so that the
	// variable names stay flat (PORT, not SERVER_PORT).
	sections := []interface{}{&config.Server, &config.LLM, &config.Mail, &config.Log}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process environment: %w", err)
		}
	}

	if config.Mail.From == "" {
		config.Mail.From = config.Mail.User
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be within [0, 2], got %v", c.LLM.Temperature)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.Mail.Timeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT must be positive")
	}
	switch c.Mail.TLSPolicy {
	case "mandatory", "opportunistic", "none":
	default:
		return fmt.Errorf("SMTP_TLS must be one of mandatory, opportunistic, none; got %q", c.Mail.TLSPolicy)
	}
	return nil
}

// Warnings lists missing credentials. They are not fatal: the upstream
// service reports the failure on the first call.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.LLM.APIKey == "" {
		warnings = append(warnings, "OPENAI_API_KEY is not set; summarize calls will be rejected upstream")
	}
	if c.Mail.User == "" || c.Mail.Password == "" {
		warnings = append(warnings, "EMAIL_USER/EMAIL_PASS are not set; share calls will be sent without SMTP auth")
	}
	if c.Mail.From == "" {
		warnings = append(warnings, "EMAIL_FROM is not set; share calls will fail")
	}
	return warnings
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
