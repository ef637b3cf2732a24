// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Contact notification policies.
const (
	NotifyModeRequired   = "required"
	NotifyModeBestEffort = "best_effort"
	NotifyModeLogOnly    = "log_only"
)

// Contact notification delivery channels.
const (
	DeliveryDirect = "direct"
	DeliveryQueued = "queued"
)

// Email providers.
const (
	EmailProviderSMTP  = "smtp"
	EmailProviderBrevo = "brevo"
)

// Chat reply strategies.
const (
	ChatStrategyStatic = "static"
	ChatStrategyRemote = "remote"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides per-IP request budgets for public endpoints.
type RateLimitConfig interface {
	GetContactRatePerMinute() int
	GetChatRatePerMinute() int
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetBrevoAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// ContactConfig provides settings for the contact form module.
type ContactConfig interface {
	GetContactNotifyMode() string
	GetContactDelivery() string
	GetContactRecipient() string
}

// ChatConfig provides settings for the chat demo module.
type ChatConfig interface {
	GetChatReplyStrategy() string
	GetChatWebhookURL() string
	GetChatWebhookTimeout() time.Duration
	GetChatReplyDelay() time.Duration
}

// SchedulerConfig provides settings for the asynq task queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	ContactRatePerMinute int
	ChatRatePerMinute    int
	ContactNotifyMode    string
	ContactDelivery      string
	ContactRecipient     string
	EmailProvider        string
	BrevoAPIKey          string
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	EmailFromName        string
	EmailFromAddress     string
	ChatReplyStrategy    string
	ChatWebhookURL       string
	ChatWebhookTimeout   time.Duration
	ChatReplyDelay       time.Duration
	RedisURL             string
	RedisTLSInsecure     bool
	AsynqQueueName       string
	AsynqConcurrency     int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetContactRatePerMinute() int { return c.ContactRatePerMinute }
func (c *Config) GetChatRatePerMinute() int    { return c.ChatRatePerMinute }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.ContactNotifyMode != NotifyModeLogOnly }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// ContactConfig implementation
func (c *Config) GetContactNotifyMode() string { return c.ContactNotifyMode }
func (c *Config) GetContactDelivery() string   { return c.ContactDelivery }
func (c *Config) GetContactRecipient() string  { return c.ContactRecipient }

// ChatConfig implementation
func (c *Config) GetChatReplyStrategy() string         { return c.ChatReplyStrategy }
func (c *Config) GetChatWebhookURL() string            { return c.ChatWebhookURL }
func (c *Config) GetChatWebhookTimeout() time.Duration { return c.ChatWebhookTimeout }
func (c *Config) GetChatReplyDelay() time.Duration     { return c.ChatReplyDelay }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string        { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool  { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string  { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int   { return c.AsynqConcurrency }
func (c *Config) IsQueueEnabled() bool       { return c.ContactDelivery == DeliveryQueued }

// Load reads configuration from environment variables.
// A missing credential for a configured email path is reported here so that
// the process refuses to start instead of failing on the first submission.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from an arbitrary key lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	getEnv := func(key, fallback string) string {
		if val, ok := lookup(key); ok {
			return strings.TrimSpace(val)
		}
		return fallback
	}

	var parseErrs []error
	intEnv := func(key, fallback string) int {
		raw := getEnv(key, fallback)
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			parseErrs = append(parseErrs, fmt.Errorf("%s must be a non-negative integer, got %q", key, raw))
		}
		return v
	}
	durationEnv := func(key, fallback string) time.Duration {
		raw := getEnv(key, fallback)
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			parseErrs = append(parseErrs, fmt.Errorf("%s must be a non-negative duration such as 30s, got %q", key, raw))
		}
		return d
	}

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		ContactRatePerMinute: intEnv("RATE_LIMIT_CONTACT_PER_MINUTE", "5"),
		ChatRatePerMinute:    intEnv("RATE_LIMIT_CHAT_PER_MINUTE", "30"),
		ContactNotifyMode:    strings.ToLower(getEnv("CONTACT_NOTIFY_MODE", NotifyModeLogOnly)),
		ContactDelivery:      strings.ToLower(getEnv("CONTACT_DELIVERY", DeliveryDirect)),
		ContactRecipient:     getEnv("CONTACT_RECIPIENT", ""),
		EmailProvider:        strings.ToLower(getEnv("EMAIL_PROVIDER", EmailProviderSMTP)),
		BrevoAPIKey:          getEnv("BREVO_API_KEY", ""),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             intEnv("SMTP_PORT", "587"),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "Agentic"),
		EmailFromAddress:     getEnv("EMAIL_FROM_ADDRESS", ""),
		ChatReplyStrategy:    strings.ToLower(getEnv("CHAT_REPLY_STRATEGY", ChatStrategyStatic)),
		ChatWebhookURL:       getEnv("CHAT_WEBHOOK_URL", ""),
		ChatWebhookTimeout:   durationEnv("CHAT_WEBHOOK_TIMEOUT", "30s"),
		ChatReplyDelay:       durationEnv("CHAT_REPLY_DELAY", "1s"),
		RedisURL:             getEnv("REDIS_URL", ""),
		RedisTLSInsecure:     strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:       getEnv("ASYNQ_QUEUE", "contact"),
		AsynqConcurrency:     intEnv("ASYNQ_CONCURRENCY", "2"),
	}

	if err := errors.Join(parseErrs...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ContactNotifyMode {
	case NotifyModeRequired, NotifyModeBestEffort, NotifyModeLogOnly:
	default:
		return fmt.Errorf("CONTACT_NOTIFY_MODE must be one of %s, %s, %s", NotifyModeRequired, NotifyModeBestEffort, NotifyModeLogOnly)
	}
	switch c.ContactDelivery {
	case DeliveryDirect, DeliveryQueued:
	default:
		return fmt.Errorf("CONTACT_DELIVERY must be %s or %s", DeliveryDirect, DeliveryQueued)
	}
	switch c.ChatReplyStrategy {
	case ChatStrategyStatic:
	case ChatStrategyRemote:
		if c.ChatWebhookURL == "" {
			return fmt.Errorf("CHAT_WEBHOOK_URL is required when CHAT_REPLY_STRATEGY is remote")
		}
	default:
		return fmt.Errorf("CHAT_REPLY_STRATEGY must be %s or %s", ChatStrategyStatic, ChatStrategyRemote)
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	if !c.GetEmailEnabled() {
		return nil
	}
	if c.ContactRecipient == "" {
		return fmt.Errorf("CONTACT_RECIPIENT is required when CONTACT_NOTIFY_MODE is %s", c.ContactNotifyMode)
	}
	if c.EmailFromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	switch c.EmailProvider {
	case EmailProviderBrevo:
		if c.BrevoAPIKey == "" {
			return fmt.Errorf("BREVO_API_KEY is required when EMAIL_PROVIDER is brevo")
		}
	case EmailProviderSMTP:
		if c.SMTPHost == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP_HOST and SMTP_PASSWORD are required when EMAIL_PROVIDER is smtp")
		}
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be %s or %s", EmailProviderSMTP, EmailProviderBrevo)
	}
	if c.ContactDelivery == DeliveryQueued && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when CONTACT_DELIVERY is queued")
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
