package config

import (
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetContactNotifyMode() != NotifyModeLogOnly || cfg.GetEmailEnabled() {
		t.Fatalf("expected log_only with email disabled, got %q", cfg.GetContactNotifyMode())
	}
	if cfg.GetContactDelivery() != DeliveryDirect || cfg.IsQueueEnabled() {
		t.Fatalf("expected direct delivery, got %q", cfg.GetContactDelivery())
	}
	if cfg.GetChatReplyStrategy() != ChatStrategyStatic || cfg.GetChatReplyDelay() != time.Second {
		t.Fatalf("unexpected chat defaults %q %v", cfg.GetChatReplyStrategy(), cfg.GetChatReplyDelay())
	}
	if cfg.GetChatWebhookTimeout() != 30*time.Second {
		t.Fatalf("unexpected webhook timeout %v", cfg.GetChatWebhookTimeout())
	}
	if cfg.GetHTTPAddr() != ":8080" || cfg.GetContactRatePerMinute() != 5 || cfg.GetChatRatePerMinute() != 30 {
		t.Fatalf("unexpected http defaults %+v", cfg)
	}
	if cfg.GetAsynqQueueName() != "contact" || cfg.GetAsynqConcurrency() != 2 {
		t.Fatalf("unexpected queue defaults %q %d", cfg.GetAsynqQueueName(), cfg.GetAsynqConcurrency())
	}
}

func TestFromLookupWildcardOriginAllowsAll(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"CORS_ORIGINS": "https://a.example, *"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatal("expected a wildcard origin to allow all")
	}
	if len(cfg.GetCORSOrigins()) != 2 {
		t.Fatalf("unexpected origins %v", cfg.GetCORSOrigins())
	}
}

func TestFromLookupValidation(t *testing.T) {
	smtpRequired := map[string]string{
		"CONTACT_NOTIFY_MODE": "required",
		"CONTACT_RECIPIENT":   "owner@example.com",
		"EMAIL_FROM_ADDRESS":  "site@example.com",
		"SMTP_HOST":           "smtp.example.com",
		"SMTP_PASSWORD":       "secret",
	}
	with := func(base map[string]string, kv ...string) map[string]string {
		out := make(map[string]string, len(base)+len(kv)/2)
		for k, v := range base {
			out[k] = v
		}
		for i := 0; i+1 < len(kv); i += 2 {
			if kv[i+1] == "" {
				delete(out, kv[i])
				continue
			}
			out[kv[i]] = kv[i+1]
		}
		return out
	}

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "smtp required complete", env: smtpRequired},
		{name: "brevo best effort", env: with(smtpRequired, "CONTACT_NOTIFY_MODE", "best_effort", "EMAIL_PROVIDER", "brevo", "BREVO_API_KEY", "key")},
		{name: "unknown mode", env: map[string]string{"CONTACT_NOTIFY_MODE": "sometimes"}, wantErr: "CONTACT_NOTIFY_MODE"},
		{name: "unknown delivery", env: map[string]string{"CONTACT_DELIVERY": "carrier-pigeon"}, wantErr: "CONTACT_DELIVERY"},
		{name: "missing smtp password", env: with(smtpRequired, "SMTP_PASSWORD", ""), wantErr: "SMTP_PASSWORD"},
		{name: "missing brevo key", env: with(smtpRequired, "EMAIL_PROVIDER", "brevo"), wantErr: "BREVO_API_KEY"},
		{name: "missing recipient", env: with(smtpRequired, "CONTACT_RECIPIENT", ""), wantErr: "CONTACT_RECIPIENT"},
		{name: "missing sender", env: with(smtpRequired, "EMAIL_FROM_ADDRESS", ""), wantErr: "EMAIL_FROM_ADDRESS"},
		{name: "unknown provider", env: with(smtpRequired, "EMAIL_PROVIDER", "fax"), wantErr: "EMAIL_PROVIDER"},
		{name: "queued without redis", env: with(smtpRequired, "CONTACT_DELIVERY", "queued"), wantErr: "REDIS_URL"},
		{name: "queued with redis", env: with(smtpRequired, "CONTACT_DELIVERY", "queued", "REDIS_URL", "redis://localhost:6379/0")},
		{name: "remote chat without url", env: map[string]string{"CHAT_REPLY_STRATEGY": "remote"}, wantErr: "CHAT_WEBHOOK_URL"},
		{name: "remote chat", env: map[string]string{"CHAT_REPLY_STRATEGY": "remote", "CHAT_WEBHOOK_URL": "https://hooks.example/chat"}},
		{name: "timeout without unit", env: map[string]string{"CHAT_WEBHOOK_TIMEOUT": "30"}, wantErr: "CHAT_WEBHOOK_TIMEOUT"},
		{name: "rate limit typo", env: map[string]string{"RATE_LIMIT_CONTACT_PER_MINUTE": "five"}, wantErr: "RATE_LIMIT_CONTACT_PER_MINUTE"},
		{name: "negative smtp port", env: map[string]string{"SMTP_PORT": "-1"}, wantErr: "SMTP_PORT"},
		{name: "zero rate limit disables the limiter", env: map[string]string{"RATE_LIMIT_CHAT_PER_MINUTE": "0"}},
		{name: "wildcard with credentials", env: map[string]string{"CORS_ALLOW_ALL": "true", "CORS_ALLOW_CREDENTIALS": "true"}, wantErr: "CORS_ALLOW_CREDENTIALS"},
		{name: "log only ignores missing credentials", env: map[string]string{"CONTACT_NOTIFY_MODE": "log_only", "EMAIL_PROVIDER": "brevo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
