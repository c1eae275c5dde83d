package config

import (
	"os"
	"time"
)

// WebhookConfig points at the external workflow endpoint that turns a
// submitted selection into a real purchase order. Credentials come from the
// deployment environment, never from code.
type WebhookConfig struct {
	BaseURL string
	// BasicToken, when set, is sent as "Authorization: Basic <token>".
	BasicToken string
	// One optional custom header pair, e.g. an API-key header the workflow
	// engine expects.
	HeaderName  string
	HeaderValue string
	Timeout     time.Duration
}

func LoadWebhookConfig() WebhookConfig {
	cfg := WebhookConfig{
		BaseURL:     os.Getenv("WEBHOOK_BASE_URL"),
		BasicToken:  os.Getenv("WEBHOOK_BASIC_TOKEN"),
		HeaderName:  os.Getenv("WEBHOOK_HEADER_NAME"),
		HeaderValue: os.Getenv("WEBHOOK_HEADER_VALUE"),
		Timeout:     30 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5678/webhook"
	}
	if t := os.Getenv("WEBHOOK_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}
