package config

import (
	"fmt"
	"testing"
	"time"

	"sms-relay/pkg/env"

	"github.com/go-playground/validator/v10"
)

// ProviderSettings describes how the gateway reaches the SMS provider.
type ProviderSettings struct {
	BaseURL  string        `validate:"required,url"`
	APIKey   string        `validate:"required"`
	SenderID string        `validate:"required"`
	Timeout  time.Duration `validate:"gt=0"`
}

func (p ProviderSettings) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid provider settings: %w", err)
	}
	return nil
}

var (
	AppName            string
	AppListenAddr      string
	GreetingListenAddr string
	LogLevel           string

	Provider ProviderSettings

	// Parallel provider calls per bulk request; 1 keeps dispatch sequential.
	BulkConcurrency int

	OtelEnabled bool
)

func Init() {
	AppName = env.Default("APP_NAME", "sms-gateway")
	AppListenAddr = env.Default("LISTEN_ADDR", ":8080")
	GreetingListenAddr = env.Default("GREETING_LISTEN_ADDR", "0.0.0.0:5000")
	LogLevel = env.Default("LOG_LEVEL", "info")

	BulkConcurrency = env.DefaultInt("BULK_CONCURRENCY", 1)
	if BulkConcurrency < 1 {
		BulkConcurrency = 1
	}

	OtelEnabled = env.DefaultBool("OTEL_ENABLED", false)
}

// InitProvider loads the provider settings. Only the SMS gateway needs them.
func InitProvider() {
	Provider = ProviderSettings{
		BaseURL:  env.Default("INFOBIP_BASE_URL", "https://api.infobip.com"),
		APIKey:   env.RequiredNotEmpty("INFOBIP_API_KEY"),
		SenderID: env.Default("SMS_SENDER_ID", "InfoSMS"),
		Timeout:  env.DefaultDuration("PROVIDER_TIMEOUT", 10*time.Second),
	}
	if err := Provider.Validate(); err != nil && !testing.Testing() {
		panic(err.Error())
	}
}
