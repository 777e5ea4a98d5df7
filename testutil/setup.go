package testutil

import (
	"io"
	"log/slog"
	"testing"

	"sms-relay/app"
	"sms-relay/config"
)

// SetupAppTest starts a FakeProvider, points the provider settings at it and
// initialises config and the app globals with a silent logger.
func SetupAppTest(t *testing.T) *FakeProvider {
	t.Helper()
	fake := NewFakeProvider(t)

	t.Setenv("APP_NAME", "sms-gateway")
	t.Setenv("INFOBIP_BASE_URL", fake.URL)
	t.Setenv("INFOBIP_API_KEY", "test-key")
	t.Setenv("SMS_SENDER_ID", "TestSender")
	t.Setenv("PROVIDER_TIMEOUT", "2s")
	t.Setenv("BULK_CONCURRENCY", "1")
	config.Init()
	config.InitProvider()

	app.Init("error")
	app.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	return fake
}
