package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sms-relay/app"
	"sms-relay/config"
	"sms-relay/internal/model"
	"sms-relay/internal/provider"
	"sms-relay/internal/provider/infobip"
	"sms-relay/testutil"
)

func newServer(t *testing.T) *testutil.FakeProvider {
	t.Helper()
	fake := testutil.SetupAppTest(t)
	provider.Configure(infobip.New(infobip.Config{
		BaseURL:  config.Provider.BaseURL,
		APIKey:   config.Provider.APIKey,
		SenderID: config.Provider.SenderID,
	}, fake.Client()), config.Provider.Timeout)
	registerRoutes(app.Echo)
	return fake
}

func serve(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestRoutesSendSMS(t *testing.T) {
	fake := newServer(t)

	rec := serve(http.MethodPost, "/send-sms", `{"phoneNumber":"+385991234567","message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res model.SendResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil || !res.Success {
		t.Fatalf("unexpected body %s (%v)", rec.Body.String(), err)
	}
	if len(fake.Calls()) != 1 {
		t.Fatalf("expected one provider call")
	}
}

func TestRoutesBulkAlwaysOK(t *testing.T) {
	fake := newServer(t)
	fake.FailFor("+385992222222", http.StatusServiceUnavailable, `{}`)

	rec := serve(http.MethodPost, "/send-bulk-sms", `{"phoneNumbers":["+385991111111","+385992222222"],"message":"x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res model.BulkSendResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total != 2 || res.Successful != 1 || res.Failed != 1 {
		t.Fatalf("unexpected envelope %+v", res)
	}
}

func TestRoutesHealthAndMetrics(t *testing.T) {
	newServer(t)

	first := serve(http.MethodGet, "/health", "")
	second := serve(http.MethodGet, "/health", "")
	if first.Code != http.StatusOK || first.Body.String() != second.Body.String() {
		t.Fatalf("health must be stable: %d %q vs %q", first.Code, first.Body.String(), second.Body.String())
	}
	if !strings.Contains(first.Body.String(), `"status":"OK"`) {
		t.Fatalf("unexpected health body %q", first.Body.String())
	}

	rec := serve(http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Fatalf("metrics not exposed: %d", rec.Code)
	}
}

func TestRoutesSwagger(t *testing.T) {
	newServer(t)

	rec := serve(http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/send-bulk-sms") {
		t.Fatalf("swagger doc missing bulk route")
	}
}
