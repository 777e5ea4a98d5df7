package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"sms-relay/app"
	"sms-relay/internal/provider/infobip"
)

type stubSender struct {
	calls int
	data  any
	err   error
	wait  time.Duration
}

func (s *stubSender) Name() string { return "stub" }

func (s *stubSender) Send(ctx context.Context, to, text string) (any, error) {
	s.calls++
	if s.wait > 0 {
		select {
		case <-time.After(s.wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.data, s.err
}

func initTestLogger(t *testing.T) {
	t.Helper()
	app.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func useSender(t *testing.T, s Sender, timeout time.Duration) {
	t.Helper()
	prevSender, prevTimeout := sender, sendTimeout
	Configure(s, timeout)
	t.Cleanup(func() { sender, sendTimeout = prevSender, prevTimeout })
}

func TestDispatchSuccess(t *testing.T) {
	initTestLogger(t)
	stub := &stubSender{data: map[string]any{"bulkId": "b"}}
	useSender(t, stub, time.Second)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	if !res.Success || res.Message != "SMS sent successfully" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Data.(map[string]any)["bulkId"] != "b" {
		t.Fatalf("provider data not propagated: %+v", res.Data)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", stub.calls)
	}
}

func TestDispatchProviderHTTPError(t *testing.T) {
	initTestLogger(t)
	stub := &stubSender{err: &infobip.HTTPError{StatusCode: 400, Body: map[string]any{"requestError": "x"}}}
	useSender(t, stub, time.Second)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "HTTP error: 400" {
		t.Fatalf("unexpected error %q", res.Error)
	}
	if res.Details.(map[string]any)["requestError"] != "x" {
		t.Fatalf("details not propagated: %+v", res.Details)
	}
	if stub.calls != 1 {
		t.Fatalf("expected no retries, got %d calls", stub.calls)
	}
}

func TestDispatchProviderHTTPErrorWithoutBody(t *testing.T) {
	initTestLogger(t)
	useSender(t, &stubSender{err: &infobip.HTTPError{StatusCode: 503}}, time.Second)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	details, ok := res.Details.(map[string]any)
	if !ok || len(details) != 0 {
		t.Fatalf("expected empty details, got %#v", res.Details)
	}
}

func TestDispatchTransportError(t *testing.T) {
	initTestLogger(t)
	useSender(t, &stubSender{err: errors.New("connection refused")}, time.Second)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	if res.Success || res.Error != "send failure: connection refused" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDispatchTimeout(t *testing.T) {
	initTestLogger(t)
	useSender(t, &stubSender{wait: time.Second}, 20*time.Millisecond)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	if res.Success || !strings.HasPrefix(res.Error, "send failure: ") {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains(res.Error, context.DeadlineExceeded.Error()) {
		t.Fatalf("expected deadline in error, got %q", res.Error)
	}
}

func TestDispatchWithoutSender(t *testing.T) {
	initTestLogger(t)
	useSender(t, nil, 0)

	res := Dispatch(context.Background(), "+385991234567", "hi")
	if res.Success {
		t.Fatalf("expected failure without sender")
	}
}
