package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestStartAndFail(t *testing.T) {
	rec := withRecorder(t)

	_, span := Start(context.Background(), "unit", Attr("k", "v"), IntAttr("n", 2))
	Fail(span, errors.New("broken"))
	Fail(span, nil)
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "unit" {
		t.Fatalf("unexpected span name %q", ended[0].Name())
	}
	if ended[0].Status().Code != codes.Error {
		t.Fatalf("expected error status, got %v", ended[0].Status())
	}
}

func TestEchoMiddlewareOpensServerSpan(t *testing.T) {
	rec := withRecorder(t)

	e := echo.New()
	e.Use(EchoMiddleware())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "GET /health" {
		t.Fatalf("unexpected span name %q", ended[0].Name())
	}
}
