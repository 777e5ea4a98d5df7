package app

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"sms-relay/pkg/metrics"
	"sms-relay/pkg/tracing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	Echo   *echo.Echo
	Logger *slog.Logger
)

func Init(logLevel string) {
	initLogger(logLevel)
	initEcho()
}

func initLogger(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initEcho() {
	Echo = NewEcho()
}

// NewEcho returns an echo instance with the middleware chain shared by both services.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(tracing.EchoMiddleware())
	e.Use(metrics.EchoMiddleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := Logger
			if logger == nil {
				logger = slog.Default()
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
				logger.LogAttrs(context.Background(), slog.LevelError, "request", attrs...)
				return nil
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))

	return e
}
