package main

import (
	_ "sms-relay/docs"
	"sms-relay/internal/health"
	"sms-relay/internal/sms"
	"sms-relay/pkg/metrics"

	"github.com/labstack/echo/v4"
	echSwagger "github.com/swaggo/echo-swagger"
)

func registerRoutes(e *echo.Echo) {
	// sms
	e.POST("/send-sms", sms.SendHandler)
	e.POST("/send-bulk-sms", sms.BulkSendHandler)

	e.GET("/health", health.Handler)

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echSwagger.WrapHandler)
}
