package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sms-relay/app"
	"sms-relay/config"
	"sms-relay/internal/provider"
	"sms-relay/internal/provider/infobip"
	"sms-relay/pkg/tracing"
)

// @title           SMS Gateway API
// @version         1.0
// @description     Thin REST wrapper that forwards SMS sends to the provider.
// @host            localhost:8080
// @BasePath        /
func main() {
	config.Init()
	config.InitProvider()
	app.Init(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.OtelEnabled {
		shutdown, err := tracing.Init(ctx, config.AppName)
		if err != nil {
			panic(err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				app.Logger.Error("tracer shutdown", "err", err)
			}
		}()
	}

	provider.Configure(infobip.New(infobip.Config{
		BaseURL:  config.Provider.BaseURL,
		APIKey:   config.Provider.APIKey,
		SenderID: config.Provider.SenderID,
	}, &http.Client{}), config.Provider.Timeout)

	registerRoutes(app.Echo)

	go func() {
		app.Logger.Info("sms gateway listening", "addr", config.AppListenAddr)
		if err := app.Echo.Start(config.AppListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Echo.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("echo shutdown", "err", err)
	}
}
