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
	"sms-relay/internal/greeting"
)

func main() {
	config.Init()
	app.Init(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Echo.GET("/", greeting.Handler)

	go func() {
		app.Logger.Info("greeting service listening", "addr", config.GreetingListenAddr)
		if err := app.Echo.Start(config.GreetingListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
