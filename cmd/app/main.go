package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda/config"
	"agenda/di"
	"agenda/helper"
	"agenda/shared/logger"
	"agenda/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Agenda API
// @version 1.0
// @description Scheduling, waitlist and commission API for a barbershop.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
	}

	helper.AutoMigrate(cfg)

	app := di.InitializeService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Consumer.Start(ctx)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.Otel.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	app.HTTP.Serve()
}
