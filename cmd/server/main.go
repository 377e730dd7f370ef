package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offertracker/internal/config"
	"offertracker/internal/deps"
	"offertracker/internal/http/handlers/middlewares/auth"
	"offertracker/internal/http/server"
	"offertracker/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log := logger.NewLogger("info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := deps.NewDeps(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init dependencies")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	// без валидатора админка принимает только X-Admin-Token
	var adminJWT auth.TokenValidator
	if app.AdminAuth != nil {
		adminJWT = app.AdminAuth
	}

	srv, err := server.NewServer(log, *cfg, app.Tracker, app.Analytics, adminJWT)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
