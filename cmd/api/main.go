package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kalitafoto/backend/internal/config"
	"github.com/kalitafoto/backend/internal/database"
	loggerPkg "github.com/kalitafoto/backend/internal/logger"
	"github.com/kalitafoto/backend/internal/repository"
	"github.com/kalitafoto/backend/internal/router"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// shutdownTimeout bounds how long inflight requests get to finish.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	loggerService, err := loggerPkg.NewLoggerService(cfg)
	if err != nil {
		os.Exit(1)
	}
	log := loggerPkg.New(cfg, loggerService)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB.Pool)
	services := service.NewServices(cfg, repos, srv.Storage)

	srv.SetupHTTPServer(router.New(srv, services))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down cleanly")
		os.Exit(1)
	}

	log.Info().Msg("shutdown complete")
}
