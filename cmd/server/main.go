package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/router"
	"github.com/kashguard/go-docsig/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.DefaultServiceConfigFromEnv()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.Logger.Level)
	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter())
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// verify database connectivity only when the audit store actually uses it
	if cfg.Docsig.EnableAuditStore {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.DB.PingContext(ctx); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("Failed to ping database")
		}
		cancel()
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("errors", errs).Msg("Failed to gracefully shut down server")
	}
}
