// Command wisho-server runs the dictionary search HTTP API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/masmeert/wisho/pkg/applog"
	"github.com/masmeert/wisho/pkg/cli"
	"github.com/masmeert/wisho/pkg/config"
	"github.com/masmeert/wisho/pkg/dict/pgstore"
	"github.com/masmeert/wisho/pkg/httpapi"
	"github.com/masmeert/wisho/pkg/search"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags, err := cli.SetupServerFlags(os.Args[1:])
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := config.Load(*flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := applog.Init(cfg.Log); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	runID := uuid.New()
	log.Info().Stringer("run_id", runID).Msg("starting wisho server")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	weights := search.DefaultWeights()
	if cfg.Weights != (config.WeightsValues{}) {
		weights.Reading = cfg.Weights.Reading
		weights.Kanji = cfg.Weights.Kanji
		weights.ExactReading = cfg.Weights.ExactReading
		weights.ExactKanji = cfg.Weights.ExactKanji
		weights.Length = cfg.Weights.Length
		weights.Common = cfg.Weights.Common
		weights.Gloss = cfg.Weights.Gloss
		weights.ExactWord = cfg.Weights.ExactWord
	}

	store, err := pgstore.Open(ctx, cfg.Postgres.DSN, pgstore.WithWeights(weights))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing store")
		}
	}()

	coordinator := search.NewCoordinator(store)
	handler := httpapi.NewHandler(coordinator)
	router := httpapi.NewRouter(handler, cfg.HTTP.AllowedOrigins)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTP.Port).Msg("listening")
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
