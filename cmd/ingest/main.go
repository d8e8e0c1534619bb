// Command wisho-ingest loads a JMdict XML file into the Postgres store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/masmeert/wisho/pkg/applog"
	"github.com/masmeert/wisho/pkg/cli"
	"github.com/masmeert/wisho/pkg/config"
	"github.com/masmeert/wisho/pkg/dict/pgstore"
	"github.com/masmeert/wisho/pkg/jmdict"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags, err := cli.SetupIngestFlags(os.Args[1:])
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
	log.Info().Stringer("run_id", runID).Str("input", *flags.InputPath).Msg("starting jmdict ingestion")

	ctx := context.Background()
	store, err := pgstore.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing store")
		}
	}()

	ingestor := jmdict.NewIngestor(store)
	stats, err := ingestor.Run(ctx, *flags.InputPath)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	log.Info().Int("written", stats.Written).Int("skipped", stats.Skipped).Msg("ingestion complete")
	return nil
}
