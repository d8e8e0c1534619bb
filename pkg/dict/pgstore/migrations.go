package pgstore

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var migrationMutex sync.Mutex

type gooseZerologAdapter struct{}

func (*gooseZerologAdapter) Printf(format string, v ...any) { log.Info().Msgf(format, v...) }
func (*gooseZerologAdapter) Fatalf(format string, v ...any) { log.Fatal().Msgf(format, v...) }

// MigrateUp applies every pending migration under migrations/ against db.
func MigrateUp(db *sql.DB) error {
	migrationMutex.Lock()
	defer migrationMutex.Unlock()

	goose.SetLogger(&gooseZerologAdapter{})
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("error running migrations up: %w", err)
	}
	return nil
}
