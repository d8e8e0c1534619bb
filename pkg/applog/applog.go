// Package applog configures the process-wide zerolog logger.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/masmeert/wisho/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init sets up log.Logger to write to a rotating file under cfg.Dir plus
// stderr, with stack traces attached to every logged error.
func Init(cfg config.LogValues, extraWriters ...io.Writer) error {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return fmt.Errorf("applog: create log dir %s: %w", cfg.Dir, err)
	}

	writers := []io.Writer{
		&lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "wisho.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		},
		os.Stderr,
	}
	writers = append(writers, extraWriters...)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	log.Logger = log.Output(io.MultiWriter(writers...)).With().Timestamp().Caller().Logger()
	return nil
}
