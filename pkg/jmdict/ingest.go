package jmdict

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/masmeert/wisho/pkg/dict"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Stats summarizes one ingestion run.
type Stats struct {
	Written int
	Skipped int
}

// Ingestor streams a JMdict XML file and writes each entry through a
// dict.Writer, skipping malformed entries and continuing the run.
type Ingestor struct {
	FS     afero.Fs
	Writer dict.Writer
	Clock  clockwork.Clock
}

// NewIngestor builds an Ingestor with the real OS filesystem and clock.
func NewIngestor(writer dict.Writer) *Ingestor {
	return &Ingestor{
		FS:     afero.NewOsFs(),
		Writer: writer,
		Clock:  clockwork.NewRealClock(),
	}
}

// Run streams the JMdict file at path, upserting each well-formed entry.
// A malformed entry is logged and skipped; the run continues. Run returns
// an error only when the file cannot be opened or read, or when ctx is
// cancelled mid-run.
func (ing *Ingestor) Run(ctx context.Context, path string) (Stats, error) {
	f, err := ing.FS.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("jmdict: open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing jmdict source file")
		}
	}()

	started := ing.Clock.Now()
	stats, err := ing.runDecoder(ctx, f)
	log.Info().
		Int("written", stats.Written).
		Int("skipped", stats.Skipped).
		Dur("elapsed", ing.Clock.Since(started)).
		Msg("jmdict ingestion run complete")
	return stats, err
}

func (ing *Ingestor) runDecoder(ctx context.Context, r io.Reader) (Stats, error) {
	d := xml.NewDecoder(r)
	d.Entity = entityMap
	d.Strict = false

	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("jmdict: %w", err)
		}

		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("jmdict: read token: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var raw xmlEntry
		if err := d.DecodeElement(&raw, &se); err != nil {
			log.Warn().Err(err).Msg("skipping malformed jmdict entry")
			stats.Skipped++
			continue
		}

		word, err := toWord(raw)
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed jmdict entry")
			stats.Skipped++
			continue
		}

		if err := ing.Writer.UpsertWord(ctx, word); err != nil {
			log.Warn().Err(err).Int64("word_id", word.ID).Msg("skipping entry that failed to write")
			stats.Skipped++
			continue
		}
		stats.Written++
	}
	return stats, nil
}
