package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/rs/zerolog/log"
)

// UpsertWord writes w and every row it owns inside one transaction. A
// no-op if a Word with w.ID already exists, matching the ingestor's
// per-entry idempotent-write requirement.
func (s *Store) UpsertWord(ctx context.Context, w dict.Word) error {
	return withRetry(ctx, func(ctx context.Context) error {
		return s.upsertWordTx(ctx, w)
	})
}

func (s *Store) upsertWordTx(ctx context.Context, w dict.Word) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgstore: begin upsert tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Warn().Err(rollbackErr).Msg("error rolling back upsert tx")
		}
	}()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM words WHERE id = $1)`, w.ID).Scan(&exists); err != nil {
		return fmt.Errorf("pgstore: check existing word: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO words (id, is_common) VALUES ($1, $2)`, w.ID, w.IsCommon); err != nil {
		return fmt.Errorf("pgstore: insert word %d: %w", w.ID, err)
	}

	for _, k := range w.Kanji {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kanjis (word_id, text, is_common) VALUES ($1, $2, $3)`,
			w.ID, k.Text, k.IsCommon); err != nil {
			return fmt.Errorf("pgstore: insert kanji %q for word %d: %w", k.Text, w.ID, err)
		}
	}

	for _, r := range w.Readings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO readings (word_id, text, is_common, no_kanji) VALUES ($1, $2, $3, $4)`,
			w.ID, r.Text, r.IsCommon, r.NoKanji); err != nil {
			return fmt.Errorf("pgstore: insert reading %q for word %d: %w", r.Text, w.ID, err)
		}
	}

	for _, sense := range w.Senses {
		var senseID int64
		var gairaigo *string
		if sense.Gairaigo != nil {
			g := string(*sense.Gairaigo)
			gairaigo = &g
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO senses (word_id, parts_of_speech, fields, dialects, miscs, gairaigo)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			w.ID, toStrings(sense.PartsOfSpeech), toStrings(sense.Fields),
			toStrings(sense.Dialects), toStrings(sense.Miscs), gairaigo,
		).Scan(&senseID)
		if err != nil {
			return fmt.Errorf("pgstore: insert sense for word %d: %w", w.ID, err)
		}

		for _, g := range sense.Glosses {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO glosses (sense_id, text, language, gloss_type) VALUES ($1, $2, $3, $4)`,
				senseID, g.Text, string(g.Language), string(g.GlossType)); err != nil {
				return fmt.Errorf("pgstore: insert gloss %q for word %d: %w", g.Text, w.ID, err)
			}
		}

		for _, ex := range sense.Examples {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO sense_examples (sense_id, source_text, target_text) VALUES ($1, $2, $3)`,
				senseID, ex.SourceText, ex.TargetText); err != nil {
				return fmt.Errorf("pgstore: insert sense example for word %d: %w", w.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("pgstore: commit upsert tx for word %d: %w", w.ID, err)
	}
	return nil
}

func toStrings[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
