package pgstore

import (
	"context"
	"fmt"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/rs/zerolog/log"
)

// Hydrate performs exactly three batched reads — readings, kanji, then
// glosses — keyed by word_id = ANY($1), and assembles one ResultRow per
// input id. Glosses are capped client-side at maxGlossesPerWord after a
// server-side LIMIT of len(wordIDs)*maxGlossesPerWord*2, matching
// original_source's fetch_word_details safety bound.
func (s *Store) Hydrate(ctx context.Context, wordIDs []int64, maxGlossesPerWord int) (map[int64]dict.ResultRow, error) {
	if len(wordIDs) == 0 {
		return map[int64]dict.ResultRow{}, nil
	}

	rows := make(map[int64]dict.ResultRow, len(wordIDs))
	for _, id := range wordIDs {
		rows[id] = dict.ResultRow{ID: id}
	}

	if err := withRetry(ctx, func(ctx context.Context) error {
		readings, err := s.batchReadings(ctx, wordIDs)
		if err != nil {
			return err
		}
		for id, texts := range readings {
			r := rows[id]
			r.Readings = texts
			rows[id] = r
		}

		kanjis, err := s.batchKanjis(ctx, wordIDs)
		if err != nil {
			return err
		}
		for id, texts := range kanjis {
			r := rows[id]
			r.Kanji = texts
			rows[id] = r
		}

		glosses, err := s.batchGlosses(ctx, wordIDs, maxGlossesPerWord)
		if err != nil {
			return err
		}
		for id, texts := range glosses {
			r := rows[id]
			r.Glosses = texts
			rows[id] = r
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *Store) batchReadings(ctx context.Context, wordIDs []int64) (map[int64][]string, error) {
	const q = `
SELECT word_id, array_agg(DISTINCT text) AS texts
FROM readings
WHERE word_id = ANY($1)
GROUP BY word_id
`
	return s.batchTextsByWordID(ctx, q, wordIDs)
}

func (s *Store) batchKanjis(ctx context.Context, wordIDs []int64) (map[int64][]string, error) {
	const q = `
SELECT word_id, array_agg(DISTINCT text) AS texts
FROM kanjis
WHERE word_id = ANY($1)
GROUP BY word_id
`
	return s.batchTextsByWordID(ctx, q, wordIDs)
}

func (s *Store) batchTextsByWordID(ctx context.Context, query string, wordIDs []int64) (map[int64][]string, error) {
	rows, err := s.db.QueryContext(ctx, query, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("pgstore: batch read: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing batch read rows")
		}
	}()

	out := make(map[int64][]string)
	for rows.Next() {
		var wordID int64
		var texts []string
		if scanErr := rows.Scan(&wordID, &texts); scanErr != nil {
			return nil, fmt.Errorf("pgstore: scan batch read row: %w", scanErr)
		}
		out[wordID] = texts
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: batch read rows: %w", err)
	}
	return out, nil
}

// batchGlosses reads a server-side-bounded set of glosses per word, then
// truncates client-side to maxGlossesPerWord, preserving gloss order within
// each word.
func (s *Store) batchGlosses(ctx context.Context, wordIDs []int64, maxGlossesPerWord int) (map[int64][]string, error) {
	const q = `
SELECT senses.word_id, glosses.text
FROM glosses
JOIN senses ON senses.id = glosses.sense_id
WHERE senses.word_id = ANY($1)
ORDER BY senses.word_id, senses.id, glosses.id
LIMIT $2
`
	safetyBound := len(wordIDs) * maxGlossesPerWord * 2
	rows, err := s.db.QueryContext(ctx, q, wordIDs, safetyBound)
	if err != nil {
		return nil, fmt.Errorf("pgstore: batch gloss read: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing batch gloss rows")
		}
	}()

	out := make(map[int64][]string)
	for rows.Next() {
		var wordID int64
		var text string
		if scanErr := rows.Scan(&wordID, &text); scanErr != nil {
			return nil, fmt.Errorf("pgstore: scan batch gloss row: %w", scanErr)
		}
		if len(out[wordID]) >= maxGlossesPerWord {
			continue
		}
		out[wordID] = append(out[wordID], text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: batch gloss rows: %w", err)
	}
	return out, nil
}

// SenseExamples returns example sentences grouped by word id, read
// independently of Hydrate.
func (s *Store) SenseExamples(ctx context.Context, wordIDs []int64) (map[int64][]dict.SenseExample, error) {
	if len(wordIDs) == 0 {
		return map[int64][]dict.SenseExample{}, nil
	}
	const q = `
SELECT senses.word_id, sense_examples.id, sense_examples.sense_id,
       sense_examples.source_text, sense_examples.target_text
FROM sense_examples
JOIN senses ON senses.id = sense_examples.sense_id
WHERE senses.word_id = ANY($1)
ORDER BY senses.word_id, sense_examples.id
`
	var out map[int64][]dict.SenseExample
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := s.db.QueryContext(ctx, q, wordIDs)
		if queryErr != nil {
			return fmt.Errorf("pgstore: sense examples: %w", queryErr)
		}
		defer func() {
			if closeErr := rows.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("error closing sense example rows")
			}
		}()

		out = make(map[int64][]dict.SenseExample)
		for rows.Next() {
			var wordID int64
			var ex dict.SenseExample
			if scanErr := rows.Scan(&wordID, &ex.ID, &ex.SenseID, &ex.SourceText, &ex.TargetText); scanErr != nil {
				return fmt.Errorf("pgstore: scan sense example row: %w", scanErr)
			}
			out[wordID] = append(out[wordID], ex)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("pgstore: sense example rows: %w", rowsErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
