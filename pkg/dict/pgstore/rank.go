package pgstore

import (
	"context"
	"fmt"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/search"
	"github.com/rs/zerolog/log"
)

// Rank dispatches to the Japanese prefix pipeline or the English full-text
// pipeline based on isJapanese, matching
// original_source's search_and_score_words branch.
func (s *Store) Rank(ctx context.Context, query string, isJapanese bool, limit int) ([]dict.RankedID, error) {
	if query == "" {
		return nil, dict.ErrEmptyQuery
	}

	var (
		rows []dict.RankedID
		err  error
	)
	err = withRetry(ctx, func(ctx context.Context) error {
		var innerErr error
		if isJapanese {
			rows, innerErr = s.rankJapanese(ctx, query, limit)
		} else {
			rows, innerErr = s.rankEnglish(ctx, query, limit)
		}
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) rankJapanese(ctx context.Context, query string, limit int) ([]dict.RankedID, error) {
	sqlQuery := buildJapanesePrefixQuery(s.weights)
	return s.runRankQuery(ctx, sqlQuery, query, s.weights.CandidatesLimit, limit)
}

func (s *Store) rankEnglish(ctx context.Context, query string, limit int) ([]dict.RankedID, error) {
	sqlQuery := buildEnglishFullTextQuery(s.weights)
	return s.runRankQuery(ctx, sqlQuery, query, s.weights.CandidatesLimit, limit)
}

func (s *Store) runRankQuery(ctx context.Context, sqlQuery, query string, candidatesLimit, limit int) ([]dict.RankedID, error) {
	stmt, err := s.db.PrepareContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("pgstore: prepare rank query: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing rank statement")
		}
	}()

	rows, err := stmt.QueryContext(ctx, query, candidatesLimit, limit)
	if err != nil {
		return nil, fmt.Errorf("pgstore: query rank: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing rank rows")
		}
	}()

	var out []dict.RankedID
	for rows.Next() {
		var r dict.RankedID
		if scanErr := rows.Scan(&r.WordID, &r.Score); scanErr != nil {
			return nil, fmt.Errorf("pgstore: scan rank row: %w", scanErr)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: rank rows: %w", err)
	}
	return out, nil
}

// buildJapanesePrefixQuery constructs the Japanese prefix-match ranking
// query. $1 is the normalized query text, $2 the candidate-row cap, $3 the
// result-row cap. Weight constants are embedded as numeric literals (never
// as string-concatenated user input) so one prepared statement serves every
// query length; the single-character adjustment is expressed as a CASE on
// char_length($1), matching original_source's
// _adjust_weight_for_single_char_query. Each branch's score is
// base + (exact bonus, only when is_exact) + length bonus — the base
// weight always applies, matching word.py's
// "base_score + exact_match_score + length_bonus" (never mutually
// exclusive with the exact bonus). Branch scores are summed, not maxed,
// across the reading and kanji branches (word.py's
// func.sum(all_hits.c.branch_score)), so a word matching in both gets
// credit for both.
func buildJapanesePrefixQuery(w search.Weights) string {
	return fmt.Sprintf(`
WITH reading_stats AS (
    SELECT word_id,
           MIN(length(text)) AS min_len,
           bool_or(text = $1) AS is_exact,
           bool_or(is_common) AS any_common
    FROM readings
    WHERE text ILIKE $1 || '%%'
    GROUP BY word_id
    LIMIT $2
),
kanji_stats AS (
    SELECT word_id,
           MIN(length(text)) AS min_len,
           bool_or(text = $1) AS is_exact,
           bool_or(is_common) AS any_common
    FROM kanjis
    WHERE text ILIKE $1 || '%%'
    GROUP BY word_id
    LIMIT $2
),
reading_hits AS (
    SELECT word_id,
           %s
             + (CASE WHEN is_exact THEN %s ELSE 0 END)
             + %s * (1.0 / (1.0 + min_len)) AS score,
           any_common
    FROM reading_stats
),
kanji_hits AS (
    SELECT word_id,
           %s
             + (CASE WHEN is_exact THEN %s ELSE 0 END)
             + %s * (1.0 / (1.0 + min_len)) AS score,
           any_common
    FROM kanji_stats
),
all_hits AS (
    SELECT * FROM reading_hits
    UNION ALL
    SELECT * FROM kanji_hits
),
scored AS (
    SELECT word_id, SUM(score) AS base_score, bool_or(any_common) AS any_common
    FROM all_hits
    GROUP BY word_id
)
SELECT scored.word_id,
       scored.base_score
         + (CASE WHEN words.is_common OR scored.any_common THEN %s ELSE 0 END) AS score
FROM scored
JOIN words ON words.id = scored.word_id
ORDER BY score DESC, scored.word_id ASC
LIMIT $3
`,
		singleCharCase(w.Reading, w.SingleCharBaseMult), singleCharCase(w.ExactReading, w.SingleCharExactMult),
		singleCharCase(w.Length, w.SingleCharLengthMult),
		singleCharCase(w.Kanji, w.SingleCharBaseMult), singleCharCase(w.ExactKanji, w.SingleCharExactMult),
		singleCharCase(w.Length, w.SingleCharLengthMult),
		f(w.Common),
	)
}

// buildEnglishFullTextQuery constructs the English full-text ranking
// query. $1 is the raw (not NFKC-normalized) query text, $2 the
// candidate-row cap, $3 the result-row cap.
func buildEnglishFullTextQuery(w search.Weights) string {
	return fmt.Sprintf(`
WITH gloss_stats AS (
    SELECT senses.word_id,
           MAX(ts_rank_cd(
               to_tsvector('english', coalesce(glosses.text, '')),
               plainto_tsquery('english', $1),
               1 | 16 | 32
           )) AS rank_max,
           bool_or(glosses.text ~* ('\y' || $1 || '\y')) AS exact_any,
           bool_or(senses.word_id IN (
               SELECT word_id FROM readings WHERE is_common
               UNION
               SELECT word_id FROM kanjis WHERE is_common
           )) AS any_common
    FROM glosses
    JOIN senses ON senses.id = glosses.sense_id
    WHERE to_tsvector('english', coalesce(glosses.text, '')) @@ plainto_tsquery('english', $1)
    GROUP BY senses.word_id
    LIMIT $2
)
SELECT gloss_stats.word_id,
       %s * rank_max
         + (CASE WHEN exact_any THEN %s ELSE 0 END)
         + (CASE WHEN words.is_common OR any_common THEN %s ELSE 0 END) AS score
FROM gloss_stats
JOIN words ON words.id = gloss_stats.word_id
ORDER BY score DESC, gloss_stats.word_id ASC
LIMIT $3
`, f(w.Gloss), f(w.ExactWord), f(w.Common))
}

func singleCharCase(weight, singleCharMult float64) string {
	return fmt.Sprintf("(CASE WHEN char_length($1) = 1 THEN %s * %s ELSE %s END)", f(weight), f(singleCharMult), f(weight))
}

func f(v float64) string {
	return fmt.Sprintf("%g", v)
}
