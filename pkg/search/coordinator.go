package search

import (
	"context"
	"fmt"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/normalize"
)

// DefaultMaxGlossesPerWord bounds how many glosses Hydrate attaches to each
// result, independent of how many a word actually has.
const DefaultMaxGlossesPerWord = 5

// Coordinator composes normalization, ranking, and hydration into one
// search call. Mirrors original_source's SearchController.search: rank,
// short-circuit on no hits, hydrate, then walk the ranked ids rebuilding
// each ResultRow in rank order.
type Coordinator struct {
	Store             dict.Store
	MaxGlossesPerWord int
}

// NewCoordinator builds a Coordinator with the default gloss cap.
func NewCoordinator(store dict.Store) *Coordinator {
	return &Coordinator{Store: store, MaxGlossesPerWord: DefaultMaxGlossesPerWord}
}

// Search normalizes raw, ranks it, hydrates the top results after applying
// offset/limit, and returns them in descending-score order.
func (c *Coordinator) Search(ctx context.Context, raw string, limit, offset int) ([]dict.ResultRow, error) {
	n, err := normalize.Query(raw)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if limit <= 0 {
		limit = DefaultWeights().QueryLimit
	}

	// The Japanese prefix pipeline ranks against the normalized text, but
	// the English full-text pipeline ranks against the raw query, matching
	// original_source's q_raw parameter for plainto_tsquery — normalization
	// is only used here to classify the query, not to rewrite it.
	rankQuery := raw
	if n.IsJapanese {
		rankQuery = n.Text
	}

	ranked, err := c.Store.Rank(ctx, rankQuery, n.IsJapanese, offset+limit)
	if err != nil {
		return nil, fmt.Errorf("search: rank query %q: %w", rankQuery, err)
	}
	if offset >= len(ranked) {
		return []dict.ResultRow{}, nil
	}
	ranked = ranked[offset:]
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return []dict.ResultRow{}, nil
	}

	ids := make([]int64, len(ranked))
	for i, r := range ranked {
		ids[i] = r.WordID
	}

	maxGlosses := c.MaxGlossesPerWord
	if maxGlosses <= 0 {
		maxGlosses = DefaultMaxGlossesPerWord
	}
	details, err := c.Store.Hydrate(ctx, ids, maxGlosses)
	if err != nil {
		return nil, fmt.Errorf("search: hydrate: %w", err)
	}

	results := make([]dict.ResultRow, 0, len(ranked))
	for _, r := range ranked {
		row, ok := details[r.WordID]
		if !ok {
			row = dict.ResultRow{ID: r.WordID}
		}
		row.Score = r.Score
		results = append(results, row)
	}
	return results, nil
}
