package dict

import "context"

// Ranker computes relevance-ordered word ids for a query. The caller is
// responsible for classifying the query first (pkg/normalize) and passes
// the normalized text for Japanese queries and the raw text otherwise;
// implementations dispatch on isJapanese to choose between the prefix and
// full-text pipelines.
type Ranker interface {
	Rank(ctx context.Context, query string, isJapanese bool, limit int) ([]RankedID, error)
}

// Hydrator fills in display details (kanji, readings, glosses) for a set of
// word ids, in exactly three batched reads regardless of how many ids are
// passed.
type Hydrator interface {
	Hydrate(ctx context.Context, wordIDs []int64, maxGlossesPerWord int) (map[int64]ResultRow, error)
	// SenseExamples returns example sentences grouped by word id. Not part
	// of Hydrate's payload; see SPEC_FULL.md's SUPPLEMENTED FEATURES.
	SenseExamples(ctx context.Context, wordIDs []int64) (map[int64][]SenseExample, error)
}

// Writer persists ingested Word aggregates.
type Writer interface {
	// UpsertWord writes w and all of its owned rows in one transaction. A
	// no-op if a Word with the same ID already exists.
	UpsertWord(ctx context.Context, w Word) error
}

// Store composes the read and write surfaces a complete backend provides.
type Store interface {
	Ranker
	Hydrator
	Writer
}
