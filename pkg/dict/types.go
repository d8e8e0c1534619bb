// Package dict defines the dictionary domain model and the storage/ranking
// interfaces implemented by pkg/dict/pgstore.
package dict

// Word is the aggregate root: one JMdict entry. Kanji, Reading, and Sense
// rows are owned by a Word and are only ever created together, inside one
// ingestion transaction; nothing outside pkg/jmdict mutates them after
// creation.
type Word struct {
	ID        int64
	IsCommon  bool
	Kanji     []Kanji
	Readings  []Reading
	Senses    []Sense
}

// Kanji is one headword (k_ele) surface form of a Word.
type Kanji struct {
	ID       int64
	WordID   int64
	Text     string
	IsCommon bool
}

// Reading is one kana reading (r_ele) of a Word.
type Reading struct {
	ID       int64
	WordID   int64
	Text     string
	IsCommon bool
	// NoKanji marks a reading that applies independently of any kanji form
	// (r_ele/reb with a sibling re_nokanji tag).
	NoKanji bool
}

// Sense is one numbered sense (meaning) of a Word.
type Sense struct {
	ID            int64
	WordID        int64
	PartsOfSpeech []PartOfSpeech
	Fields        []Field
	Dialects      []Dialect
	Miscs         []Misc
	Gairaigo      *Gairaigo
	Glosses       []Gloss
	Examples      []SenseExample
}

// Gloss is one translated meaning within a Sense.
type Gloss struct {
	ID        int64
	SenseID   int64
	Text      string
	Language  Language
	GlossType GlossType
}

// SenseExample is one example sentence attached to a Sense. Not part of the
// default hydration payload; see SenseExamples in the Hydrator interface.
type SenseExample struct {
	ID          int64
	SenseID     int64
	SourceText  string
	TargetText  string
}

// ResultRow is one ranked, hydrated search result.
type ResultRow struct {
	ID       int64
	Score    float64
	Kanji    []string
	Readings []string
	Glosses  []string
}

// RankedID is one row of the ranking engine's output: a word id and its
// computed relevance score, in descending-score order.
type RankedID struct {
	WordID int64
	Score  float64
}
