// Package search dispatches ranking to the appropriate pipeline and
// coordinates ranking with detail hydration.
package search

// Weights holds every tunable constant used by the ranking formulas.
// Threading these through an explicit struct (rather than package-level
// vars read directly by the SQL builder) keeps the query builder free of
// hidden global state, so weight tuning or A/B experiments never require
// touching pkg/dict/pgstore's SQL.
type Weights struct {
	Reading      float64
	Kanji        float64
	ExactReading float64
	ExactKanji   float64
	Length       float64
	Common       float64
	Gloss        float64
	ExactWord    float64

	SingleCharBaseMult   float64
	SingleCharExactMult  float64
	SingleCharLengthMult float64

	QueryLimit      int
	CandidatesLimit int
}

// DefaultWeights returns the constants matching the original scoring
// design (original_source/src/wisho/repositories/word.py).
func DefaultWeights() Weights {
	return Weights{
		Reading:      5.0,
		Kanji:        5.0,
		ExactReading: 6.0,
		ExactKanji:   6.0,
		Length:       2.0,
		Common:       1.0,
		Gloss:        2.0,
		ExactWord:    1.5,

		SingleCharBaseMult:   0.5,
		SingleCharExactMult:  1.75,
		SingleCharLengthMult: 1.25,

		QueryLimit:      20,
		CandidatesLimit: 200,
	}
}
