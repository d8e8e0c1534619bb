package dict

import "errors"

// Sentinel error kinds returned across package boundaries. Callers should
// use errors.Is against these; wrapped context is added with fmt.Errorf's
// %w at each call site.
var (
	// ErrEmptyQuery is returned when a search query normalizes to nothing.
	ErrEmptyQuery = errors.New("dict: empty query")
	// ErrMalformedEntry is returned when a JMdict entry cannot be parsed
	// into a Word (missing ent_seq, unreadable structure). Ingestion logs
	// the entry and continues; it does not abort the run.
	ErrMalformedEntry = errors.New("dict: malformed entry")
	// ErrUnknownPriority is returned when a priority token does not match
	// any known PriorityType prefix.
	ErrUnknownPriority = errors.New("dict: unknown priority token")
	// ErrStorageFailure wraps a persistence-layer error after retry.
	ErrStorageFailure = errors.New("dict: storage failure")
)
