// Package normalize prepares raw search queries for the ranking engine:
// Unicode normalization, whitespace trimming, and Japanese-script
// classification.
package normalize

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyQuery is returned when a query normalizes to the empty string.
var ErrEmptyQuery = errors.New("normalize: empty query")

// Result is the outcome of normalizing a raw query string.
type Result struct {
	Text       string
	IsJapanese bool
}

// Query normalizes raw, classifies it as Japanese or Latin-script, and
// returns ErrEmptyQuery if nothing is left after trimming.
func Query(raw string) (Result, error) {
	text := norm.NFKC.String(raw)
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyQuery
	}
	return Result{Text: text, IsJapanese: IsJapaneseText(text)}, nil
}

// IsJapaneseText reports whether s contains at least one rune from the
// hiragana, katakana, or CJK unified ideograph ranges.
func IsJapaneseText(s string) bool {
	for _, r := range s {
		if isHiraganaOrKatakana(r) || isCJK(r) {
			return true
		}
	}
	return false
}

func isHiraganaOrKatakana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}

func isCJK(r rune) bool {
	return (r >= 0x3400 && r <= 0x4DBF) || (r >= 0x4E00 && r <= 0x9FFF)
}
