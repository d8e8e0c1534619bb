package jmdict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/masmeert/wisho/pkg/dict"
)

// priorityPrefixes is checked longest-prefix-first so "nf" doesn't shadow
// a token that happens to start with another known prefix.
var priorityPrefixes = []dict.PriorityType{
	dict.PriorityNews,
	dict.PriorityIchi,
	dict.PrioritySpec,
	dict.PriorityGai,
	dict.PriorityNf,
}

// parsePriority parses one "<type><level>" token, e.g. "news1" ->
// {PriorityNews, 1}. Mirrors original_source's Priority.from_string.
func parsePriority(token string) (dict.Priority, error) {
	for _, pt := range priorityPrefixes {
		prefix := string(pt)
		if strings.HasPrefix(token, prefix) {
			levelStr := strings.TrimPrefix(token, prefix)
			level, err := strconv.Atoi(levelStr)
			if err != nil {
				return dict.Priority{}, fmt.Errorf("%w: %q", dict.ErrUnknownPriority, token)
			}
			return dict.Priority{Type: pt, Level: level}, nil
		}
	}
	return dict.Priority{}, fmt.Errorf("%w: %q", dict.ErrUnknownPriority, token)
}

// parsePriorities parses every token, silently dropping ones that don't
// parse — a priority token the parser doesn't recognize shouldn't fail
// the whole entry.
func parsePriorities(tokens []string) []dict.Priority {
	out := make([]dict.Priority, 0, len(tokens))
	for _, tok := range tokens {
		p, err := parsePriority(tok)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
