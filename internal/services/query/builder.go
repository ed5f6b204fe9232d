package query

import (
	"errors"
	"strings"
)

// ErrNoKeywords is returned when neither the entity nor the market keyword
// group contains a usable phrase.
var ErrNoKeywords = errors.New("no valid keywords provided for news query")

// BuildQuery constructs the boolean search expression sent to the news
// provider. Each non-empty, trimmed keyword becomes an exact quoted phrase;
// phrases within a group are OR-combined and the entity and market groups are
// AND-combined. An empty entity group falls back to the market group alone.
//
// Output is deterministic for a given keyword order: no sorting, no
// randomization. Callers rely on this for caching and rate-limit reasoning.
func BuildQuery(entityKeywords, marketKeywords []string) (string, error) {
	entityGroup := buildGroup(entityKeywords)
	marketGroup := buildGroup(marketKeywords)

	switch {
	case entityGroup == "" && marketGroup == "":
		return "", ErrNoKeywords
	case entityGroup == "":
		return marketGroup, nil
	case marketGroup == "":
		return entityGroup, nil
	default:
		return entityGroup + " AND " + marketGroup, nil
	}
}

// buildGroup wraps each usable keyword as a quoted phrase and OR-joins them
// inside parentheses. Returns "" when no keyword survives trimming.
func buildGroup(keywords []string) string {
	phrases := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		phrases = append(phrases, `"`+k+`"`)
	}
	if len(phrases) == 0 {
		return ""
	}
	return "(" + strings.Join(phrases, " OR ") + ")"
}
