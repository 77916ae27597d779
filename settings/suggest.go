package settings

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// knownKey returns the recognized key equal to k under case-folding.
func knownKey(k string) (string, bool) {
	for _, key := range Keys() {
		if strings.EqualFold(k, key) {
			return key, true
		}
	}

	return "", false
}

// Suggest returns the recognized key that key most likely misspells.
// Keys that are already recognized, ignoring case, return themselves.
// A key matching less than half of every recognized key has no suggestion.
func Suggest(key string) (string, bool) {
	if k, ok := knownKey(key); ok {
		return k, true
	}

	if strings.TrimSpace(key) == "" {
		return "", false
	}

	for _, m := range fuzzy.Find(key, Keys()) {
		// key must account for at least half of the suggestion.
		if minCoverage*len(m.MatchedIndexes) >= utf8.RuneCountInString(m.Str) {
			return m.Str, true
		}
	}

	return "", false
}

const minCoverage = 2
