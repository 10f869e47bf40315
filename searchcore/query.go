package searchcore

import (
	"fmt"
	"sort"
	"strings"
)

// Query is the result of classifying the tokens of a raw query string into
// required (plus) and forbidden (minus) words. Both sides are deduplicated
// and sorted ascending, borrowed from the original query string.
type Query struct {
	PlusWords  []string
	MinusWords []string
}

// ParseQuery classifies raw's tokens into plus/minus words, dropping stop
// words silently. It fails with ErrInvalidQueryWord if a minus-marked token
// is empty after stripping the leading '-', begins with a second '-', or
// any token contains a control character.
func ParseQuery(raw string, stopWords map[string]struct{}) (Query, error) {
	var plus, minus []string
	for _, tok := range SplitIntoWords(raw) {
		word := tok
		isMinus := false
		if strings.HasPrefix(tok, "-") {
			isMinus = true
			word = tok[1:]
			if word == "" || strings.HasPrefix(word, "-") {
				return Query{}, fmt.Errorf("%w: %q", ErrInvalidQueryWord, tok)
			}
		}
		if !IsValidWord(word) {
			return Query{}, fmt.Errorf("%w: %q", ErrInvalidQueryWord, tok)
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if isMinus {
			minus = append(minus, word)
		} else {
			plus = append(plus, word)
		}
	}
	return Query{
		PlusWords:  sortUnique(plus),
		MinusWords: sortUnique(minus),
	}, nil
}

// sortUnique sorts words ascending and removes adjacent duplicates.
func sortUnique(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
