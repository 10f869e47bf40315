package searchcore

import "strings"

// SplitIntoWords splits raw text on ASCII space (0x20) only, collapsing
// runs of spaces and dropping empty tokens. Words are returned in source
// order. Pure function.
func SplitIntoWords(text string) []string {
	fields := strings.Split(text, " ")
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// IsValidWord reports whether w contains no byte with value below 0x20.
func IsValidWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 0x20 {
			return false
		}
	}
	return true
}
