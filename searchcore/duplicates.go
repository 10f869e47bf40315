package searchcore

import (
	"sort"
	"strings"
)

// RemoveDuplicates finds documents whose word-set (ignoring term
// frequencies) equals that of some earlier document, in ascending id
// order, and removes all but the first occurrence. Each removal is
// reported to the configured logger as a duplicate-document event, and the
// removed ids are returned in removal order.
func (s *SearchServer) RemoveDuplicates() []int {
	seen := make(map[string]int)
	var toRemove []int

	for _, id := range s.index.IterateIDs() {
		row := s.index.docToWordTF[id]
		words := make([]string, 0, len(row))
		for w := range row {
			words = append(words, w)
		}
		sort.Strings(words)
		key := strings.Join(words, "\x00")

		if _, exists := seen[key]; exists {
			toRemove = append(toRemove, id)
		} else {
			seen[key] = id
		}
	}

	for _, id := range toRemove {
		s.logger.Info().Int("id", id).Msgf("Found duplicate document id %d", id)
		s.index.RemoveDocument(id)
	}
	return toRemove
}
