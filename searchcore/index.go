package searchcore

import (
	"fmt"
	"sort"
)

// Index is the inverted index: the dual word->doc->tf and doc->word->tf
// maps, the ordered set of live document ids, and the document metadata
// store. It has no internal locking of its own — per the concurrency model,
// AddDocument/RemoveDocument are exclusive writers that callers must
// serialize against every other operation on the same Index.
type Index struct {
	wordToDocTF map[string]map[int]float64
	docToWordTF map[int]map[string]float64
	docIDs      []int // kept sorted ascending
	docs        map[int]*record
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		wordToDocTF: make(map[string]map[int]float64),
		docToWordTF: make(map[int]map[string]float64),
		docs:        make(map[int]*record),
	}
}

// AddDocument indexes text under id with the given status and ratings.
// The metadata record is stored before the content words are validated, so
// that on failure the record and its entry in the ordered id set are rolled
// back and the two inverted maps are left untouched — the index is
// unchanged on failure.
func (idx *Index) AddDocument(id int, text string, status Status, ratings []int, stopWords map[string]struct{}) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if _, exists := idx.docs[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	idx.docs[id] = &record{
		rating: computeAverageRating(ratings),
		status: status,
		text:   text,
	}
	idx.insertDocID(id)

	var contentWords []string
	for _, w := range SplitIntoWords(text) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		contentWords = append(contentWords, w)
	}

	if len(contentWords) == 0 {
		return nil
	}

	inv := 1.0 / float64(len(contentWords))
	freq := make(map[string]float64, len(contentWords))
	for _, w := range contentWords {
		if !IsValidWord(w) {
			delete(idx.docs, id)
			idx.removeDocID(id)
			return fmt.Errorf("%w: %q", ErrInvalidDocumentWord, w)
		}
		freq[w] += inv
	}

	for w, tf := range freq {
		if idx.wordToDocTF[w] == nil {
			idx.wordToDocTF[w] = make(map[int]float64)
		}
		idx.wordToDocTF[w][id] = tf
	}
	idx.docToWordTF[id] = freq
	return nil
}

// RemoveDocument erases id from both inverted views, the ordered id set,
// and the metadata store. A no-op if id is unknown.
func (idx *Index) RemoveDocument(id int) {
	if _, exists := idx.docs[id]; !exists {
		return
	}
	for w := range idx.docToWordTF[id] {
		if docs, ok := idx.wordToDocTF[w]; ok {
			delete(docs, id)
			if len(docs) == 0 {
				delete(idx.wordToDocTF, w)
			}
		}
	}
	delete(idx.docToWordTF, id)
	delete(idx.docs, id)
	idx.removeDocID(id)
}

// GetWordFrequencies returns the word->tf row for id, or an empty mapping
// if id is unknown or has no content words. Never fails.
func (idx *Index) GetWordFrequencies(id int) map[string]float64 {
	if row, ok := idx.docToWordTF[id]; ok {
		return row
	}
	return map[string]float64{}
}

// DocumentCount returns the number of live documents.
func (idx *Index) DocumentCount() int {
	return len(idx.docs)
}

// IterateIDs returns the live document ids in ascending order.
func (idx *Index) IterateIDs() []int {
	out := make([]int, len(idx.docIDs))
	copy(out, idx.docIDs)
	return out
}

func (idx *Index) doc(id int) (*record, bool) {
	rec, ok := idx.docs[id]
	return rec, ok
}

func (idx *Index) insertDocID(id int) {
	i := sort.SearchInts(idx.docIDs, id)
	idx.docIDs = append(idx.docIDs, 0)
	copy(idx.docIDs[i+1:], idx.docIDs[i:])
	idx.docIDs[i] = id
}

func (idx *Index) removeDocID(id int) {
	i := sort.SearchInts(idx.docIDs, id)
	if i < len(idx.docIDs) && idx.docIDs[i] == id {
		idx.docIDs = append(idx.docIDs[:i], idx.docIDs[i+1:]...)
	}
}
