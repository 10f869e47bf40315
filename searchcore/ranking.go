package searchcore

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

const (
	maxResultDocumentCount   = 5
	relevanceEpsilon         = 1e-6
	parallelAccumulateChunks = 4
)

// Result is one ranked hit: a document id, its accumulated relevance, and
// its rating, used for the tie-break.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// Predicate filters candidate documents by id, status, and rating during
// ranking.
type Predicate func(id int, status Status, rating int) bool

// ByStatus returns a Predicate that matches documents with exactly status.
func ByStatus(status Status) Predicate {
	return func(_ int, s Status, _ int) bool {
		return s == status
	}
}

// SearchServer composes the query parser, inverted index, and relevance
// accumulator into the ranking pipeline, plus the match operation.
type SearchServer struct {
	stopWords      map[string]struct{}
	index          *Index
	perQueryShards int
	bulkShards     int
	logger         zerolog.Logger
}

// Option configures a SearchServer at construction time.
type Option func(*SearchServer)

// WithLogger sets the logger used for observable side effects such as
// duplicate-detection output. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *SearchServer) { s.logger = logger }
}

// WithShardCounts overrides the per-query and bulk accumulator shard
// counts (defaults: DefaultShardCount, BulkShardCount).
func WithShardCounts(perQuery, bulk int) Option {
	return func(s *SearchServer) {
		s.perQueryShards = perQuery
		s.bulkShards = bulk
	}
}

// NewSearchServer constructs a server over the given stop words. It fails
// with ErrInvalidStopWord if any stop word contains a control character.
func NewSearchServer(stopWords []string, opts ...Option) (*SearchServer, error) {
	unique := make(map[string]struct{})
	for _, w := range stopWords {
		if w == "" {
			continue
		}
		if !IsValidWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStopWord, w)
		}
		unique[w] = struct{}{}
	}
	s := &SearchServer{
		stopWords:      unique,
		index:          NewIndex(),
		perQueryShards: DefaultShardCount,
		bulkShards:     BulkShardCount,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewSearchServerFromText is the single-string specialisation of
// NewSearchServer: the stop words are whatever SplitIntoWords yields from
// stopWordsText.
func NewSearchServerFromText(stopWordsText string, opts ...Option) (*SearchServer, error) {
	return NewSearchServer(SplitIntoWords(stopWordsText), opts...)
}

// AddDocument indexes a new document. See Index.AddDocument.
func (s *SearchServer) AddDocument(id int, text string, status Status, ratings []int) error {
	return s.index.AddDocument(id, text, status, ratings, s.stopWords)
}

// RemoveDocument removes a document. A no-op if id is unknown.
func (s *SearchServer) RemoveDocument(id int) {
	s.index.RemoveDocument(id)
}

// GetWordFrequencies returns id's word->tf row, or an empty mapping.
func (s *SearchServer) GetWordFrequencies(id int) map[string]float64 {
	return s.index.GetWordFrequencies(id)
}

// DocumentCount returns the number of live documents.
func (s *SearchServer) DocumentCount() int {
	return s.index.DocumentCount()
}

// IterateIDs returns the live document ids, ascending.
func (s *SearchServer) IterateIDs() []int {
	return s.index.IterateIDs()
}

// FindTopDocuments parses rawQuery, accumulates relevance for documents
// matching predicate, excludes minus-word hits, and returns at most
// maxResultDocumentCount results sorted by (relevance desc, rating desc).
// If parallel is true, plus-word accumulation is split into exactly 4
// evenly-sized chunks, each non-empty chunk on its own goroutine.
func (s *SearchServer) FindTopDocuments(rawQuery string, predicate Predicate, parallel bool) ([]Result, error) {
	return s.findTopDocuments(rawQuery, predicate, parallel, s.perQueryShards)
}

// findTopDocuments is FindTopDocuments parameterized over the accumulator's
// shard count, so the Bulk Query Dispatcher (which runs many of these
// concurrently) can use the wider bulk shard count instead of the
// single-query default.
func (s *SearchServer) findTopDocuments(rawQuery string, predicate Predicate, parallel bool, shardCount int) ([]Result, error) {
	query, err := ParseQuery(rawQuery, s.stopWords)
	if err != nil {
		return nil, err
	}
	if len(query.PlusWords) == 0 {
		return nil, nil
	}

	acc := NewShardedAccumulator(shardCount)
	if parallel {
		s.accumulateParallel(query.PlusWords, predicate, acc)
	} else {
		s.accumulateSequential(query.PlusWords, predicate, acc)
	}

	relevance := acc.Materialise()
	for _, m := range query.MinusWords {
		for docID := range s.index.wordToDocTF[m] {
			delete(relevance, docID)
		}
	}

	results := make([]Result, 0, len(relevance))
	for id, rel := range relevance {
		rec, ok := s.index.doc(id)
		if !ok {
			continue
		}
		results = append(results, Result{ID: id, Relevance: rel, Rating: rec.rating})
	}
	sortResults(results)
	if len(results) > maxResultDocumentCount {
		results = results[:maxResultDocumentCount]
	}
	return results, nil
}

// FindTopDocumentsByStatus is the status-filtered specialisation of
// FindTopDocuments.
func (s *SearchServer) FindTopDocumentsByStatus(rawQuery string, status Status, parallel bool) ([]Result, error) {
	return s.FindTopDocuments(rawQuery, ByStatus(status), parallel)
}

// FindTopDocumentsActual is the default specialisation: filter by
// status == Actual.
func (s *SearchServer) FindTopDocumentsActual(rawQuery string, parallel bool) ([]Result, error) {
	return s.FindTopDocumentsByStatus(rawQuery, Actual, parallel)
}

// findTopDocumentsActualBulk is FindTopDocumentsActual sized for the Bulk
// Query Dispatcher: every query run under ProcessQueries gets its own
// accumulator, but one drawn with s.bulkShards rather than s.perQueryShards,
// since the dispatcher runs many of these accumulators concurrently and
// each one also fans its own plus-word accumulation out further still.
func (s *SearchServer) findTopDocumentsActualBulk(rawQuery string) ([]Result, error) {
	return s.findTopDocuments(rawQuery, ByStatus(Actual), true, s.bulkShards)
}

func (s *SearchServer) accumulateSequential(words []string, predicate Predicate, acc *ShardedAccumulator) {
	for _, w := range words {
		s.accumulateWord(w, predicate, acc)
	}
}

// accumulateParallel splits words into exactly parallelAccumulateChunks
// evenly-sized chunks (sizes differ by at most one) and joins them before
// returning. Each non-empty chunk runs on its own goroutine.
func (s *SearchServer) accumulateParallel(words []string, predicate Predicate, acc *ShardedAccumulator) {
	var wg sync.WaitGroup
	for i := 0; i < parallelAccumulateChunks; i++ {
		start := i * len(words) / parallelAccumulateChunks
		end := (i + 1) * len(words) / parallelAccumulateChunks
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(chunk []string) {
			defer wg.Done()
			for _, w := range chunk {
				s.accumulateWord(w, predicate, acc)
			}
		}(words[start:end])
	}
	wg.Wait()
}

func (s *SearchServer) accumulateWord(word string, predicate Predicate, acc *ShardedAccumulator) {
	docs, ok := s.index.wordToDocTF[word]
	if !ok {
		return
	}
	idf := math.Log(float64(s.index.DocumentCount()) / float64(len(docs)))
	for docID, tf := range docs {
		rec, ok := s.index.doc(docID)
		if !ok {
			continue
		}
		if predicate(docID, rec.status, rec.rating) {
			acc.AddLocked(docID, tf*idf)
		}
	}
}

// sortResults sorts by relevance descending, with rating descending as the
// tie-break whenever two relevances differ by less than relevanceEpsilon.
// A naive comparator over raw doubles produces a non-total order once
// parallel summation introduces rounding noise; the epsilon band avoids it.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if math.Abs(results[i].Relevance-results[j].Relevance) < relevanceEpsilon {
			return results[i].Rating > results[j].Rating
		}
		return results[i].Relevance > results[j].Relevance
	})
}

// MatchDocument parses rawQuery and, unless a minus-word is present in
// docID's word set, returns the sorted plus-words also present in it,
// along with docID's status. Short-circuits to an empty match on any
// minus-word hit. The sequential variant surfaces an unknown docID only as
// the metadata lookup failure at the end.
func (s *SearchServer) MatchDocument(rawQuery string, docID int) ([]string, Status, error) {
	query, err := ParseQuery(rawQuery, s.stopWords)
	if err != nil {
		return nil, 0, err
	}
	row := s.index.docToWordTF[docID]

	for _, m := range query.MinusWords {
		if _, hit := row[m]; hit {
			rec, ok := s.index.doc(docID)
			if !ok {
				return nil, 0, fmt.Errorf("%w: %d", ErrUnknownDocument, docID)
			}
			return nil, rec.status, nil
		}
	}

	var matched []string
	for _, p := range query.PlusWords {
		if _, hit := row[p]; hit {
			matched = append(matched, p)
		}
	}

	rec, ok := s.index.doc(docID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownDocument, docID)
	}
	return matched, rec.status, nil
}

// MatchDocumentParallel behaves like MatchDocument but checks docID's
// existence up front, failing with ErrUnknownDocument immediately rather
// than after the match is computed.
func (s *SearchServer) MatchDocumentParallel(rawQuery string, docID int) ([]string, Status, error) {
	if _, ok := s.index.doc(docID); !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownDocument, docID)
	}
	return s.MatchDocument(rawQuery, docID)
}
