package searchcore

import (
	"runtime"
	"sync"
)

// queryJob pairs a query with its slot in the output slice, so a bounded
// worker pool can process queries out of order and still place each
// result back at its input position.
type queryJob struct {
	index int
	query string
}

// ProcessQueries runs every query through FindTopDocumentsActual over a
// fixed pool of runtime.NumCPU() worker goroutines and returns the
// per-query results in input order. A query that fails to parse
// contributes an empty result rather than aborting the batch. Each
// query's own accumulator is sized with the bulk shard count rather than
// the single-query default, since the dispatcher keeps many of these
// accumulators alive concurrently.
func (s *SearchServer) ProcessQueries(queries []string) [][]Result {
	results := make([][]Result, len(queries))
	if len(queries) == 0 {
		return results
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(queries) {
		numWorkers = len(queries)
	}
	jobs := make(chan queryJob, numWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := s.findTopDocumentsActualBulk(job.query)
				if err != nil {
					continue
				}
				results[job.index] = res
			}
		}()
	}

	for i, q := range queries {
		jobs <- queryJob{index: i, query: q}
	}
	close(jobs)
	wg.Wait()
	return results
}

// ProcessQueriesJoined concatenates ProcessQueries' per-query results in
// query order into a single flat slice.
func (s *SearchServer) ProcessQueriesJoined(queries []string) []Result {
	perQuery := s.ProcessQueries(queries)
	total := 0
	for _, r := range perQuery {
		total += len(r)
	}
	joined := make([]Result, 0, total)
	for _, r := range perQuery {
		joined = append(joined, r...)
	}
	return joined
}
