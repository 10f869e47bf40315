package searchcore

// slidingWindowSize is the number of most recent request outcomes tracked
// by RequestQueue. Fixed at 1440 ("minutes per day" in the source this was
// ported from) but the engine has no time base of its own — it is a
// request count, not a clock interval.
const slidingWindowSize = 1440

// RequestQueue wraps a SearchServer and tracks, over a sliding window of
// the last slidingWindowSize requests, how many returned no results.
type RequestQueue struct {
	server     *SearchServer
	buf        []bool
	head       int
	size       int
	emptyCount int
}

// NewRequestQueue creates a RequestQueue over server.
func NewRequestQueue(server *SearchServer) *RequestQueue {
	return &RequestQueue{
		server: server,
		buf:    make([]bool, slidingWindowSize),
	}
}

// AddFindRequest runs FindTopDocuments sequentially against predicate and
// records whether it returned no results.
func (q *RequestQueue) AddFindRequest(rawQuery string, predicate Predicate) ([]Result, error) {
	results, err := q.server.FindTopDocuments(rawQuery, predicate, false)
	if err != nil {
		return nil, err
	}
	q.push(len(results) == 0)
	return results, nil
}

// AddFindRequestByStatus is the status-filtered specialisation of
// AddFindRequest.
func (q *RequestQueue) AddFindRequestByStatus(rawQuery string, status Status) ([]Result, error) {
	return q.AddFindRequest(rawQuery, ByStatus(status))
}

// AddFindRequestActual is the default specialisation: filter by
// status == Actual.
func (q *RequestQueue) AddFindRequestActual(rawQuery string) ([]Result, error) {
	return q.AddFindRequestByStatus(rawQuery, Actual)
}

// NoResultCount returns the number of buffered outcomes that were empty.
func (q *RequestQueue) NoResultCount() int {
	return q.emptyCount
}

// push records a new outcome, evicting the oldest once the window is full.
func (q *RequestQueue) push(empty bool) {
	if q.size == slidingWindowSize {
		oldest := q.buf[q.head]
		if oldest {
			q.emptyCount--
		}
		q.buf[q.head] = empty
		q.head = (q.head + 1) % slidingWindowSize
	} else {
		idx := (q.head + q.size) % slidingWindowSize
		q.buf[idx] = empty
		q.size++
	}
	if empty {
		q.emptyCount++
	}
}
