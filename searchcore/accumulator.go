package searchcore

import "sync"

// Default shard counts for the lock-striped accumulator: 8 for a single
// query's own working state, 400 for each query run by the bulk dispatcher,
// which keeps many such per-query accumulators alive at once.
const (
	DefaultShardCount = 8
	BulkShardCount    = 400
)

type shard struct {
	mu     sync.Mutex
	values map[int]float64
}

// ShardedAccumulator is a lock-striped map from document id to an
// accumulating relevance score. Grounded on the source's ConcurrentMap:
// a fixed number of shards, each owning its own mutex and key->value
// sub-mapping, so that mutations to keys in different shards proceed
// without contention.
type ShardedAccumulator struct {
	shards []shard
}

// NewShardedAccumulator creates an accumulator with shardCount shards.
func NewShardedAccumulator(shardCount int) *ShardedAccumulator {
	if shardCount < 1 {
		shardCount = 1
	}
	a := &ShardedAccumulator{shards: make([]shard, shardCount)}
	for i := range a.shards {
		a.shards[i].values = make(map[int]float64)
	}
	return a
}

func shardIndex(key, n int) int {
	if key < 0 {
		key = -key
	}
	return key % n
}

// Access is a scoped reference to one key's value slot, held together with
// its shard lock. Callers must call Unlock when done, typically via defer.
type Access struct {
	shard *shard
	key   int
}

// Access acquires the shard lock for key and returns a scoped reference to
// its value slot, inserting a zero if absent.
func (a *ShardedAccumulator) Access(key int) *Access {
	s := &a.shards[shardIndex(key, len(a.shards))]
	s.mu.Lock()
	if _, ok := s.values[key]; !ok {
		s.values[key] = 0
	}
	return &Access{shard: s, key: key}
}

// Add adds delta to the accessed slot.
func (ac *Access) Add(delta float64) {
	ac.shard.values[ac.key] += delta
}

// Value returns the current value of the accessed slot.
func (ac *Access) Value() float64 {
	return ac.shard.values[ac.key]
}

// Unlock releases the shard lock. Must be called exactly once per Access.
func (ac *Access) Unlock() {
	ac.shard.mu.Unlock()
}

// AddLocked is a convenience wrapper around Access/Add/Unlock for the
// common case of a single delta contribution.
func (a *ShardedAccumulator) AddLocked(key int, delta float64) {
	ac := a.Access(key)
	ac.Add(delta)
	ac.Unlock()
}

// Materialise acquires each shard lock in turn, merges all shards into a
// single map, and returns it. The result is a plain Go map: it is not
// ordered by key or by insertion. Must not be called concurrently with any
// Access on the same accumulator.
func (a *ShardedAccumulator) Materialise() map[int]float64 {
	out := make(map[int]float64)
	for i := range a.shards {
		a.shards[i].mu.Lock()
		for k, v := range a.shards[i].values {
			out[k] = v
		}
		a.shards[i].mu.Unlock()
	}
	return out
}
