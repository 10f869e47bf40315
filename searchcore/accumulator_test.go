package searchcore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardedAccumulatorAddLocked(t *testing.T) {
	acc := NewShardedAccumulator(4)
	acc.AddLocked(10, 1.5)
	acc.AddLocked(10, 2.5)
	acc.AddLocked(11, 1.0)

	merged := acc.Materialise()
	assert.InDelta(t, 4.0, merged[10], 1e-9)
	assert.InDelta(t, 1.0, merged[11], 1e-9)
}

func TestShardedAccumulatorConcurrentAccess(t *testing.T) {
	acc := NewShardedAccumulator(8)
	const writers = 50
	const perWriter = 200

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				acc.AddLocked(42, 1.0)
			}
		}()
	}
	wg.Wait()

	merged := acc.Materialise()
	assert.InDelta(t, float64(writers*perWriter), merged[42], 1e-9)
}

func TestShardedAccumulatorAccessScope(t *testing.T) {
	acc := NewShardedAccumulator(2)
	ac := acc.Access(5)
	ac.Add(3.0)
	assert.Equal(t, 3.0, ac.Value())
	ac.Unlock()

	merged := acc.Materialise()
	assert.Equal(t, 3.0, merged[5])
}

func TestShardIndexIsStable(t *testing.T) {
	assert.Equal(t, shardIndex(10, 8), shardIndex(10, 8))
	assert.GreaterOrEqual(t, shardIndex(-5, 8), 0)
}
