package searchcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6 — sliding window.
func TestRequestQueueNoResultCount(t *testing.T) {
	s, err := NewSearchServer(nil)
	require.NoError(t, err)
	require.NoError(t, s.AddDocument(1, "cat", Actual, nil))

	q := NewRequestQueue(s)

	for i := 0; i < slidingWindowSize; i++ {
		_, err := q.AddFindRequestActual("dog")
		require.NoError(t, err)
	}
	assert.Equal(t, slidingWindowSize, q.NoResultCount())

	// window is now full: each further push evicts the oldest slot first.
	_, err = q.AddFindRequestActual("cat")
	require.NoError(t, err)
	assert.Equal(t, slidingWindowSize-1, q.NoResultCount())

	_, err = q.AddFindRequestActual("cat")
	require.NoError(t, err)
	assert.Equal(t, slidingWindowSize-2, q.NoResultCount())

	// evicting another empty "dog" slot and replacing it with an empty
	// "dog" result is a net no-op on the counter.
	_, err = q.AddFindRequestActual("dog")
	require.NoError(t, err)
	assert.Equal(t, slidingWindowSize-2, q.NoResultCount())
}

// P6: the counter always equals the number of empty outcomes in the window.
func TestRequestQueueCounterMatchesWindow(t *testing.T) {
	s, err := NewSearchServer(nil)
	require.NoError(t, err)
	require.NoError(t, s.AddDocument(1, "cat", Actual, nil))

	q := NewRequestQueue(s)
	pattern := []string{"cat", "dog", "dog", "cat", "dog", "cat", "cat", "dog"}
	for i := 0; i < 200; i++ {
		_, err := q.AddFindRequestActual(pattern[i%len(pattern)])
		require.NoError(t, err)
	}

	expected := 0
	for i := 0; i < min(200, slidingWindowSize); i++ {
		if pattern[i%len(pattern)] == "dog" {
			expected++
		}
	}
	assert.Equal(t, expected, q.NoResultCount())
}
