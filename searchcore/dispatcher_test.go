package searchcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQueriesPreservesOrder(t *testing.T) {
	s, err := NewSearchServer(nil)
	require.NoError(t, err)
	require.NoError(t, s.AddDocument(1, "cat", Actual, nil))
	require.NoError(t, s.AddDocument(2, "dog", Actual, nil))

	queries := []string{"cat", "dog", "fish", "cat dog"}
	results := s.ProcessQueries(queries)

	require.Len(t, results, len(queries))
	require.Len(t, results[0], 1)
	assert.Equal(t, 1, results[0][0].ID)
	require.Len(t, results[1], 1)
	assert.Equal(t, 2, results[1][0].ID)
	assert.Empty(t, results[2])
	assert.Len(t, results[3], 2)
}

func TestProcessQueriesJoinedConcatenatesInOrder(t *testing.T) {
	s, err := NewSearchServer(nil)
	require.NoError(t, err)
	require.NoError(t, s.AddDocument(1, "cat", Actual, nil))
	require.NoError(t, s.AddDocument(2, "dog", Actual, nil))

	joined := s.ProcessQueriesJoined([]string{"cat", "dog"})
	require.Len(t, joined, 2)
	assert.Equal(t, 1, joined[0].ID)
	assert.Equal(t, 2, joined[1].ID)
}
