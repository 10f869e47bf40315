package searchcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAverageRating(t *testing.T) {
	assert.Equal(t, 0, computeAverageRating(nil))
	assert.Equal(t, 2, computeAverageRating([]int{1, 2, 3}))
	assert.Equal(t, -2, computeAverageRating([]int{-1, -2, -3}))
	// truncation toward zero, not toward negative infinity
	assert.Equal(t, -1, computeAverageRating([]int{-1, -2}))
	assert.Equal(t, 1, computeAverageRating([]int{1, 2}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Actual", Actual.String())
	assert.Equal(t, "Irrelevant", Irrelevant.String())
	assert.Equal(t, "Banned", Banned.String())
	assert.Equal(t, "Removed", Removed.String())
}
