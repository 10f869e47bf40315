package searchcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	pages := Paginate(items, 3)

	require := assert.New(t)
	require.Len(pages, 3)
	require.Equal([]int{1, 2, 3}, pages[0].Items())
	require.Equal([]int{4, 5, 6}, pages[1].Items())
	require.Equal([]int{7}, pages[2].Items())
	require.Equal(1, pages[2].Len())
}

func TestPaginateExactMultiple(t *testing.T) {
	pages := Paginate([]string{"a", "b", "c", "d"}, 2)
	assert.Len(t, pages, 2)
	assert.Equal(t, []string{"a", "b"}, pages[0].Items())
	assert.Equal(t, []string{"c", "d"}, pages[1].Items())
}

func TestPaginateEmpty(t *testing.T) {
	pages := Paginate([]int{}, 3)
	assert.Empty(t, pages)
}

func TestPaginateNonPositivePageSize(t *testing.T) {
	pages := Paginate([]int{1, 2, 3}, 0)
	assert.Nil(t, pages)
}
