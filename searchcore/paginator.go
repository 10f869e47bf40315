package searchcore

// Page is one fixed-size (except possibly the last) slice of a paginated
// sequence.
type Page[T any] struct {
	items []T
}

// Items returns the page's items.
func (p Page[T]) Items() []T {
	return p.items
}

// Len returns the number of items on the page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// Paginate splits items into successive pages of pageSize, the last page
// possibly shorter. Purely structural; carries no ranking logic. Returns
// nil for a non-positive pageSize.
func Paginate[T any](items []T, pageSize int) []Page[T] {
	if pageSize <= 0 {
		return nil
	}
	pages := make([]Page[T], 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		pages = append(pages, Page[T]{items: items[start:end]})
	}
	return pages
}
