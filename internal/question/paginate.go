package question

import "fmt"

// Paginate returns the page-th slice of size elements from all.
// Pages are 1-based; a page starting at or past the end is ErrNotFound,
// which includes page 1 of an empty list. The last page may be short.
func Paginate[T any](all []T, page, size int) ([]T, error) {
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("page %d of size %d: %w", page, size, ErrNotFound)
	}
	// compare against the page count so huge page numbers cannot overflow start
	pages := (len(all) + size - 1) / size
	if page > pages {
		return nil, fmt.Errorf("page %d of %d: %w", page, pages, ErrNotFound)
	}
	start := (page - 1) * size
	end := min(start+size, len(all))
	return all[start:end], nil
}
