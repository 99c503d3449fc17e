package paging

import (
	"sort"
	"strconv"
)

type Pagination struct {
	Offset int
	Limit  int
}

const defaultLimit = 25

// FromQuery reads the 1 based page number from a query value.
func FromQuery(page string, limit int) Pagination {
	p := Pagination{Limit: limit}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if n, err := strconv.Atoi(page); err == nil && n > 1 {
		p.Offset = (n - 1) * p.Limit
	}
	return p
}

func (p Pagination) Page() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

type Page[T any] struct {
	Items      []T
	Total      int
	Pagination Pagination
}

func (p Page[T]) HasPrevious() bool {
	return p.Pagination.Offset > 0
}

func (p Page[T]) HasNext() bool {
	return p.Pagination.Offset+len(p.Items) < p.Total
}

func (p Page[T]) Number() int {
	return p.Pagination.Page()
}

// Apply slices items to the requested window. Out of range offsets return an
// empty page.
func Apply[T any](items []T, pagination Pagination) Page[T] {
	page := Page[T]{Total: len(items), Pagination: pagination}
	if pagination.Limit <= 0 {
		page.Items = items
		return page
	}
	start := pagination.Offset
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		page.Items = []T{}
		return page
	}
	end := start + pagination.Limit
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[start:end]
	return page
}

type Sort struct {
	Ascending bool
}

// SortBy sorts items in place by the key function, keeping equal elements in order.
func SortBy[T any](items []T, s Sort, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if s.Ascending {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}
