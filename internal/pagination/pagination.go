// Package pagination slices an ordered collection into 1-indexed pages.
//
// Count and slice are read by two separate calls; under concurrent writes the
// window may disagree with the slice by the writes that landed in between.
package pagination

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidPageSize = errors.New("page size must be at least 1")

// Window is the navigation metadata of one page.
type Window struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalEntries int64 `json:"totalEntries"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// Source is an ordered collection that can be counted and sliced.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Slice(ctx context.Context, skip, limit int) ([]T, error)
}

// NormalizePage clamps pages below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Skip is the offset of the first element of page.
func Skip(page, pageSize int) int {
	return (page - 1) * pageSize
}

// NewWindow computes the metadata for page. It does not clamp page.
func NewWindow(page, pageSize int, total int64) Window {
	size := int64(pageSize)
	totalPages := int((total + size - 1) / size)

	return Window{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalEntries: total,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}

// Paginate returns the requested page of src. A page past the end yields an
// empty slice and a window with HasNext false.
func Paginate[T any](ctx context.Context, src Source[T], page, pageSize int) ([]T, Window, error) {
	if pageSize < 1 {
		return nil, Window{}, ErrInvalidPageSize
	}
	page = NormalizePage(page)

	total, err := src.Count(ctx)
	if err != nil {
		return nil, Window{}, fmt.Errorf("count: %w", err)
	}

	window := NewWindow(page, pageSize, total)
	skip := Skip(page, pageSize)
	if int64(skip) >= total {
		return []T{}, window, nil
	}

	items, err := src.Slice(ctx, skip, pageSize)
	if err != nil {
		return nil, Window{}, fmt.Errorf("slice: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	return items, window, nil
}
