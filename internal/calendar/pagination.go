package calendar

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps page*pageSize inside int32 for every page size.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Page is one page of items plus navigation metadata.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"` // 1-based
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"`
}

// NormalizePage applies defaults to out of range paging input. Pages past MaxPage are clamped
// to it; they are empty for any list the store can hold.
func NormalizePage(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return page, pageSize
}

// Offset returns the row offset of page for a store query.
func Offset(page, pageSize int) int {
	page, pageSize = NormalizePage(page, pageSize)
	return (page - 1) * pageSize
}

// Paginate slices an in-memory list.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	page, pageSize = NormalizePage(page, pageSize)
	total := len(items)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := items[start:end]
	if out == nil {
		out = []T{}
	}
	return Page[T]{
		Items:    out,
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}

// NewPage wraps a page already sliced by the store.
func NewPage[T any](items []T, total int64, page, pageSize int) Page[T] {
	page, pageSize = NormalizePage(page, pageSize)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(page*pageSize) < total,
		HasPrev:  page > 1,
		Total:    int(total),
	}
}
