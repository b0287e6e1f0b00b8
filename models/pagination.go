package models

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 6
	MaxLimit     int64 = 100
	// MaxPage keeps (page-1)*limit far from int64 overflow. Pages past the
	// data are simply empty.
	MaxPage int64 = 1_000_000_000
)

// Page is an offset/limit window over a newest-first listing.
type Page struct {
	Page  int64
	Limit int64
}

// NewPage normalizes caller-supplied values: non-positive values fall back
// to the defaults, the page is capped at MaxPage and the limit at MaxLimit.
func NewPage(page, limit int64) Page {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// Skip is the number of documents before this page. It is never negative,
// even for a Page built without NewPage.
func (p Page) Skip() int64 {
	n := NewPage(p.Page, p.Limit)
	return (n.Page - 1) * n.Limit
}

// PageResult is one page of items plus the total number of matching
// documents before pagination.
type PageResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// NewPageResult never returns a nil Items slice so the JSON is always an array.
func NewPageResult[T any](items []T, total int64, p Page) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit}
}
