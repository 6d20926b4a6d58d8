package entity

import "math"

// PageSize is the fixed number of offers per list page.
const PageSize = 10

// SortOrder is the price ordering requested by a list query.
type SortOrder string

const (
	// SortNone keeps creation order.
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// Valid reports whether s is a known ordering.
func (s SortOrder) Valid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// ListQuery combines the optional criteria of an offer list request.
// PriceMin and PriceMax are independent bounds and both apply when set.
type ListQuery struct {
	Title    string
	PriceMin *float64
	PriceMax *float64
	Sort     SortOrder
	// Page is 1-based; values below 1 mean the first page.
	Page int
}

// Skip returns how many matching offers precede the requested page.
// Pages too large to address saturate at math.MaxInt.
func (q ListQuery) Skip() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/PageSize {
		return math.MaxInt
	}
	return (page - 1) * PageSize
}
