package models

// Sort directions accepted by the table engine.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// AllCategories is the category-filter sentinel that disables filtering.
const AllCategories = "all"

// PageSize is the fixed number of rows per table page.
const PageSize = 50

// Query captures one immutable table request: the engine never owns or
// mutates view state, callers pass the whole query on every call.
type Query struct {
	Search   string
	Category string
	SortKey  string
	SortDir  string
	Page     int
}

// DefaultQuery returns the initial table state: no filters, source order,
// first page.
func DefaultQuery() Query {
	return Query{Category: AllCategories, SortDir: SortAsc, Page: 1}
}

// Pagination describes the page that a table request produced. Page is
// echoed back unclamped; callers clamp to [1, PageCount] themselves.
type Pagination struct {
	Page      int
	PageCount int
	Total     int
	Showing   int
}

// TableView is one rendered page of the filtered/sorted dataset.
type TableView struct {
	Rows       []*Company
	Pagination Pagination
}
