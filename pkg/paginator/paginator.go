package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces the maximum page size.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	} else if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset calculates the database offset for the current page.
func (p PaginateQuery) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages calculates the total number of pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format with calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
