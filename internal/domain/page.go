package domain

// MaxPageLimit is the largest page size a caller may request.
const MaxPageLimit = 100

// ListDefaults holds the fallback page/limit applied when a caller omits
// them. Passed into the service at construction time rather than read from
// package-level state.
type ListDefaults struct {
	Page  int
	Limit int
}

// PageRequest carries the resolved page window for a list call.
// Page is zero-based; Skip() gives the number of records to pass over.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest resolves optional caller-supplied page/limit values
// against the configured defaults. Nil pointers fall back to d; the
// values themselves are range-checked later by the service.
func NewPageRequest(page, limit *int, d ListDefaults) PageRequest {
	p := PageRequest{Page: d.Page, Limit: d.Limit}
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	return p
}

// Skip returns the number of records preceding the requested page.
func (p PageRequest) Skip() int {
	return p.Page * p.Limit
}

// Pagination is the metadata returned alongside a page of notes.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	TotalNotes  int64 `json:"totalNotes"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes pagination metadata from the page window and the
// total count of matching notes. A zero limit yields zero pages and no
// next page rather than a division fault.
func NewPagination(p PageRequest, total int64) Pagination {
	meta := Pagination{
		CurrentPage: p.Page,
		Limit:       p.Limit,
		TotalNotes:  total,
		HasPrevPage: p.Page > 0,
	}
	if p.Limit > 0 {
		meta.TotalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
		meta.HasNextPage = p.Page < meta.TotalPages-1
	}
	return meta
}
