package models

// Page is one bounded slice of an entity collection plus total-count
// metadata. PageNumber is 1-based; Items holds at most PageSize entries.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// TotalPages returns the number of pages needed for TotalCount items
func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := p.TotalCount / p.PageSize
	if p.TotalCount%p.PageSize != 0 {
		pages++
	}
	return pages
}
