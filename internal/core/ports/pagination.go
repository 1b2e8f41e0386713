package ports

// MaxPageLimit caps the page size a caller may request.
const MaxPageLimit = 100

// Page selects a window of a list. Limit 0 selects the whole collection.
type Page struct {
	Page  int // 1-based
	Limit int
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	if p.Limit <= 0 || p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Pagination describes the window returned by a list call.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Normalize clamps the requested page into the supported range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Describe builds the Pagination for a list of total records viewed through p.
// An unlimited page reports the whole collection as a single page.
func (p Page) Describe(total int64) Pagination {
	if p.Limit == 0 {
		pages := 0
		if total > 0 {
			pages = 1
		}
		return Pagination{Total: total, Page: 1, Limit: int(total), TotalPages: pages}
	}
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}
