package pagination

import "fmt"

// Meta describes the window printed for a list of TotalItems jobs.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	First       int  `json:"first"`
	Last        int  `json:"last"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta computes page metadata for params over totalCount items.
func NewMeta(params Params, totalCount int) Meta {
	offset, limit := params.OffsetLimit()
	pageSize := limit
	if pageSize == 0 {
		pageSize = totalCount - offset
	}

	meta := Meta{TotalItems: totalCount, PageSize: pageSize}
	if pageSize <= 0 || offset >= totalCount {
		return meta
	}

	meta.CurrentPage = offset/pageSize + 1
	meta.TotalPages = (totalCount + pageSize - 1) / pageSize
	meta.First = offset + 1
	meta.Last = min(offset+pageSize, totalCount)
	meta.HasPrevious = offset > 0
	meta.HasNext = meta.Last < totalCount
	return meta
}

// String renders the footer line, e.g. "Showing 21-40 of 57 (page 2 of 3)".
func (m Meta) String() string {
	if m.First == 0 {
		return fmt.Sprintf("Showing 0 of %d", m.TotalItems)
	}
	return fmt.Sprintf("Showing %d-%d of %d (page %d of %d)",
		m.First, m.Last, m.TotalItems, m.CurrentPage, m.TotalPages)
}
