package normalizer

import "fmt"

// Pagination describes the window of a collection response.
type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
	Links      *Links `json:"links,omitempty"`
}

// Links carries relative navigation links for a paginated collection.
type Links struct {
	First string `json:"first"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last"`
}

const (
	minLimit = 1
	maxLimit = 100
)

// Normalize clamps the window and derives the computed fields: page >= 1,
// 1 <= limit <= 100, total >= 0, totalPages = max(1, ceil(total/limit)).
func (p Pagination) Normalize() Pagination {
	page := max(p.Page, 1)
	limit := min(max(p.Limit, minLimit), maxLimit)
	total := max(p.Total, 0)

	totalPages := max((total+limit-1)/limit, 1)

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func buildLinks(p Pagination) *Links {
	l := &Links{
		First: pageLink(1, p.Limit),
		Last:  pageLink(p.TotalPages, p.Limit),
	}
	if p.HasPrev {
		l.Prev = pageLink(p.Page-1, p.Limit)
	}
	if p.HasNext {
		l.Next = pageLink(p.Page+1, p.Limit)
	}
	return l
}

func pageLink(page, limit int) string {
	return fmt.Sprintf("?page=%d&limit=%d", page, limit)
}
