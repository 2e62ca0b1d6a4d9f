// internal/pkg/pagination/pagination.go
package pagination

import "sort"

// Meta describes one page of a listing the way the dashboard renders it:
// the total count, the clamped current page, and the window of page numbers
// to offer as direct links.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"page_window"`
}

// NewMeta builds pagination metadata for a listing.
func NewMeta(page, limit, total int) Meta {
	if limit < 1 {
		limit = 10
	}
	totalPages := TotalPages(total, limit)
	page = Clamp(page, totalPages)
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Window:     Window(page, totalPages),
	}
}

// TotalPages is ceil(total/limit), never less than 1.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp keeps a page number within [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Window returns the page numbers to show as direct links. Up to 7 pages
// are listed in full; beyond that the window is the sorted, deduplicated,
// in-range set {1, 2, current-1, current, current+1, last-1, last}. Gaps
// between consecutive entries are where the UI draws an ellipsis.
func Window(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	current = Clamp(current, totalPages)

	if totalPages <= 7 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	seen := map[int]bool{}
	for _, p := range []int{1, 2, current - 1, current, current + 1, totalPages - 1, totalPages} {
		if p >= 1 && p <= totalPages {
			seen[p] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
