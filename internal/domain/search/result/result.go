package result

import "github.com/propfind-io/propfind/internal/domain/listing"

// Page is one window of a filtered, sorted result set.
type Page struct {
	items      []listing.Listing
	total      int
	totalPages int
	page       int
	limit      int
}

// NewPage creates a result page. total is the pre-pagination count;
// totalPages is derived from it and never below 1, so an empty result
// set still reports one (empty) page.
func NewPage(items []listing.Listing, total, page, limit int) Page {
	totalPages := 1
	if limit > 0 {
		if tp := (total + limit - 1) / limit; tp > 1 {
			totalPages = tp
		}
	}
	return Page{
		items:      items,
		total:      total,
		totalPages: totalPages,
		page:       page,
		limit:      limit,
	}
}

// Items returns the listings on this page only.
func (p *Page) Items() []listing.Listing { return p.items }

// Total returns the count across all pages.
func (p *Page) Total() int { return p.total }

// TotalPages returns the page count, at least 1.
func (p *Page) TotalPages() int { return p.totalPages }

// Page returns the 1-based page number.
func (p *Page) Page() int { return p.page }

// Limit returns the page size.
func (p *Page) Limit() int { return p.limit }

// HasMore reports whether pages follow this one.
func (p *Page) HasMore() bool { return p.page < p.totalPages }
