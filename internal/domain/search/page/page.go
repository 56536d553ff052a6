// Package page windows a filtered, sorted result set.
package page

import (
	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/result"
)

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Request is a validated page window.
type Request struct {
	page  int
	limit int
}

// NewRequest normalizes page/limit. Page below 1 becomes 1; limit
// defaults to DefaultLimit and is capped at MaxLimit.
func NewRequest(page, limit int) Request {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{page: page, limit: limit}
}

// Page returns the 1-based page number.
func (r Request) Page() int { return r.page }

// Limit returns the page size.
func (r Request) Limit() int { return r.limit }

// Offset returns the number of records preceding this page.
func (r Request) Offset() int { return (r.page - 1) * r.limit }

// Paginate slices one page out of the full result set. A page past the
// end yields empty items; total and totalPages stay accurate.
func Paginate(ls []listing.Listing, req Request) result.Page {
	offset := req.Offset()
	end := offset + req.Limit()

	var items []listing.Listing
	if offset < len(ls) {
		if end > len(ls) {
			end = len(ls)
		}
		items = ls[offset:end]
	}

	return result.NewPage(items, len(ls), req.Page(), req.Limit())
}
