package propfind

import (
	"context"
	"time"

	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
)

// SearchBuilder assembles a listing search query. All criteria are
// optional; an unconstrained builder returns the whole catalog. Build
// the query with chained calls and run it with Do.
type SearchBuilder struct {
	svc searchUseCase
	obs *observer

	fb      *filter.Builder
	sortKey sort.Key
	page    int
	limit   int
}

func (b *SearchBuilder) builder() *filter.Builder {
	if b.fb == nil {
		b.fb = filter.NewBuilder()
	}
	return b.fb
}

// Action constrains the listing status: "buy" selects sale listings,
// "rent" selects rentals. Any other value leaves status unconstrained.
func (b *SearchBuilder) Action(action string) *SearchBuilder {
	switch action {
	case "buy":
		b.builder().Status(listing.StatusSale)
	case "rent":
		b.builder().Status(listing.StatusRent)
	}
	return b
}

// Type filters by property type (case-insensitive).
func (b *SearchBuilder) Type(t string) *SearchBuilder {
	b.builder().Type(t)
	return b
}

// Area filters by area name (case-insensitive).
func (b *SearchBuilder) Area(a string) *SearchBuilder {
	b.builder().Area(a)
	return b
}

// Developer filters by exact developer name.
func (b *SearchBuilder) Developer(d string) *SearchBuilder {
	b.builder().Developer(d)
	return b
}

// MinPrice sets the inclusive lower price bound.
func (b *SearchBuilder) MinPrice(p float64) *SearchBuilder {
	b.builder().MinPrice(p)
	return b
}

// MaxPrice sets the inclusive upper price bound.
func (b *SearchBuilder) MaxPrice(p float64) *SearchBuilder {
	b.builder().MaxPrice(p)
	return b
}

// Beds filters by exact bedroom count.
func (b *SearchBuilder) Beds(n int) *SearchBuilder {
	b.builder().Beds(n)
	return b
}

// Baths filters by exact bathroom count.
func (b *SearchBuilder) Baths(n int) *SearchBuilder {
	b.builder().Baths(n)
	return b
}

// MinSqft sets the inclusive lower area bound.
func (b *SearchBuilder) MinSqft(s float64) *SearchBuilder {
	b.builder().MinSqft(s)
	return b
}

// MaxSqft sets the inclusive upper area bound.
func (b *SearchBuilder) MaxSqft(s float64) *SearchBuilder {
	b.builder().MaxSqft(s)
	return b
}

// Furnished keeps only listings explicitly marked furnished.
func (b *SearchBuilder) Furnished() *SearchBuilder {
	b.builder().Furnished()
	return b
}

// Parking filters by exact parking value.
func (b *SearchBuilder) Parking(p string) *SearchBuilder {
	b.builder().Parking(p)
	return b
}

// PropertyAge filters by exact property age bracket.
func (b *SearchBuilder) PropertyAge(a string) *SearchBuilder {
	b.builder().PropertyAge(a)
	return b
}

// Completion filters by exact completion state.
func (b *SearchBuilder) Completion(c string) *SearchBuilder {
	b.builder().Completion(c)
	return b
}

// Subtype filters by exact property subtype.
func (b *SearchBuilder) Subtype(s string) *SearchBuilder {
	b.builder().Subtype(s)
	return b
}

// Category filters by exact category.
func (b *SearchBuilder) Category(c string) *SearchBuilder {
	b.builder().Category(c)
	return b
}

// Query keeps listings whose title, area, city, description, or
// developer contains the given text (case-insensitive).
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.builder().Search(q)
	return b
}

// Features keeps listings carrying every given feature tag.
func (b *SearchBuilder) Features(tags ...string) *SearchBuilder {
	b.builder().Features(tags...)
	return b
}

// SortBy sets the result ordering: "featured", "price-low",
// "price-high", or "newest". An unknown key falls back to featured.
func (b *SearchBuilder) SortBy(key string) *SearchBuilder {
	b.sortKey = sort.Key(key)
	return b
}

// Page sets the result window. Non-positive values fall back to the
// first page and the default limit.
func (b *SearchBuilder) Page(pageNum, limit int) *SearchBuilder {
	b.page = pageNum
	b.limit = limit
	return b
}

// Do runs the query and returns one page of matching listings.
func (b *SearchBuilder) Do(ctx context.Context) (_ SearchPage, err error) {
	start := time.Now()
	defer func() { b.obs.observe("search", start, err) }()

	key := b.sortKey
	if !key.IsValid() {
		key = sort.Default
	}

	var f filter.Filter
	if b.fb != nil {
		f = b.fb.Build()
	}

	res := b.svc.Search(ctx, f, key, page.NewRequest(b.page, b.limit))

	items := make([]Listing, len(res.Items()))
	for i := range res.Items() {
		items[i] = fromDomainListing(&res.Items()[i])
	}
	return SearchPage{
		Items:      items,
		Total:      res.Total(),
		Page:       res.Page(),
		Limit:      res.Limit(),
		TotalPages: res.TotalPages(),
		HasMore:    res.HasMore(),
	}, nil
}
