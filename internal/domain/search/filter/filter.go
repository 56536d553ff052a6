// Package filter holds the per-dimension listing criteria and the
// predicate that applies them.
package filter

import (
	"strings"

	"github.com/propfind-io/propfind/internal/domain/listing"
)

// Filter is an immutable bundle of optional per-dimension constraints.
// An unset dimension imposes no constraint; set dimensions are combined
// with logical AND. Built once per request via Builder and never mutated.
type Filter struct {
	status       *listing.Status
	propertyType *string
	area         *string
	developer    *string

	minPrice *float64
	maxPrice *float64
	beds     *int
	baths    *int
	minSqft  *float64
	maxSqft  *float64

	furnished bool

	parking     *string
	propertyAge *string
	completion  *string
	subtype     *string
	category    *string

	search   string
	features []string
}

// Status returns the status constraint, if set.
func (f Filter) Status() (listing.Status, bool) {
	if f.status == nil {
		return "", false
	}
	return *f.status, true
}

// IsEmpty reports whether the filter has no constraints at all.
func (f Filter) IsEmpty() bool {
	return f.status == nil && f.propertyType == nil && f.area == nil &&
		f.developer == nil && f.minPrice == nil && f.maxPrice == nil &&
		f.beds == nil && f.baths == nil && f.minSqft == nil && f.maxSqft == nil &&
		!f.furnished && f.parking == nil && f.propertyAge == nil &&
		f.completion == nil && f.subtype == nil && f.category == nil &&
		f.search == "" && len(f.features) == 0
}

// Matches reports whether the listing satisfies every set constraint.
// Records missing an attribute a set constraint needs are rejected by
// that constraint; records pass constraints that are unset.
func (f Filter) Matches(l *listing.Listing) bool {
	if f.status != nil && l.Status != *f.status {
		return false
	}
	if f.propertyType != nil && !strings.EqualFold(l.Type, *f.propertyType) {
		return false
	}
	if f.area != nil && !strings.EqualFold(l.Area, *f.area) {
		return false
	}
	if f.developer != nil && l.Developer != *f.developer {
		return false
	}
	if f.minPrice != nil && l.Price < *f.minPrice {
		return false
	}
	if f.maxPrice != nil && l.Price > *f.maxPrice {
		return false
	}
	if f.beds != nil && (l.Beds == nil || *l.Beds != *f.beds) {
		return false
	}
	if f.baths != nil && (l.Baths == nil || *l.Baths != *f.baths) {
		return false
	}
	// A record with unknown sqft cannot demonstrate it meets a stated bound.
	if f.minSqft != nil && (l.Sqft == nil || *l.Sqft < *f.minSqft) {
		return false
	}
	if f.maxSqft != nil && (l.Sqft == nil || *l.Sqft > *f.maxSqft) {
		return false
	}
	if f.furnished && (l.Furnished == nil || !*l.Furnished) {
		return false
	}
	if f.parking != nil && l.Parking != *f.parking {
		return false
	}
	if f.propertyAge != nil && l.PropertyAge != *f.propertyAge {
		return false
	}
	if f.completion != nil && l.Completion != *f.completion {
		return false
	}
	if f.subtype != nil && l.Subtype != *f.subtype {
		return false
	}
	if f.category != nil && l.Category != *f.category {
		return false
	}
	for _, tag := range f.features {
		if !l.HasFeature(tag) {
			return false
		}
	}
	if f.search != "" && !matchesSearch(l, f.search) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match over the
// free-text fields. Substring OR, unlike the per-field equality filters.
func matchesSearch(l *listing.Listing, needle string) bool {
	n := strings.ToLower(needle)
	for _, hay := range []string{l.Title, l.Area, l.City, l.Description, l.Developer} {
		if strings.Contains(strings.ToLower(hay), n) {
			return true
		}
	}
	return false
}

// Apply returns the listings satisfying the filter, preserving input
// order. The input slice is not mutated.
func (f Filter) Apply(ls []listing.Listing) []listing.Listing {
	out := make([]listing.Listing, 0, len(ls))
	for i := range ls {
		if f.Matches(&ls[i]) {
			out = append(out, ls[i])
		}
	}
	return out
}

// Builder assembles a Filter one dimension at a time.
type Builder struct {
	f Filter
}

// NewBuilder starts building a Filter.
func NewBuilder() *Builder {
	return &Builder{}
}

// Status constrains the listing action.
func (b *Builder) Status(s listing.Status) *Builder {
	b.f.status = &s
	return b
}

// Type constrains the property type (case-insensitive equality).
func (b *Builder) Type(t string) *Builder {
	b.f.propertyType = &t
	return b
}

// Area constrains the area (case-insensitive equality, not substring).
func (b *Builder) Area(a string) *Builder {
	b.f.area = &a
	return b
}

// Developer constrains the developer (exact equality).
func (b *Builder) Developer(d string) *Builder {
	b.f.developer = &d
	return b
}

// MinPrice sets the inclusive lower price bound.
func (b *Builder) MinPrice(p float64) *Builder {
	b.f.minPrice = &p
	return b
}

// MaxPrice sets the inclusive upper price bound.
func (b *Builder) MaxPrice(p float64) *Builder {
	b.f.maxPrice = &p
	return b
}

// Beds requires an exact bed count. Exact, not "N or more": the product
// exposes a fixed-option dropdown.
func (b *Builder) Beds(n int) *Builder {
	b.f.beds = &n
	return b
}

// Baths requires an exact bath count.
func (b *Builder) Baths(n int) *Builder {
	b.f.baths = &n
	return b
}

// MinSqft sets the inclusive lower size bound.
func (b *Builder) MinSqft(s float64) *Builder {
	b.f.minSqft = &s
	return b
}

// MaxSqft sets the inclusive upper size bound.
func (b *Builder) MaxSqft(s float64) *Builder {
	b.f.maxSqft = &s
	return b
}

// Furnished requires the listing to be furnished.
func (b *Builder) Furnished() *Builder {
	b.f.furnished = true
	return b
}

// Parking constrains the parking attribute (exact equality).
func (b *Builder) Parking(p string) *Builder {
	b.f.parking = &p
	return b
}

// PropertyAge constrains the property age bucket.
func (b *Builder) PropertyAge(a string) *Builder {
	b.f.propertyAge = &a
	return b
}

// Completion constrains the completion status.
func (b *Builder) Completion(c string) *Builder {
	b.f.completion = &c
	return b
}

// Subtype constrains the property subtype.
func (b *Builder) Subtype(s string) *Builder {
	b.f.subtype = &s
	return b
}

// Category constrains the listing category (e.g. "luxe").
func (b *Builder) Category(c string) *Builder {
	b.f.category = &c
	return b
}

// Search sets the free-text needle matched against title, area, city,
// description and developer.
func (b *Builder) Search(q string) *Builder {
	b.f.search = q
	return b
}

// Features requires every given tag to be present on the listing.
func (b *Builder) Features(tags ...string) *Builder {
	b.f.features = append(b.f.features, tags...)
	return b
}

// Build returns the assembled Filter.
func (b *Builder) Build() Filter {
	return b.f
}
