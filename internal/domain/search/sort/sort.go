// Package sort maps a sort key to a stable total ordering over listings.
package sort

import (
	stdsort "sort"

	"github.com/propfind-io/propfind/internal/domain/listing"
)

// Key is the sort order for a result set.
type Key string

// Sort key constants.
const (
	// Featured puts featured listings first, keeping input order inside
	// each partition.
	Featured  Key = "featured"
	PriceLow  Key = "price-low"
	PriceHigh Key = "price-high"
	Newest    Key = "newest"
)

// Default is the sort applied when the request names none.
const Default = Featured

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	return k == Featured || k == PriceLow || k == PriceHigh || k == Newest
}

// Apply returns a new slice ordered by the key. The input is not
// mutated, and the sort is stable: listings comparing equal keep their
// relative input order. An unknown key falls back to Featured.
func Apply(ls []listing.Listing, k Key) []listing.Listing {
	out := make([]listing.Listing, len(ls))
	copy(out, ls)

	var less func(a, b *listing.Listing) bool
	switch k {
	case PriceLow:
		less = func(a, b *listing.Listing) bool { return a.Price < b.Price }
	case PriceHigh:
		less = func(a, b *listing.Listing) bool { return a.Price > b.Price }
	case Newest:
		less = newerThan
	default:
		less = func(a, b *listing.Listing) bool { return a.Featured && !b.Featured }
	}

	stdsort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// newerThan orders by creation time descending. Listings without a
// timestamp sort last; when neither side has one, the identifier decides.
func newerThan(a, b *listing.Listing) bool {
	switch {
	case a.CreatedAt.IsZero() && b.CreatedAt.IsZero():
		return a.ID < b.ID
	case a.CreatedAt.IsZero():
		return false
	case b.CreatedAt.IsZero():
		return true
	default:
		return a.CreatedAt.After(b.CreatedAt)
	}
}
