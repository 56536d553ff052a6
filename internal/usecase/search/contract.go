package search

import (
	"context"

	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
)

// Repository defines the storage contract for candidate fetches.
// status and sortHint are push-down hints only: the store may return a
// superset in any order, and the pipeline re-applies everything.
type Repository interface {
	FetchCandidates(ctx context.Context, status listing.Status, sortHint sort.Key) ([]listing.Listing, error)
}
