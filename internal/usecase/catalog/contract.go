package catalog

import (
	"context"

	"github.com/propfind-io/propfind/internal/domain/listing"
)

// Repository defines the storage contract for listings.
type Repository interface {
	Upsert(ctx context.Context, l *listing.Listing) (created bool, err error)
	Get(ctx context.Context, id string) (listing.Listing, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
