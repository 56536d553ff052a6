package propfind

import "github.com/propfind-io/propfind/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidListing   = domain.ErrInvalidListing
	ErrStoreUnavailable = domain.ErrStoreUnavailable
)
