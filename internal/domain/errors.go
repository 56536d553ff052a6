package domain

import "errors"

// KeyPrefix namespaces all catalog keys in the store.
const KeyPrefix = "propfind:"

var (
	// ErrNotFound signals a missing listing.
	ErrNotFound = errors.New("listing not found")
	// ErrInvalidListing signals a listing that fails validation.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrStoreUnavailable signals that the backing store could not
	// serve the operation.
	ErrStoreUnavailable = errors.New("listing store unavailable")
)
