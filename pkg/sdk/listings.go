package propfind

import (
	"context"
	"fmt"
	"time"
)

// ListingService manages catalog listings.
type ListingService struct {
	svc catalogUseCase
	obs *observer
}

// Create stores a new listing. An empty ID gets a generated one; the
// stored record is returned.
func (s *ListingService) Create(ctx context.Context, l *Listing) (_ Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.create", start, err) }()

	dl := toDomainListing(l)
	created, err := s.svc.Create(ctx, &dl)
	if err != nil {
		return Listing{}, fmt.Errorf("create listing: %w", err)
	}
	return fromDomainListing(&created), nil
}

// Upsert creates or replaces a listing by its ID.
// Returns true if the listing was created, false if updated.
func (s *ListingService) Upsert(ctx context.Context, l *Listing) (created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.upsert", start, err) }()

	dl := toDomainListing(l)
	created, err = s.svc.Upsert(ctx, &dl)
	if err != nil {
		return false, fmt.Errorf("upsert listing: %w", err)
	}
	return created, nil
}

// Get retrieves a listing by ID.
func (s *ListingService) Get(ctx context.Context, id string) (_ Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.get", start, err) }()

	l, err := s.svc.Get(ctx, id)
	if err != nil {
		return Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return fromDomainListing(&l), nil
}

// Delete removes a listing by ID.
func (s *ListingService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}

// Count returns the number of stored listings.
func (s *ListingService) Count(ctx context.Context) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.count", start, err) }()

	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}
