package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/propfind-io/propfind/internal/domain"
	"github.com/propfind-io/propfind/internal/domain/listing"
)

// Service handles listing CRUD.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new listing, assigning an ID and creation time when
// the caller supplies none.
func (s *Service) Create(ctx context.Context, l *listing.Listing) (listing.Listing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	if err := l.Validate(); err != nil {
		return listing.Listing{}, fmt.Errorf("%w: %w", domain.ErrInvalidListing, err)
	}

	if _, err := s.repo.Upsert(ctx, l); err != nil {
		return listing.Listing{}, fmt.Errorf("store listing: %w", err)
	}
	return *l, nil
}

// Upsert creates or replaces a listing. Returns true if the listing was
// created, false if updated.
func (s *Service) Upsert(ctx context.Context, l *listing.Listing) (bool, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	if err := l.Validate(); err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrInvalidListing, err)
	}

	created, err := s.repo.Upsert(ctx, l)
	if err != nil {
		return false, fmt.Errorf("store listing: %w", err)
	}
	return created, nil
}

// Get retrieves a listing by ID.
func (s *Service) Get(ctx context.Context, id string) (listing.Listing, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return listing.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Delete removes a listing by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}

// Count returns the number of stored listings.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}
