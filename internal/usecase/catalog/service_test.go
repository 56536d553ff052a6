package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propfind-io/propfind/internal/domain"
	"github.com/propfind-io/propfind/internal/domain/listing"
)

// --- Mocks ---

type mockRepo struct {
	stored    *listing.Listing
	created   bool
	upsertErr error
	getResult listing.Listing
	getErr    error
	deleteErr error
	count     int
	countErr  error
}

func (m *mockRepo) Upsert(_ context.Context, l *listing.Listing) (bool, error) {
	m.stored = l
	return m.created, m.upsertErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (listing.Listing, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

func (m *mockRepo) Count(_ context.Context) (int, error) {
	return m.count, m.countErr
}

// --- Tests ---

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo := &mockRepo{created: true}
	svc := New(repo)

	l := listing.Listing{Title: "Sea View Apartment", Status: listing.StatusSale, Price: 450000}
	out, err := svc.Create(context.Background(), &l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID == "" {
		t.Error("expected generated ID")
	}
	if out.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if repo.stored == nil {
		t.Fatal("expected listing to reach the repository")
	}
}

func TestCreate_KeepsCallerID(t *testing.T) {
	repo := &mockRepo{created: true}
	svc := New(repo)

	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	l := listing.Listing{ID: "fixed", Title: "Villa", Status: listing.StatusRent, Price: 90000, CreatedAt: ts}
	out, err := svc.Create(context.Background(), &l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "fixed" {
		t.Errorf("expected caller ID preserved, got %s", out.ID)
	}
	if !out.CreatedAt.Equal(ts) {
		t.Errorf("expected caller timestamp preserved, got %v", out.CreatedAt)
	}
}

func TestCreate_InvalidListing(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	l := listing.Listing{Title: "Broken", Status: "weird", Price: 100}
	_, err := svc.Create(context.Background(), &l)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, domain.ErrInvalidListing) {
		t.Errorf("expected ErrInvalidListing, got %v", err)
	}
	if repo.stored != nil {
		t.Error("invalid listing must not reach the repository")
	}
}

func TestUpsert_ReportsCreated(t *testing.T) {
	repo := &mockRepo{created: true}
	svc := New(repo)

	l := listing.Listing{ID: "x", Title: "Loft", Status: listing.StatusSale, Price: 300000}
	created, err := svc.Upsert(context.Background(), &l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
}

func TestUpsert_RepoError(t *testing.T) {
	repo := &mockRepo{upsertErr: errors.New("store down")}
	svc := New(repo)

	l := listing.Listing{ID: "x", Title: "Loft", Status: listing.StatusSale, Price: 300000}
	if _, err := svc.Upsert(context.Background(), &l); err == nil {
		t.Fatal("expected error from repository")
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: domain.ErrNotFound}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_PassThrough(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	if err := svc.Delete(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCount(t *testing.T) {
	repo := &mockRepo{count: 42}
	svc := New(repo)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}
