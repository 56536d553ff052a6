package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
)

// --- Mocks ---

type mockRepo struct {
	candidates []listing.Listing
	err        error
	called     bool
	lastStatus listing.Status
	lastHint   sort.Key
}

func (m *mockRepo) FetchCandidates(
	_ context.Context, status listing.Status, hint sort.Key,
) ([]listing.Listing, error) {
	m.called = true
	m.lastStatus = status
	m.lastHint = hint
	return m.candidates, m.err
}

func sampleCandidates() []listing.Listing {
	return []listing.Listing{
		{ID: "a", Title: "Marina View", Status: listing.StatusSale, Price: 900000, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "Downtown Loft", Status: listing.StatusSale, Price: 500000, Featured: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Title: "Garden Villa", Status: listing.StatusRent, Price: 120000, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

// --- Tests ---

func TestSearch_UnfilteredDefaults(t *testing.T) {
	repo := &mockRepo{candidates: sampleCandidates()}
	svc := New(repo)

	res := svc.Search(context.Background(), filter.Filter{}, sort.Default, page.NewRequest(0, 0))
	if !repo.called {
		t.Fatal("expected FetchCandidates to be called")
	}
	if res.Total() != 3 {
		t.Fatalf("expected total 3, got %d", res.Total())
	}
	if len(res.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(res.Items()))
	}
	// featured listings come first under the default ordering
	if res.Items()[0].ID != "b" {
		t.Errorf("expected featured listing first, got %s", res.Items()[0].ID)
	}
}

func TestSearch_FilterPushedDownAndReapplied(t *testing.T) {
	// The repo returns a superset; the service must still filter it.
	repo := &mockRepo{candidates: sampleCandidates()}
	svc := New(repo)

	f := filter.NewBuilder().Status(listing.StatusSale).Build()
	res := svc.Search(context.Background(), f, sort.Default, page.NewRequest(1, 20))

	if repo.lastStatus != listing.StatusSale {
		t.Errorf("expected sale status hint, got %q", repo.lastStatus)
	}
	if res.Total() != 2 {
		t.Fatalf("expected 2 sale listings, got %d", res.Total())
	}
	for _, it := range res.Items() {
		if it.Status != listing.StatusSale {
			t.Errorf("rent listing leaked through filter: %s", it.ID)
		}
	}
}

func TestSearch_SortHintForwarded(t *testing.T) {
	repo := &mockRepo{candidates: sampleCandidates()}
	svc := New(repo)

	res := svc.Search(context.Background(), filter.Filter{}, sort.PriceLow, page.NewRequest(1, 20))
	if repo.lastHint != sort.PriceLow {
		t.Errorf("expected price-low hint, got %v", repo.lastHint)
	}
	items := res.Items()
	for i := 1; i < len(items); i++ {
		if items[i].Price < items[i-1].Price {
			t.Errorf("items not sorted by price ascending: [%d]=%f < [%d]=%f",
				i, items[i].Price, i-1, items[i-1].Price)
		}
	}
}

func TestSearch_Pagination(t *testing.T) {
	repo := &mockRepo{candidates: sampleCandidates()}
	svc := New(repo)

	res := svc.Search(context.Background(), filter.Filter{}, sort.Default, page.NewRequest(2, 2))
	if res.Total() != 3 {
		t.Fatalf("expected total 3, got %d", res.Total())
	}
	if res.TotalPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", res.TotalPages())
	}
	if len(res.Items()) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(res.Items()))
	}
	if res.HasMore() {
		t.Error("last page should not report more results")
	}
}

func TestSearch_RepoError_EmptyResult(t *testing.T) {
	repo := &mockRepo{err: errors.New("store unavailable")}
	svc := New(repo)

	res := svc.Search(context.Background(), filter.Filter{}, sort.Default, page.NewRequest(1, 20))
	if res.Total() != 0 {
		t.Fatalf("expected empty result on store failure, got total %d", res.Total())
	}
	if len(res.Items()) != 0 {
		t.Fatalf("expected no items, got %d", len(res.Items()))
	}
	if res.TotalPages() != 1 {
		t.Errorf("empty result should still report one page, got %d", res.TotalPages())
	}
}

func TestSearch_NoStatusHintWhenUnconstrained(t *testing.T) {
	repo := &mockRepo{candidates: sampleCandidates()}
	svc := New(repo)

	svc.Search(context.Background(), filter.Filter{}, sort.Default, page.NewRequest(1, 20))
	if repo.lastStatus != "" {
		t.Errorf("expected empty status hint, got %q", repo.lastStatus)
	}
}
