package propfind

import (
	"context"

	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/result"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
	healthuc "github.com/propfind-io/propfind/internal/usecase/health"
)

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	createFn func(ctx context.Context, l *listing.Listing) (listing.Listing, error)
	upsertFn func(ctx context.Context, l *listing.Listing) (bool, error)
	getFn    func(ctx context.Context, id string) (listing.Listing, error)
	deleteFn func(ctx context.Context, id string) error
	countFn  func(ctx context.Context) (int, error)
}

func (m *mockCatalogUC) Create(ctx context.Context, l *listing.Listing) (listing.Listing, error) {
	return m.createFn(ctx, l)
}

func (m *mockCatalogUC) Upsert(ctx context.Context, l *listing.Listing) (bool, error) {
	return m.upsertFn(ctx, l)
}

func (m *mockCatalogUC) Get(ctx context.Context, id string) (listing.Listing, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCatalogUC) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	fn func(ctx context.Context, f filter.Filter, key sort.Key, req page.Request) result.Page
}

func (m *mockSearchUC) Search(
	ctx context.Context, f filter.Filter, key sort.Key, req page.Request,
) result.Page {
	return m.fn(ctx, f, key, req)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
