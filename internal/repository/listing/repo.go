// Package listing persists catalog listings as Redis hashes with an FT
// index for best-effort query push-down.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/propfind-io/propfind/internal/db"
	"github.com/propfind-io/propfind/internal/domain"
	domlisting "github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
	"github.com/propfind-io/propfind/internal/logger"
	"github.com/propfind-io/propfind/internal/metrics"
)

// DefaultFetchLimit caps how many candidate records one search pulls
// from the store before the in-process pipeline runs.
const DefaultFetchLimit = 5000

// store is the consumer interface for listings (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	Search(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements the catalog and search repositories.
type Repo struct {
	store      store
	prefix     string
	fetchLimit int
}

// New creates a listing repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: domain.KeyPrefix, fetchLimit: DefaultFetchLimit}
}

// WithKeyPrefix overrides the key namespace. Empty keeps the default.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// WithFetchLimit overrides the candidate fetch cap.
func (r *Repo) WithFetchLimit(limit int) *Repo {
	if limit > 0 {
		r.fetchLimit = limit
	}
	return r
}

func (r *Repo) key(id string) string { return r.prefix + "listing:" + id }
func (r *Repo) keyPattern() string   { return r.prefix + "listing:*" }
func (r *Repo) indexName() string    { return r.prefix + "listing:idx" }
func (r *Repo) idFromKey(k string) string {
	return strings.TrimPrefix(k, r.prefix+"listing:")
}

// storeErr marks a failed store operation so the transport edge can map
// it to 503.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// EnsureIndex creates the listing FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := db.NewIndex(r.indexName()).
		Prefix(r.prefix + "listing:").
		Tag(fieldStatus).
		Tag(fieldType).
		Tag(fieldArea).
		NumericSortable(fieldPrice).
		NumericSortable(fieldCreatedAt).
		NumericSortable(fieldFeatured).
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// ProbeIndex reports whether the listing FT index is in place.
func (r *Repo) ProbeIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if !exists {
		return db.ErrIndexNotFound
	}
	return nil
}

// Upsert creates or updates a listing. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, l *domlisting.Listing) (bool, error) {
	key := r.key(l.ID)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, storeErr("check exists "+key, err)
	}

	if err := r.store.HSet(ctx, key, buildHashFields(l)); err != nil {
		return false, storeErr("hset "+key, err)
	}

	return !exists, nil
}

// Get returns a listing by ID.
func (r *Repo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	key := r.key(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domlisting.Listing{}, storeErr("hgetall "+key, err)
	}
	// HGETALL of a missing key yields an empty map, not an error.
	if len(m) == 0 {
		return domlisting.Listing{}, domain.ErrNotFound
	}
	return parseHashFields(id, m), nil
}

// Delete removes a listing.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return storeErr("check exists "+key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return storeErr("del "+key, err)
	}
	return nil
}

// Count returns the number of listings in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), "*")
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			keys, scanErr := r.store.Scan(ctx, r.keyPattern())
			if scanErr != nil {
				return 0, storeErr("scan count", scanErr)
			}
			return len(keys), nil
		}
		return 0, storeErr("search count", err)
	}
	return n, nil
}

// FetchCandidates returns listings for the in-process search pipeline.
// The status and sort hints are pushed down to the FT index as a
// best-effort prefilter; callers must re-apply the full filter and sort
// regardless. When the index is unavailable the fetch falls back to a
// full key scan.
func (r *Repo) FetchCandidates(
	ctx context.Context, status domlisting.Status, sortHint sort.Key,
) ([]domlisting.Listing, error) {
	q := &db.ListQuery{
		IndexName: r.indexName(),
		Query:     statusQuery(status),
		Limit:     r.fetchLimit,
	}
	q.SortBy, q.SortDesc = sortByHint(sortHint)

	res, err := r.store.Search(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Warn("listing push-down unavailable, falling back to scan",
			zap.Error(err))
		metrics.SearchFallbackTotal.Inc()
		return r.scanAll(ctx)
	}

	out := make([]domlisting.Listing, 0, len(res.Entries))
	for _, entry := range res.Entries {
		if len(entry.Fields) == 0 {
			continue
		}
		out = append(out, parseHashFields(r.idFromKey(entry.Key), entry.Fields))
	}
	return out, nil
}

// scanAll loads every listing hash. Fallback path only.
func (r *Repo) scanAll(ctx context.Context) ([]domlisting.Listing, error) {
	keys, err := r.store.Scan(ctx, r.keyPattern())
	if err != nil {
		return nil, storeErr("scan listings", err)
	}
	if len(keys) > r.fetchLimit {
		keys = keys[:r.fetchLimit]
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, storeErr("load listings", err)
	}

	out := make([]domlisting.Listing, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		out = append(out, parseHashFields(r.idFromKey(keys[i]), m))
	}
	return out, nil
}

// statusQuery builds the push-down tag prefilter.
func statusQuery(status domlisting.Status) string {
	if status == "" {
		return "*"
	}
	return fmt.Sprintf("@%s:{%s}", fieldStatus, status)
}

// sortByHint maps a pipeline sort key onto a sortable index field.
func sortByHint(k sort.Key) (field string, desc bool) {
	switch k {
	case sort.PriceLow:
		return fieldPrice, false
	case sort.PriceHigh:
		return fieldPrice, true
	case sort.Newest:
		return fieldCreatedAt, true
	case sort.Featured:
		return fieldFeatured, true
	default:
		return "", false
	}
}
