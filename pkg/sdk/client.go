package propfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/propfind-io/propfind/internal/db"
	dbRedis "github.com/propfind-io/propfind/internal/db/redis"
	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/result"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
	listingrepo "github.com/propfind-io/propfind/internal/repository/listing"
	cataloguc "github.com/propfind-io/propfind/internal/usecase/catalog"
	healthuc "github.com/propfind-io/propfind/internal/usecase/health"
	searchuc "github.com/propfind-io/propfind/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the wiring.
type catalogUseCase interface {
	Create(ctx context.Context, l *listing.Listing) (listing.Listing, error)
	Upsert(ctx context.Context, l *listing.Listing) (bool, error)
	Get(ctx context.Context, id string) (listing.Listing, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type searchUseCase interface {
	Search(ctx context.Context, f filter.Filter, key sort.Key, req page.Request) result.Page
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the propfind SDK entry point.
type Client struct {
	store      db.Store
	catalogSvc catalogUseCase
	searchSvc  searchUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a propfind Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("propfind: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("propfind: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("propfind: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(ctx, store, cfg, obs)
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	repo := listingrepo.New(store)
	if cfg.keyPrefix != "" {
		repo = repo.WithKeyPrefix(cfg.keyPrefix)
	}
	if cfg.fetchLimit > 0 {
		repo = repo.WithFetchLimit(cfg.fetchLimit)
	}

	// Best effort: search works without the index via a full scan.
	if err := repo.EnsureIndex(ctx); err != nil && obs.logger != nil {
		obs.logger.Warn("ensure index failed", "error", err)
	}

	return &Client{
		store:      store,
		catalogSvc: cataloguc.New(repo),
		searchSvc:  searchuc.New(repo),
		healthSvc:  healthuc.New(store, repo),
		obs:        obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Listings returns the catalog service.
func (c *Client) Listings() *ListingService {
	return &ListingService{svc: c.catalogSvc, obs: c.obs}
}

// Search starts a search query builder.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{svc: c.searchSvc, obs: c.obs}
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
