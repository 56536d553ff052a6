package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexProber checks that the listing search index is in place.
type IndexProber interface {
	ProbeIndex(ctx context.Context) error
}
