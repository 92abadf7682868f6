package resourceprovider

import "sync/atomic"

// Metrics tracks provider-wide load counters, in the atomic-counter
// style of cache-manager/service.go's Metrics struct. Purely
// observational: no persistence, no cross-process aggregation (both
// excluded by this module's non-goals).
type Metrics struct {
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	loadsSubmitted atomic.Int64
	loadsCoalesced atomic.Int64
	loadsSucceeded atomic.Int64
	loadsFailed    atomic.Int64
}

// MetricsSnapshot is a point-in-time read of Metrics.
type MetricsSnapshot struct {
	// CacheHits counts resolve() calls that found an already-cached
	// value. CacheMisses counts the rest: a load either newly submitted
	// (LoadsSubmitted) or joined already in flight (LoadsCoalesced), so
	// CacheHits+CacheMisses == LoadsSubmitted+LoadsCoalesced+CacheHits.
	CacheHits      int64
	CacheMisses    int64
	LoadsSubmitted int64
	LoadsCoalesced int64
	LoadsSucceeded int64
	LoadsFailed    int64
}

// Metrics returns a snapshot of the provider's cache and load counters.
func (p *Provider) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		CacheHits:      p.metrics.cacheHits.Load(),
		CacheMisses:    p.metrics.cacheMisses.Load(),
		LoadsSubmitted: p.metrics.loadsSubmitted.Load(),
		LoadsCoalesced: p.metrics.loadsCoalesced.Load(),
		LoadsSucceeded: p.metrics.loadsSucceeded.Load(),
		LoadsFailed:    p.metrics.loadsFailed.Load(),
	}
}
