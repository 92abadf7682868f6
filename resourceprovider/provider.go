package resourceprovider

import (
	"reflect"
	"sync"
	"time"
)

// Provider is the central typed, asynchronous resource cache. It holds
// an arbitrary number of registered sources, each with its own resource
// type, behind a single non-generic type so it can live in ordinary
// struct fields, dependency-injection containers, and so on.
//
// A single mutex guards every source's cache and in-flight table.
// Go has no reentrant mutex, so resolve (the one place that needs to
// read and mutate that state) is written to take and release the lock
// itself rather than assuming a caller already holds it; methods that
// need multiple such operations (lifecycle.go's drains) take and
// release the lock multiple times instead of nesting.
type Provider struct {
	mu      sync.Mutex
	sources map[string]*sourceEntry
	pool    *pool
	logger  *eventLogger
	metrics Metrics
	config  Config
	closed  bool
}

// New creates a Provider with the given configuration. A zero Workers
// value falls back to DefaultConfig's worker count.
func New(config Config) *Provider {
	if config.Workers <= 0 {
		config.Workers = DefaultConfig().Workers
	}

	return &Provider{
		sources: make(map[string]*sourceEntry),
		pool:    newPool(config.Workers),
		logger:  newEventLogger(config.EnableLogging),
		config:  config,
	}
}

// Close stops accepting new loads and waits for in-flight loads to
// finish. Already-queued-but-unstarted loads are discarded, matching
// the worker pool's close semantics; no in-flight load is cancelled.
func (p *Provider) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.pool.close()
}

// resolve returns a handle for (sourceID, resourceID): the already-
// cached value, a handle for a load already in flight, or a handle for
// a newly-submitted load, in that order. It is the single point where
// a resource id transitions between "nothing known", "loading", and
// "cached", so every caller (Get, AsyncGet and their batch variants)
// routes through it. If entry is no longer the one registered under
// sourceID (the source was removed after the caller looked it up), the
// returned handle is already resolved with an *UnknownSourceError.
func (p *Provider) resolve(sourceID string, entry *sourceEntry, resourceID string) *handle {
	p.mu.Lock()
	if p.sources[sourceID] != entry {
		p.mu.Unlock()
		return newResolvedHandle(nil, &UnknownSourceError{SourceID: sourceID})
	}
	if v, ok := entry.cache[resourceID]; ok {
		p.mu.Unlock()
		p.metrics.cacheHits.Add(1)
		return newResolvedHandle(v, nil)
	}
	if h, ok := entry.inflight[resourceID]; ok {
		p.mu.Unlock()
		p.metrics.cacheMisses.Add(1)
		p.metrics.loadsCoalesced.Add(1)
		return h
	}

	h := newHandle()
	entry.inflight[resourceID] = h
	p.mu.Unlock()

	p.metrics.cacheMisses.Add(1)
	p.metrics.loadsSubmitted.Add(1)
	err := p.pool.submit(p.config.LoadPriority, func() {
		p.runLoad(sourceID, entry, resourceID, h)
	})
	if err != nil {
		p.mu.Lock()
		delete(entry.inflight, resourceID)
		p.mu.Unlock()
		h.resolve(nil, err)
	}

	return h
}

// runLoad executes entry's Load for resourceID on a worker goroutine
// and resolves h with the outcome, moving resourceID from inflight to
// cache on success and leaving it uncached on failure so a later Get
// can retry.
func (p *Provider) runLoad(sourceID string, entry *sourceEntry, resourceID string, h *handle) {
	p.logger.loadStarted(sourceID, resourceID)
	start := time.Now()

	v, err := entry.load(resourceID)
	duration := time.Since(start)

	p.mu.Lock()
	delete(entry.inflight, resourceID)
	if err != nil {
		p.mu.Unlock()
		p.metrics.loadsFailed.Add(1)
		p.logger.loadFailed(sourceID, resourceID, duration, err)
		h.resolve(nil, &InvalidResourceError{SourceID: sourceID, ResourceID: resourceID, Err: err})
		return
	}
	entry.cache[resourceID] = v
	p.mu.Unlock()

	p.metrics.loadsSucceeded.Add(1)
	p.logger.loadSucceeded(sourceID, resourceID, duration)
	h.resolve(v, nil)
}

// Get synchronously fetches resourceID from sourceID, blocking until
// the value is cached, a load already in flight completes, or a newly
// submitted load completes.
func Get[R any](p *Provider, sourceID, resourceID string) (R, error) {
	var zero R

	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return zero, err
	}

	h := p.resolve(sourceID, entry, resourceID)
	h.wait()
	return decodeHandle[R](h)
}

// GetBatch fetches every id in resourceIDs from sourceID, submitting
// all loads up front so independent ids load concurrently, then
// waiting on each in turn, in order. The first load failure aborts and
// is returned directly; ids after it are still left in flight (or
// cached) for a later call to pick up.
func GetBatch[R any](p *Provider, sourceID string, resourceIDs []string) ([]ResourceView[R], error) {
	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	handles := make([]*handle, len(resourceIDs))
	for i, id := range resourceIDs {
		handles[i] = p.resolve(sourceID, entry, id)
	}

	views := make([]ResourceView[R], len(resourceIDs))
	for i, h := range handles {
		h.wait()
		v, loadErr := decodeHandle[R](h)
		if loadErr != nil {
			return nil, loadErr
		}
		views[i] = ResourceView[R]{ResourceID: resourceIDs[i], Value: v}
	}
	return views, nil
}

// GetAll fetches every resource currently listed by sourceID, in the
// order list() reports them.
func GetAll[R any](p *Provider, sourceID string) ([]ResourceView[R], error) {
	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	ids, err := entry.list()
	if err != nil {
		return nil, err
	}

	return GetBatch[R](p, sourceID, ids)
}

// AsyncGet submits (or joins) a load for resourceID and returns
// immediately with a handle that can be polled or waited on later.
func AsyncGet[R any](p *Provider, sourceID, resourceID string) (AsyncResourceView[R], error) {
	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return AsyncResourceView[R]{}, err
	}

	h := p.resolve(sourceID, entry, resourceID)
	return AsyncResourceView[R]{ResourceID: resourceID, h: h}, nil
}

// AsyncGetBatch submits (or joins) loads for every id in resourceIDs
// and returns immediately with one handle per id, in the same order.
// Every handle is produced before any caller can wait on one, so all
// of the batch's loads run in parallel.
func AsyncGetBatch[R any](p *Provider, sourceID string, resourceIDs []string) ([]AsyncResourceView[R], error) {
	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	views := make([]AsyncResourceView[R], len(resourceIDs))
	for i, id := range resourceIDs {
		views[i] = AsyncResourceView[R]{ResourceID: id, h: p.resolve(sourceID, entry, id)}
	}
	return views, nil
}

// AsyncGetAll submits (or joins) loads for every resource currently
// listed by sourceID and returns immediately, in the order list()
// reports them.
func AsyncGetAll[R any](p *Provider, sourceID string) ([]AsyncResourceView[R], error) {
	entry, err := p.entryFor(sourceID, reflect.TypeOf((*R)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	ids, err := entry.list()
	if err != nil {
		return nil, err
	}

	return AsyncGetBatch[R](p, sourceID, ids)
}

// List returns the ids currently available from sourceID, without
// touching the cache. Unlike the typed accessors, listing does not
// name a resource type: it has nothing to check against a type
// witness, so it takes no type parameter and cannot fail with
// *WrongTypeError.
func (p *Provider) List(sourceID string) ([]string, error) {
	p.mu.Lock()
	entry, ok := p.sources[sourceID]
	p.mu.Unlock()

	if !ok {
		return nil, &UnknownSourceError{SourceID: sourceID}
	}
	return entry.list()
}
