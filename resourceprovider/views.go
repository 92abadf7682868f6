package resourceprovider

// Source is anything that can enumerate and load resources of type R
// under string ids. filesource.Source[R] is the usual implementation,
// but a Source can equally be backed by a database table, an HTTP API,
// or an in-memory map built for tests.
type Source[R any] interface {
	// List returns the ids currently available from this source.
	List() ([]string, error)

	// Load fetches the resource for id. Called at most once per id
	// while the id's result is cached or in flight.
	Load(id string) (R, error)
}

// SourceView is a read-only, type-safe view over one registered source,
// returned by GetSource. It exposes List plus Get and AsyncGet, and
// every call goes through the owning Provider so that loads are cached,
// coalesced, and pooled.
type SourceView[R any] struct {
	provider *Provider
	sourceID string
}

// List returns the ids currently available from this source.
func (v SourceView[R]) List() ([]string, error) {
	return v.provider.List(v.sourceID)
}

// Get synchronously fetches the resource resourceID, waiting for any
// in-flight or newly-submitted load to complete.
func (v SourceView[R]) Get(resourceID string) (R, error) {
	return Get[R](v.provider, v.sourceID, resourceID)
}

// AsyncGet submits (or joins) a load for resourceID and returns
// immediately with a handle to observe completion.
func (v SourceView[R]) AsyncGet(resourceID string) (AsyncResourceView[R], error) {
	return AsyncGet[R](v.provider, v.sourceID, resourceID)
}

// ResourceView is a resolved resource produced only from the cache: a
// (ResourceID, value) pair handed back by GetBatch/GetAll once loading
// has already succeeded.
type ResourceView[R any] struct {
	ResourceID string
	Value      R
}

// AsyncResourceView is a handle to a resource load that may still be in
// flight: a typed wrapper around the shared, type-erased handle. It
// carries its ResourceID alongside the handle so a ProgressTracker
// or CompletionPoller built over a batch of views can report which
// resource each one belongs to.
type AsyncResourceView[R any] struct {
	ResourceID string
	h          *handle
}

// Ready reports, without blocking, whether the load has completed.
func (v AsyncResourceView[R]) Ready() bool {
	return v.h.ready()
}

// Wait blocks until the load completes and returns its result.
func (v AsyncResourceView[R]) Wait() (R, error) {
	v.h.wait()
	return decodeHandle[R](v.h)
}

func decodeHandle[R any](h *handle) (R, error) {
	var zero R
	if h.err != nil {
		return zero, h.err
	}
	return h.value.(R), nil
}
