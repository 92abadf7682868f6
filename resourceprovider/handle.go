package resourceprovider

// handle is the shared, type-erased completion handle for one (source,
// resource) load. It is stored in the in-flight table as `any` so the
// table can hold handles for arbitrarily many resource types
// simultaneously; value, when resolved successfully, is an R boxed as
// `any` (R bound by whichever typed accessor reads it back).
//
// Grounded on cache-manager/singleflight.go's call struct, generalized
// from a single-reader sync.WaitGroup to a channel so that any number of
// observers — including ones that arrive after the load has already
// completed — can read the result without blocking forever.
type handle struct {
	done  chan struct{}
	value any
	err   error
}

func newHandle() *handle {
	return &handle{done: make(chan struct{})}
}

// newResolvedHandle returns a handle that is already done, for the
// cache-hit fast path where no load is needed.
func newResolvedHandle(value any, err error) *handle {
	h := &handle{done: make(chan struct{}), value: value, err: err}
	close(h.done)
	return h
}

// resolve completes the handle exactly once. Called by the worker
// running the load, never by a reader.
func (h *handle) resolve(value any, err error) {
	h.value = value
	h.err = err
	close(h.done)
}

// ready reports whether the handle has resolved, without blocking.
func (h *handle) ready() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// wait blocks until the handle resolves.
func (h *handle) wait() {
	<-h.done
}
