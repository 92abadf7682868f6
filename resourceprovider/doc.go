// Package resourceprovider implements a concurrent, heterogeneously
// typed, single-flight resource cache backed by a prioritized worker
// pool.
//
// An application registers named sources — producers that can list
// available resource ids and load a resource from one such id — and then
// requests resources by (source id, resource id). Successfully loaded
// resources are cached; concurrent requests for the same (source,
// resource) pair are coalesced into a single load. Both blocking
// (Get/GetAll) and non-blocking (AsyncGet/AsyncGetAll) retrieval are
// supported, alongside a ProgressTracker and CompletionPoller for
// observing batches of in-flight loads.
//
// Design Choices:
//   - Single-flight coalescing is hand-rolled (cache-manager/singleflight.go's
//     idiom) rather than golang.org/x/sync/singleflight, because the
//     in-flight table's handles must stay readable by arbitrarily many
//     observers after the call that created them returns — a shape
//     singleflight.Group's one-shot Do does not expose.
//   - The worker pool is a fixed-size goroutine pool draining a
//     container/heap priority queue, keyed by (priority, submission
//     sequence) for deterministic FIFO tie-breaking.
//   - Go generics replace the type-erased function-pointer trampolines
//     of the C++ original: AddSource[R] captures a type-safe load/list
//     closure per source, and a reflect.Type witness guards cross-type
//     access.
//
// Non-goals: no persistence across process restarts, no eviction by
// memory pressure or LRU (a cached resource lives until explicitly
// marked unused or its source removed), no cancellation of in-flight
// loads, no cross-process coordination.
package resourceprovider
