package resourceprovider

// CompletionPoller drives a user callback across a fixed snapshot batch
// of loads, firing it exactly once per entry that resolves
// successfully. Like ProgressTracker it is non-generic itself;
// NewCompletionPoller closes over the typed views and callback so Poll
// needs no type parameter of its own.
//
// The poller spawns no goroutines: Poll is driven entirely by its
// caller, and a callback runs on the calling goroutine.
type CompletionPoller struct {
	poll func()
}

// NewCompletionPoller returns a poller over views. onLoaded is invoked
// at most once per entry, the first time Poll observes that entry
// resolved to a value; entries that resolve to an error are marked
// fired without ever invoking onLoaded.
func NewCompletionPoller[R any](views []AsyncResourceView[R], onLoaded func(resourceID string, value R)) *CompletionPoller {
	fired := make([]bool, len(views))
	return &CompletionPoller{
		poll: func() {
			for i, v := range views {
				if fired[i] || !v.Ready() {
					continue
				}
				value, err := v.Wait()
				fired[i] = true
				if err == nil {
					onLoaded(v.ResourceID, value)
				}
			}
		},
	}
}

// Poll scans entries in order, firing onLoaded for each not-yet-fired,
// successfully-resolved entry and marking every resolved entry fired.
// Once every entry has fired, Poll is a no-op.
func (c *CompletionPoller) Poll() {
	c.poll()
}
