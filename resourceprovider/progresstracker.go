package resourceprovider

// Status is a point-in-time snapshot of how a batch of loads is
// progressing: every entry is exactly one of waiting, done, or failed,
// so waiting+done+failed always equals total.
type Status struct {
	Total   int
	Waiting int
	Done    int
	Failed  int
}

// WaitingRatio, DoneRatio and FailedRatio are count/total, with the
// endpoints pinned exactly: 0 when the count is 0, 1.0 when the count
// equals total, so floating-point division never drifts a terminal
// status away from the value callers expect.
func (s Status) WaitingRatio() float64 { return ratio(s.Waiting, s.Total) }
func (s Status) DoneRatio() float64    { return ratio(s.Done, s.Total) }
func (s Status) FailedRatio() float64  { return ratio(s.Failed, s.Total) }

func ratio(count, total int) float64 {
	if count == 0 {
		return 0.0
	}
	if count == total {
		return 1.0
	}
	return float64(count) / float64(total)
}

// ProgressTracker computes {waiting, done, failed} over a fixed
// snapshot batch of loads, without caring what type those loads
// resolve to. It is built by a generic constructor that closes over a
// typed slice of views, the same function-pointer-capture trick
// original_source uses (mStatusGetter) to give a non-generic type a
// window into generically typed state.
type ProgressTracker struct {
	total  int
	status func() Status
}

// NewProgressTracker returns a tracker over a snapshot of views. Once
// built, the set of entries is fixed; polling Status only observes
// entries transitioning from waiting to done or failed, never the
// reverse.
func NewProgressTracker[R any](views []AsyncResourceView[R]) *ProgressTracker {
	total := len(views)
	return &ProgressTracker{
		total: total,
		status: func() Status {
			var waiting, done, failed int
			for _, v := range views {
				if !v.Ready() {
					waiting++
					continue
				}
				if _, err := v.Wait(); err != nil {
					failed++
				} else {
					done++
				}
			}
			return Status{Total: total, Waiting: waiting, Done: done, Failed: failed}
		},
	}
}

// Total returns the fixed size of the tracked batch.
func (t *ProgressTracker) Total() int {
	return t.total
}

// Status returns the tracker's current progress.
func (t *ProgressTracker) Status() Status {
	return t.status()
}
