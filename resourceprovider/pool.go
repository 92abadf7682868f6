package resourceprovider

import (
	"container/heap"
	"sync"
)

// task is one unit of work submitted to the pool, ordered by priority
// (lower runs first) and, within a priority, by submission sequence.
type task struct {
	priority int32
	seq      uint64
	fn       func()
}

// taskHeap is a container/heap.Interface over pending tasks, the Go
// analogue of original_source/include/rex/threadpool.hpp's
// std::priority_queue<std::pair<int32_t, Task>, ..., TaskComparer>.
type taskHeap []task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pool is a fixed-size set of worker goroutines draining a priority
// queue of tasks. Grounded on warming/worker_pool.go's goroutine-pool
// shape, replacing its buffered-channel queue with a priority heap per
// original_source/include/rex/threadpool.hpp, since the provider needs
// the ordering guarantee a plain channel cannot give.
type pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   taskHeap
	nextSeq uint64
	closed  bool
	wg      sync.WaitGroup
}

// newPool starts workers goroutines (at least 1) ready to drain tasks.
func newPool(workers int) *pool {
	if workers <= 0 {
		workers = 1
	}

	p := &pool{}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}

	return p
}

func (p *pool) run() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.tasks) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.tasks) == 0 && p.closed {
			p.mu.Unlock()
			return
		}

		next := heap.Pop(&p.tasks).(task)
		p.mu.Unlock()

		next.fn()
	}
}

// submit enqueues fn to run at the given priority (lower runs first).
// Returns ErrPoolClosed if the pool has already been closed.
func (p *pool) submit(priority int32, fn func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}

	seq := p.nextSeq
	p.nextSeq++
	heap.Push(&p.tasks, task{priority: priority, seq: seq, fn: fn})
	p.mu.Unlock()

	p.cond.Signal()
	return nil
}

// close signals every worker to stop, discards tasks still queued, and
// waits for all workers to exit. A task already executing runs to
// completion; no task is cancelled mid-execution.
func (p *pool) close() {
	p.mu.Lock()
	p.closed = true
	p.tasks = nil
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
}
