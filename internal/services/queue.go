package services

import "sync"

// jobTracker is a FIFO channel paired with a seen-set keyed by jobKey,
// so a file or directory already queued is never queued twice. The
// seen-set is never cleared, so a key is queued at most once for the
// tracker's lifetime, even after its job has finished — the coalescing
// behavior the original gets for free
// from checking `job_key not in self.jobs` before `queue.put`.
type jobTracker struct {
	mu   sync.Mutex
	seen map[string]bool
	ch   chan interface{}
}

func newJobTracker(buffer int) *jobTracker {
	return &jobTracker{seen: make(map[string]bool), ch: make(chan interface{}, buffer)}
}

// enqueue adds job under key if key has never been queued before,
// reporting whether it was actually enqueued.
func (t *jobTracker) enqueue(key string, job interface{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seen[key] {
		return false
	}
	t.seen[key] = true
	t.ch <- job
	return true
}

func (t *jobTracker) len() int {
	return len(t.ch)
}
