package log

import "sync"

// counter tracks how many times each deduplicated log format has been seen.
type counter struct {
	mu   sync.RWMutex
	seen map[string]int
}

func newCounter() *counter {
	return &counter{seen: map[string]int{}}
}

// observe records one more occurrence of key. write is true while the occurrence is within
// limit, and last is true only for the occurrence that reaches it.
func (ctr *counter) observe(key string, limit int) (write bool, last bool) {
	ctr.mu.Lock()
	defer ctr.mu.Unlock()

	// stop counting once suppressed so long running processes can't overflow
	if ctr.seen[key] > limit {
		return false, false
	}

	ctr.seen[key]++
	n := ctr.seen[key]
	return n <= limit, n == limit
}
