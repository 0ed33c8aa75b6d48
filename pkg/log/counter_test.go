package log

import (
	"sync"
	"testing"
)

func (ctr *counter) count(key string) int {
	ctr.mu.RLock()
	defer ctr.mu.RUnlock()
	return ctr.seen[key]
}

func (ctr *counter) reset() {
	ctr.mu.Lock()
	ctr.seen = map[string]int{}
	ctr.mu.Unlock()
}

func TestCounter_Observe(t *testing.T) {
	ctr := newCounter()

	// Should return 0 if never seen
	if num := ctr.count("something"); num != 0 {
		t.Fatalf("counter: count: expected %d; found %d", 0, num)
	}

	for i := 1; i <= 3; i++ {
		write, last := ctr.observe("something", 3)
		if !write {
			t.Fatalf("counter: observe: expected write on occurrence %d", i)
		}
		if last != (i == 3) {
			t.Fatalf("counter: observe: expected last=%t on occurrence %d", i == 3, i)
		}
	}

	// Past the limit nothing is written and the count stops growing
	for i := 0; i < 10; i++ {
		write, last := ctr.observe("something", 3)
		if write || last {
			t.Fatalf("counter: observe: expected suppression past the limit")
		}
	}
	if num := ctr.count("something"); num != 4 {
		t.Fatalf("counter: count: expected %d; found %d", 4, num)
	}

	ctr.reset()
	if num := ctr.count("something"); num != 0 {
		t.Fatalf("counter: count: expected %d; found %d", 0, num)
	}
}

func TestCounter_Threadsafety(t *testing.T) {
	ctr := newCounter()

	var mu sync.Mutex
	var writes int

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 1; j <= 1000; j++ {
				if write, _ := ctr.observe("key", 10); write {
					mu.Lock()
					writes++
					mu.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	if writes != 10 {
		t.Fatalf("counter: observe: expected %d writes; found %d", 10, writes)
	}
}
