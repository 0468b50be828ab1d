package dbscan

import (
	"runtime"
	"sync"
)

// parallelFor splits [0, n) into contiguous chunks and runs fn on each
// chunk concurrently, one goroutine per chunk, returning only once every
// chunk has finished. The return is the happens-before barrier the
// pipeline's phases rely on: nothing after parallelFor observes a partial
// write from the goroutines it spawned.
//
// This is the idiomatic Go stand-in for the work-stealing task arena the
// algorithm otherwise assumes: a fixed number of workers, no further
// coordination needed once the barrier is crossed.
func parallelFor(n, nThreads int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	if nThreads <= 0 {
		nThreads = runtime.GOMAXPROCS(0)
	}
	if nThreads > n {
		nThreads = n
	}
	if nThreads <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + nThreads - 1) / nThreads
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
