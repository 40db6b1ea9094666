// Package parallel provides a bounded fork-join helper for
// data-parallel grid operations.
package parallel

import (
	"runtime"
	"sync"
)

// For splits the index range [0, n) into contiguous chunks and runs fn
// on each chunk from its own goroutine, at most NumCPU at a time. fn
// must only write state disjoint between chunks. For returns once
// every chunk has completed.
func For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(runtime.NumCPU(), n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
