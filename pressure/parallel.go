// SPDX-License-Identifier: MIT

package pressure

import (
	"runtime"
	"sync"
)

// parallelRange executes fn for each k in [start,end), splitting the range
// into contiguous chunks across GOMAXPROCS goroutines.
func parallelRange(start, end int, fn func(k int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := min(runtime.GOMAXPROCS(0), total)
	chunk := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for s := start; s < end; s += chunk {
		e := min(s+chunk, end)
		wg.Add(1)
		go func(ss, ee int) {
			defer wg.Done()
			for k := ss; k < ee; k++ {
				fn(k)
			}
		}(s, e)
	}
	wg.Wait()
}
