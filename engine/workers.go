/*
NAME
  workers.go

DESCRIPTION
  workers.go provides the block-parallel helper used by assembleSignal
  and renderLines, a plain sync.WaitGroup goroutine-per-worker pool in
  the style of ausocean-av's revid pipeline workers, sized and
  dispatched so results are independent of the worker count (spec.md
  §4.3.5, §8 invariant #4).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package engine

import "sync"

// runParallel invokes fn(i) for i in [0,n) across up to workers goroutines,
// blocking until all calls complete. Each index is independent: fn must not
// depend on the order or interleaving of other indices, only on its own i,
// so that the result is identical regardless of workers.
func runParallel(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
