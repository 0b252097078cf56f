// Package lane emulates a GPU-style data-parallel execution model on the CPU.
// Kernels run over flat ranges of lanes scheduled across worker goroutines,
// or over groups of cooperating lanes sharing a scratch buffer and a barrier.
package lane

import (
	"runtime"
	"sync"
)

// Execute splits [0, n) into contiguous chunks and runs work on each chunk
// in parallel, returning after all chunks complete.
// Writes made by work are visible to the caller on return.
func Execute(n int, work func(start, end int)) {
	if n <= 0 {
		return
	}

	workSize := min(runtime.NumCPU(), n)
	chunk := n / workSize
	extra := n - chunk*workSize

	var wg sync.WaitGroup
	wg.Add(workSize)

	start := 0
	for i := 0; i < workSize; i++ {
		end := start + chunk
		if i < extra {
			end++
		}
		go func(s, e int) {
			defer wg.Done()
			work(s, e)
		}(start, end)
		start = end
	}

	wg.Wait()
}

// Barrier synchronizes a fixed set of lanes: no lane proceeds past Wait
// until all lanes have reached it. A Barrier is reusable across multiple
// synchronization points.
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond

	size  int
	count int
	gen   int
}

// NewBarrier creates a new Barrier for the given number of lanes.
// Panics if size is not positive.
func NewBarrier(size int) *Barrier {
	if size <= 0 {
		panic("barrier size must be positive")
	}

	b := &Barrier{size: size}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Size returns the number of lanes synchronized by the Barrier.
func (b *Barrier) Size() int {
	return b.size
}

// Wait blocks until all lanes of the Barrier have called Wait.
func (b *Barrier) Wait() {
	if b.size == 1 {
		return
	}

	b.mu.Lock()
	gen := b.gen
	b.count++
	if b.count == b.size {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
	} else {
		for gen == b.gen {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}

// Dispatch launches groups of cooperating lanes.
// Each group runs lanes kernel invocations sharing one scratch value and one
// Barrier; lanes within a group may synchronize on the Barrier, lanes across
// groups must not alias the same memory. Groups are scheduled over worker
// goroutines. With lanes == 1 the kernel runs inline, Wait is a no-op, and
// scratch is reused across a worker's groups, so its contents are
// unspecified at kernel entry.
func Dispatch[S any](groups, lanes int, newScratch func() S, kernel func(group, lid int, scratch S, b *Barrier)) {
	if lanes <= 1 {
		Execute(groups, func(start, end int) {
			b := NewBarrier(1)
			s := newScratch()
			for g := start; g < end; g++ {
				kernel(g, 0, s, b)
			}
		})
		return
	}

	Execute(groups, func(start, end int) {
		for g := start; g < end; g++ {
			b := NewBarrier(lanes)
			s := newScratch()

			var wg sync.WaitGroup
			wg.Add(lanes)
			for lid := 0; lid < lanes; lid++ {
				go func(lid int) {
					defer wg.Done()
					kernel(g, lid, s, b)
				}(lid)
			}
			wg.Wait()
		}
	})
}
