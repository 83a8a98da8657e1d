package pairwise

import (
	"runtime"
	"sync"

	"github.com/rodriados/msa/internal/scoring"
)

// gpuBlockSize is the thread-per-block width of the real kernel (32
// threads cooperatively filling one pair's DP anti-diagonals). A Go
// build has no device to launch onto, so each simulated "block" is one
// goroutine computing one pair's score with the same row-rolling core
// the CPU backend uses — gpu_cgo.go and gpu_fallback.go both dispatch
// those goroutines through runBlocksConcurrently below.
const gpuBlockSize = 32

// runBlocksConcurrently computes one score per item, launching at most
// `concurrency` simulated blocks at a time: bounded concurrent
// goroutines draining a fixed work list rather than one goroutine per
// item unconditionally.
func runBlocksConcurrently(items []workItem, table scoring.TableView, concurrency int) []float64 {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	out := make([]float64, len(items))
	limit := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		limit <- struct{}{}
		go func(i int, item workItem) {
			defer wg.Done()
			defer func() { <-limit }()
			out[i] = needlemanWunschScore(item.A, item.B, table)
		}(i, item)
	}
	wg.Wait()
	return out
}
