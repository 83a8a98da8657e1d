//go:build cgo

package pairwise

import "github.com/rodriados/msa/internal/scoring"

// cgoAvailable reports whether this build was compiled with device
// support. The hybrid backend (registry.go) consults it to pick
// "needleman" over "sequential" at runtime, keeping algorithm selection
// hot-swappable.
const cgoAvailable = true

// gpuBackend is the "needleman" algorithm: device-dispatched in a real
// build (one block of gpuBlockSize threads per pair), simulated here as
// bounded goroutine fan-out over the same numeric core the CPU backend
// uses so the two agree bit-for-bit. The actual kernel launch — copying
// the scoring table to shared memory once per block and sweeping the
// anti-diagonal in lock-step across gpuBlockSize threads — lives behind
// a real device toolchain a pure-Go build cannot express; this build
// tag is where that toolchain's bindings would be wired in.
type gpuBackend struct{}

func newGPUBackend() Backend { return gpuBackend{} }

func (gpuBackend) Name() string { return "needleman" }

func (gpuBackend) ScoreBatch(items []workItem, table scoring.TableView) ([]float64, error) {
	return runBlocksConcurrently(items, table, gpuBlockSize), nil
}
