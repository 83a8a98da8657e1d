//go:build !cgo

package pairwise

import "github.com/rodriados/msa/internal/scoring"

// cgoAvailable is false in a build with no device toolchain; the hybrid
// backend falls back to the CPU algorithm (see registry.go).
const cgoAvailable = false

// gpuBackend degrades to the same bounded-concurrency simulation as the
// cgo build, since there is no device to dispatch to; kept as a
// distinct type (rather than aliasing cpuBackend) so "needleman" stays
// a selectable, independently named algorithm even in a no-device
// build.
type gpuBackend struct{}

func newGPUBackend() Backend { return gpuBackend{} }

func (gpuBackend) Name() string { return "needleman" }

func (gpuBackend) ScoreBatch(items []workItem, table scoring.TableView) ([]float64, error) {
	return runBlocksConcurrently(items, table, gpuBlockSize), nil
}
