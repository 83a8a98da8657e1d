// Package distmat implements the symmetric triangular distance matrix:
// the pairwise engine's output and the neighbor-joining builder's
// input.
package distmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix stores the strict lower triangle of an N×N symmetric score
// matrix, N(N-1)/2 cells, addressed by (max,min) -> max*(max-1)/2+min.
// The diagonal is implicitly zero and never stored.
type Matrix struct {
	n     int
	cells []float64
}

// New allocates a Matrix over n OTUs, all cells initialized to zero.
func New(n int) *Matrix {
	size := 0
	if n > 1 {
		size = n * (n - 1) / 2
	}
	return &Matrix{n: n, cells: make([]float64, size)}
}

// N returns the number of OTUs the matrix covers.
func (m *Matrix) N() int { return m.n }

func index(i, j int) (int, bool) {
	if i == j {
		return 0, false
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi*(hi-1)/2 + lo, true
}

// Get returns D[i,j]; the diagonal is always 0.
func (m *Matrix) Get(i, j int) float64 {
	idx, offDiag := index(i, j)
	if !offDiag {
		return 0
	}
	return m.cells[idx]
}

// Set stores D[i,j] = D[j,i] = v. Setting a diagonal cell is a no-op
// since the diagonal is always implicitly zero.
func (m *Matrix) Set(i, j int, v float64) {
	idx, offDiag := index(i, j)
	if !offDiag {
		return
	}
	m.cells[idx] = v
}

// String renders a compact summary.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix { n: %d, cells: %d }", m.n, len(m.cells))
}

// Dense materializes the matrix as a gonum dense symmetric matrix, for
// callers that want conventional numeric-library interop (e.g. feeding
// a clustering or PCA routine elsewhere in the pipeline's ecosystem)
// instead of the packed triangle.
func (m *Matrix) Dense() *mat.SymDense {
	data := make([]float64, m.n*m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			data[i*m.n+j] = m.Get(i, j)
		}
	}
	return mat.NewSymDense(m.n, data)
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	cells := make([]float64, len(m.cells))
	copy(cells, m.cells)
	return &Matrix{n: m.n, cells: cells}
}
