// Package pairwise implements the pairwise distance-matrix engine: it
// partitions the N(N-1)/2 pairs of a database across cluster ranks,
// scores each assigned pair under a scoring table with a hot-swappable
// algorithm backend, and gathers the result into a complete, identical
// distance matrix on every rank.
package pairwise

import (
	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/scoring"
)

// workItem is one pairwise comparison handed to a Backend.
type workItem struct {
	A, B *alphabet.Sequence
}

// Backend computes alignment scores for a batch of pairs under a
// shared, read-only scoring table. The GPU backend scores items as
// concurrently running simulated blocks (one per pair); the CPU backend
// loops sequentially — both must be numerically identical.
type Backend interface {
	// Name identifies the backend for logging/diagnostics.
	Name() string
	// ScoreBatch returns one score per item, in item order.
	ScoreBatch(items []workItem, table scoring.TableView) ([]float64, error)
}
