// Package scoring implements the scoring table and catalog: a 25×25
// substitution matrix plus a linear gap penalty, keyed by canonical
// name ("blosum62", "pam250", ...).
package scoring

import (
	"fmt"

	"github.com/rodriados/msa/internal/alphabet"
)

// Table is a (25×25 score matrix, non-negative gap penalty) pair. The
// diagonal may be positive; the '*' row and column encode terminal
// behavior and are never consulted for a score (the pairwise engine
// short-circuits on '*' before it would read them — see
// internal/pairwise).
type Table struct {
	name    string
	matrix  [alphabet.Size * alphabet.Size]int16
	gapCost int
}

// Name returns the table's canonical catalog name.
func (t *Table) Name() string { return t.name }

// GapPenalty returns the linear gap penalty (a non-negative cost
// subtracted per inserted/deleted symbol).
func (t *Table) GapPenalty() int { return t.gapCost }

// Score returns the substitution score for aligning row against col.
func (t *Table) Score(row, col alphabet.Code) int {
	return int(t.matrix[int(row)*alphabet.Size+int(col)])
}

// At is the cartesian (row, col) accessor shared identically between
// the host table and its device clone.
func (t *Table) At(row, col int) int {
	if row < 0 || row >= alphabet.Size || col < 0 || col >= alphabet.Size {
		panic(fmt.Sprintf("scoring: index (%d,%d) out of range", row, col))
	}
	return int(t.matrix[row*alphabet.Size+col])
}

// Flat returns the row-major backing array, POD and safe to copy onto
// device memory verbatim (see Clone in device.go).
func (t *Table) Flat() []int16 {
	return t.matrix[:]
}
