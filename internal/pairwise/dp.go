package pairwise

import (
	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/scoring"
)

// effectiveLen returns the number of symbols of s before the first '*'
// padding code, whether that '*' is the database's own end-of-sequence
// marker or an explicit '*' embedded in the input — early termination
// makes no distinction between the two.
func effectiveLen(s *alphabet.Sequence) int {
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.At(i).IsPad() {
			return i
		}
	}
	return n
}

// needlemanWunschScore computes the global-alignment score of a against
// b under table using a single rolling score row. The longer effective
// sequence is walked along the row axis so the rolling buffer is
// bounded by the shorter sequence's length, matching the GPU kernel's
// shared-memory ordering.
//
// This is the one numeric core shared by every backend (cpu.go,
// gpu_cgo.go, gpu_fallback.go) so their results are bit-identical.
func needlemanWunschScore(a, b *alphabet.Sequence, table scoring.TableView) float64 {
	m, n := effectiveLen(a), effectiveLen(b)
	if m < n {
		a, b = b, a
		m, n = n, m
	}

	gap := float64(table.GapPenalty())

	row := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		row[j] = -float64(j) * gap
	}

	for i := 1; i <= m; i++ {
		prevDiag := row[0]
		row[0] = -float64(i) * gap
		ai := a.At(i - 1)
		for j := 1; j <= n; j++ {
			bj := b.At(j - 1)
			diag := prevDiag + float64(table.Score(ai, bj))
			up := row[j] - gap
			left := row[j-1] - gap

			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}

			prevDiag = row[j]
			row[j] = best
		}
	}
	return row[n]
}
