package pairwise

import "github.com/rodriados/msa/internal/scoring"

// cpuBackend is the "sequential" algorithm: a plain loop over the
// assigned pairs, each scored by the shared row-rolling Needleman-Wunsch
// core, which only ever materializes the final score, never a
// traceback.
type cpuBackend struct{}

func newCPUBackend() Backend { return cpuBackend{} }

func (cpuBackend) Name() string { return "sequential" }

func (cpuBackend) ScoreBatch(items []workItem, table scoring.TableView) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = needlemanWunschScore(item.A, item.B, table)
	}
	return out, nil
}
