package pairwise

import (
	"sort"

	"github.com/rodriados/msa/internal/core"
	"github.com/rodriados/msa/internal/scoring"
)

// hybridBackend selects needleman (GPU) when device support was
// compiled in, otherwise sequential (CPU), at runtime.
type hybridBackend struct {
	gpu, cpu Backend
}

func newHybridBackend() Backend {
	return hybridBackend{gpu: newGPUBackend(), cpu: newCPUBackend()}
}

func (hybridBackend) Name() string { return "hybrid" }

func (h hybridBackend) ScoreBatch(items []workItem, table scoring.TableView) ([]float64, error) {
	if cgoAvailable {
		return h.gpu.ScoreBatch(items, table)
	}
	return h.cpu.ScoreBatch(items, table)
}

// registry is a sum-typed, name-keyed algorithm table: a plain map from
// canonical name to constructor, so algorithms are hot-swappable at
// runtime without recompilation.
var registry = map[string]func() Backend{
	"needleman":  newGPUBackend,
	"sequential": newCPUBackend,
	"hybrid":     newHybridBackend,
	"default":    newHybridBackend,
}

// lookupBackend resolves an algorithm name to a fresh Backend instance,
// or UnknownAlgorithm if the name isn't registered.
func lookupBackend(name string) (Backend, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, core.New(core.UnknownAlgorithm, "no pairwise backend named "+name)
	}
	return ctor(), nil
}

// Algorithms lists the registered algorithm names, sorted, for the
// CLI/config layer (mirrors scoring.List's shape for the table catalog).
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		if name == "default" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
