package pairwise

import (
	"github.com/rodriados/msa/internal/core"
	"github.com/rodriados/msa/internal/distmat"
	"github.com/rodriados/msa/internal/pairgen"
	"github.com/rodriados/msa/internal/scoring"
	"github.com/rodriados/msa/internal/seqdb"
	"github.com/rodriados/msa/internal/transport"
)

// State is one stage of the pairwise engine's run:
// idle -> partitioning -> executing -> gathering -> ready.
type State int

const (
	Idle State = iota
	Partitioning
	Executing
	Gathering
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Partitioning:
		return "partitioning"
	case Executing:
		return "executing"
	case Gathering:
		return "gathering"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Engine drives one run() of the pairwise distance-matrix computation.
// It is not reused across runs: a fresh Engine starts at Idle.
type Engine struct {
	state State
}

// NewEngine returns an Engine ready to Run.
func NewEngine() *Engine { return &Engine{state: Idle} }

// State returns the engine's current stage, mostly useful for tests and
// diagnostics.
func (e *Engine) State() State { return e.state }

// allgatherPayload is what each rank contributes to the ordered
// all-gather: its own scores, in the same order as the pairs
// pairgen.ForRank handed it.
type allgatherPayload struct {
	scores []float64
}

// Run computes the complete, symmetric distance matrix over db under
// table using the named algorithm, rank-collective across tr. Every
// rank must call Run with the same db, table,
// and algorithm in the same program position. A mismatch is not detected
// and is not reported as a TransportError: under the Simulated transport
// mismatched collective calls can block forever or combine contributions
// from different collectives.
func (e *Engine) Run(tr transport.Transport, db *seqdb.Database, table *scoring.Table, algorithm string) (*distmat.Matrix, error) {
	n := db.Len()
	matrix := distmat.New(n)
	if n < 2 {
		e.state = Ready
		return matrix, nil
	}

	e.state = Partitioning
	backend, err := lookupBackend(algorithm)
	if err != nil {
		e.state = Idle
		return nil, err
	}

	mine := pairgen.ForRank(n, tr.Rank(), tr.Size())
	items := make([]workItem, len(mine))
	for i, p := range mine {
		items[i] = workItem{A: db.Sequence(p.Max), B: db.Sequence(p.Min)}
	}

	e.state = Executing
	view := scoring.Clone(table).View()
	scores, err := backend.ScoreBatch(items, view)
	if err != nil {
		e.state = Idle
		if barrierErr := tr.Barrier(); barrierErr != nil {
			return nil, barrierErr
		}
		return nil, err
	}

	e.state = Gathering
	gathered, err := tr.Allgather(allgatherPayload{scores: scores})
	if err != nil {
		e.state = Idle
		return nil, err
	}

	world := tr.Size()
	cursor := make([]int, world)
	all := pairgen.All(n)
	for i, p := range all {
		r := i % world
		payload, ok := gathered[r].(allgatherPayload)
		if !ok {
			return nil, core.New(core.InternalInvariant, "allgather payload of unexpected type")
		}
		if cursor[r] >= len(payload.scores) {
			return nil, core.New(core.InternalInvariant, "allgather payload shorter than expected")
		}
		matrix.Set(p.Max, p.Min, payload.scores[cursor[r]])
		cursor[r]++
	}

	e.state = Ready
	return matrix, nil
}
