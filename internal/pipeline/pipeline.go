package pipeline

import (
	"fmt"

	"github.com/rodriados/msa/internal/core"
)

// Pipeline is an ordered, pre-validated chain of Modules. Construct with
// New; composition is checked once at construction time, not on every
// Run.
type Pipeline struct {
	stages []Module
}

// New builds a Pipeline from stages in execution order, validating that
// each stage's declared OutputTag matches the next stage's InputTag.
// The first stage must declare InputTag() == Root. A mismatch anywhere
// in the chain fails with PipelineInvalid immediately, before the
// pipeline is ever run.
func New(stages ...Module) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, core.New(core.PipelineInvalid, "pipeline must have at least one stage")
	}
	if stages[0].InputTag() != Root {
		return nil, core.New(core.PipelineInvalid,
			fmt.Sprintf("first stage %q must accept %q, declares %q", stages[0].Name(), Root, stages[0].InputTag()))
	}
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		if prev.OutputTag() != cur.InputTag() {
			return nil, core.New(core.PipelineInvalid,
				fmt.Sprintf("stage %q produces %q but stage %q expects %q",
					prev.Name(), prev.OutputTag(), cur.Name(), cur.InputTag()))
		}
	}
	return &Pipeline{stages: stages}, nil
}

// Run executes every stage's pre-flight Check, failing fast with
// PipelineInvalid if any returns false and producing no side effects,
// then runs each stage strictly in order, moving its output Conduit
// into the next stage. A tainted process (see core.Tainted) refuses to
// start a further run: an internal invariant violation is treated as
// non-recoverable for the rest of the process's lifetime.
func (p *Pipeline) Run(ctx *Context) (Conduit, error) {
	if core.Tainted() {
		return Conduit{}, core.New(core.InternalInvariant, "process is tainted by a prior invariant violation; refusing to run")
	}

	for _, stage := range p.stages {
		if !stage.Check(ctx) {
			return Conduit{}, core.New(core.PipelineInvalid, "pre-flight check failed for stage "+stage.Name())
		}
	}

	conduit := Conduit{Tag: Root}
	for _, stage := range p.stages {
		out, err := stage.Run(ctx, conduit)
		if err != nil {
			if code, ok := errorCode(err); ok && code == core.InternalInvariant {
				core.Taint()
			}
			return Conduit{}, err
		}
		conduit = out
	}
	return conduit, nil
}

func errorCode(err error) (core.Code, bool) {
	if ce, ok := err.(*core.Error); ok {
		return ce.Code, true
	}
	return 0, false
}
