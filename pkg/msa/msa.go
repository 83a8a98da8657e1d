// Package msa is the high-level facade gluing the pairwise engine and
// neighbor-joining into one call over an already-built Database.
package msa

import (
	"github.com/rodriados/msa/internal/core"
	"github.com/rodriados/msa/internal/distmat"
	"github.com/rodriados/msa/internal/pairwise"
	"github.com/rodriados/msa/internal/phylo"
	"github.com/rodriados/msa/internal/pipeline"
	"github.com/rodriados/msa/internal/scoring"
	"github.com/rodriados/msa/internal/seqdb"
	"github.com/rodriados/msa/internal/transport"
)

// Re-export the result types a caller needs, so callers of this
// package never have to import the internal packages directly.
type (
	Database  = seqdb.Database
	Matrix    = distmat.Matrix
	GuideTree = phylo.GuideTree
	Table     = scoring.Table
	CoreError = core.Error
)

// Tables lists the scoring table catalog's canonical names.
func Tables() []string { return scoring.List() }

// Algorithms lists the pairwise engine's registered algorithm names.
func Algorithms() []string { return pairwise.Algorithms() }

// pairwiseStage adapts internal/pairwise.Engine to pipeline.Module.
type pairwiseStage struct {
	db *Database
}

func (pairwiseStage) Name() string      { return "pairwise" }
func (pairwiseStage) InputTag() string  { return pipeline.Root }
func (pairwiseStage) OutputTag() string { return "distmat" }

func (s pairwiseStage) Check(ctx *pipeline.Context) bool {
	if ctx.Transport == nil || s.db == nil {
		return false
	}
	_, err := scoring.Lookup(ctx.TableName)
	return err == nil
}

func (s pairwiseStage) Run(ctx *pipeline.Context, in pipeline.Conduit) (pipeline.Conduit, error) {
	table, err := scoring.Lookup(ctx.TableName)
	if err != nil {
		return pipeline.Conduit{}, err
	}
	m, err := pairwise.NewEngine().Run(ctx.Transport, s.db, table, ctx.AlgorithmName)
	if err != nil {
		return pipeline.Conduit{}, err
	}
	return pipeline.Conduit{Tag: "distmat", Value: m}, nil
}

// result bundles the pipeline's two outputs: the distance matrix and
// the guide tree. Carrying both forward as one conduit value lets
// phyloStage reuse the matrix pairwiseStage already built instead of
// the pipeline discarding it.
type result struct {
	matrix *distmat.Matrix
	tree   *phylo.GuideTree
}

// phyloStage adapts internal/phylo.Build to pipeline.Module.
type phyloStage struct{}

func (phyloStage) Name() string      { return "phylogeny" }
func (phyloStage) InputTag() string  { return "distmat" }
func (phyloStage) OutputTag() string { return "guidetree" }

func (phyloStage) Check(ctx *pipeline.Context) bool { return ctx.Transport != nil }

func (phyloStage) Run(ctx *pipeline.Context, in pipeline.Conduit) (pipeline.Conduit, error) {
	m := in.Value.(*distmat.Matrix)
	tree, err := phylo.Build(ctx.Transport, m)
	if err != nil {
		return pipeline.Conduit{}, err
	}
	return pipeline.Conduit{Tag: "guidetree", Value: result{matrix: m, tree: tree}}, nil
}

// Align runs the pairwise -> phylogeny pipeline over an
// already-built Database, under the named scoring table and pairwise
// algorithm, rank-collective across tr. Pass transport.NewLocal() for a
// single-process run.
func Align(tr transport.Transport, db *Database, tableName, algorithmName string) (*Matrix, *GuideTree, error) {
	p, err := pipeline.New(pairwiseStage{db: db}, phyloStage{})
	if err != nil {
		return nil, nil, err
	}

	out, err := p.Run(&pipeline.Context{Transport: tr, TableName: tableName, AlgorithmName: algorithmName})
	if err != nil {
		return nil, nil, err
	}

	r := out.Value.(result)
	return r.matrix, r.tree, nil
}
