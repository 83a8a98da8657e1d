// Package pipeline implements a module runner: an ordered chain of
// stages whose composition is validated once, before any stage produces
// a side effect, then executed in strict order with the output conduit
// of one stage moved into the next.
package pipeline

// Conduit is a typed value moved from one pipeline stage to the next.
// It carries a Tag identifying its logical type so Pipeline construction
// can validate that consecutive stages agree on what they hand off,
// without Go generics forcing every caller onto one concrete conduit
// type.
type Conduit struct {
	Tag   string
	Value any
}

// Root is the conduit tag accepted by a pipeline's first stage, which
// has no real predecessor.
const Root = "root"
