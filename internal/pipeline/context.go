package pipeline

import "github.com/rodriados/msa/internal/transport"

// Context carries the configuration every stage needs: which cluster
// transport to run collectives on, and which scoring table / algorithm
// name the caller selected. It is passed by reference through Check and
// Run so a stage can read (never mutate) the run's configuration.
type Context struct {
	Transport     transport.Transport
	TableName     string
	AlgorithmName string
}
