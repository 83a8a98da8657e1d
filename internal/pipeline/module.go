package pipeline

// Module is one pipeline stage.
//
// A module declares the Conduit tag it expects from its predecessor
// (InputTag) and the tag it produces (OutputTag), so the Pipeline
// constructor can validate the whole chain's composition once, up
// front — a runtime tag check standing in for the compile-time
// predecessor-type deduction a generic chain would otherwise need.
type Module interface {
	// Name identifies the stage for error messages and logging.
	Name() string
	// InputTag is the Conduit.Tag this module expects as input.
	// The first module in a chain should expect Root.
	InputTag() string
	// OutputTag is the Conduit.Tag this module produces.
	OutputTag() string
	// Check performs pre-flight validation against the pipeline's
	// configuration. If it returns false, the Pipeline fails with
	// PipelineInvalid before any stage runs.
	Check(ctx *Context) bool
	// Run executes the stage body, consuming in and producing the next
	// conduit. It is only ever called after every stage's Check passed.
	Run(ctx *Context, in Conduit) (Conduit, error)
}
