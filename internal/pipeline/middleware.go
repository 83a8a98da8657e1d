package pipeline

import "log"

// Middleware decorates a Module, producing a new Module that may run
// extra logic around the wrapped stage, or skip calling it entirely
// (short-circuit). Middlewares compose like onion layers around the
// stage they wrap.
type Middleware func(Module) Module

// Decorate applies middlewares to m in the order given, so the first
// middleware is the outermost layer (it sees the call first and the
// result last).
func Decorate(m Module, mws ...Middleware) Module {
	for i := len(mws) - 1; i >= 0; i-- {
		m = mws[i](m)
	}
	return m
}

// loggingModule wraps a Module with before/after progress lines on the
// injected *log.Logger.
type loggingModule struct {
	Module
	logger *log.Logger
}

// WithLogging logs a line before and after the wrapped stage's Run,
// and on failure.
func WithLogging(logger *log.Logger) Middleware {
	return func(next Module) Module {
		return loggingModule{Module: next, logger: logger}
	}
}

func (m loggingModule) Run(ctx *Context, in Conduit) (Conduit, error) {
	m.logger.Printf("%s: starting (in=%s)", m.Module.Name(), in.Tag)
	out, err := m.Module.Run(ctx, in)
	if err != nil {
		m.logger.Printf("%s: failed: %v", m.Module.Name(), err)
		return out, err
	}
	m.logger.Printf("%s: done (out=%s)", m.Module.Name(), out.Tag)
	return out, nil
}

// skipModule bubbles to the wrapped stage unless predicate reports
// true, in which case it short-circuits: the conduit passes through
// untouched but relabeled with this stage's declared output tag, so
// downstream composition still holds even though the stage body never
// ran.
type skipModule struct {
	Module
	predicate func(ctx *Context) bool
}

// SkipWhen short-circuits the wrapped stage whenever predicate(ctx) is
// true.
func SkipWhen(predicate func(ctx *Context) bool) Middleware {
	return func(next Module) Module {
		return skipModule{Module: next, predicate: predicate}
	}
}

func (m skipModule) Run(ctx *Context, in Conduit) (Conduit, error) {
	if m.predicate(ctx) {
		return Conduit{Tag: m.Module.OutputTag(), Value: in.Value}, nil
	}
	return m.Module.Run(ctx, in)
}
