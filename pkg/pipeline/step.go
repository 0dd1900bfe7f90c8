package pipeline

import (
	"github.com/pkg/errors"
)

// Caller is the default call convention: a target implementing Caller can
// be used in a step without naming an operation.
type Caller interface {
	Call(v any, extra ...any) (any, error)
}

// Resolver is implemented by targets exposing named operations. Which
// operation a step invokes is decided by configuration, not by the
// compile-time type of the target.
type Resolver interface {
	// Resolve returns the operation registered under op, or false when the
	// target does not know it.
	Resolve(op string) (Func, bool)
}

// MethodSet is a ready-made Resolver over a plain map of operations.
type MethodSet map[string]Func

func (m MethodSet) Resolve(op string) (Func, bool) {
	fn, ok := m[op]

	return fn, ok
}

// Step describes one stage of a pipeline: a display name, a target and
// optionally the name of the operation to invoke on the target. The step
// holds a non-owning reference to the target, which must stay valid for
// every invocation of the pipeline.
type Step struct {
	target any
	name   string
	op     string
}

// NewStep creates a step whose target is invoked with the default call
// convention. The target must be a Func, a compatible function value or a
// Caller; this is only checked when the step is reached during an
// invocation.
func NewStep(name string, target any) Step {
	return Step{name: name, target: target}
}

// NewMethodStep creates a step invoking the operation registered under op
// on the target. The target must be a Resolver knowing op; this is only
// checked when the step is reached during an invocation.
func NewMethodStep(name string, target any, op string) Step {
	return Step{name: name, target: target, op: op}
}

// Name returns the step's display label.
func (s Step) Name() string {
	return s.name
}

// resolve maps the descriptor to the concrete callable to run.
func (s Step) resolve() (Func, error) {
	if s.op != "" {
		res, ok := s.target.(Resolver)
		if !ok {
			return nil, errors.Wrapf(ErrNotResolvable, "step %q", s.name)
		}

		fn, ok := res.Resolve(s.op)
		if !ok || fn == nil {
			return nil, errors.Wrapf(ErrUnknownOperation, "step %q, operation %q", s.name, s.op)
		}

		return fn, nil
	}

	switch target := s.target.(type) {
	case Func:
		return target, nil
	case func(v any, extra ...any) (any, error):
		return target, nil
	case Caller:
		return target.Call, nil
	}

	return nil, errors.Wrapf(ErrNotCallable, "step %q", s.name)
}
