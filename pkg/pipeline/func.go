package pipeline

// Func is the resolved form of a step: it receives the running value as its
// leading argument, plus optional extra arguments, and returns the next
// running value. Only the first step of a pipeline ever receives extra
// arguments.
type Func func(v any, extra ...any) (any, error)

// Transform lifts a pure transformation into a Func.
func Transform(fn func(v any) any) Func {
	return func(v any, _ ...any) (any, error) {
		return fn(v), nil
	}
}

// Apply lifts a fallible transformation into a Func.
func Apply(fn func(v any) (any, error)) Func {
	return func(v any, _ ...any) (any, error) {
		return fn(v)
	}
}

// Bind fixes trailing arguments of fn ahead of time, returning a Func that
// no longer needs them supplied at invocation. Extra arguments passed at
// invocation are appended after the fixed ones.
func Bind(fn Func, fixed ...any) Func {
	return func(v any, extra ...any) (any, error) {
		args := make([]any, 0, len(fixed)+len(extra))
		args = append(args, fixed...)
		args = append(args, extra...)

		return fn(v, args...)
	}
}
