// Package pipeline provides a sequential composition of named steps.
//
// A pipeline is built once from an ordered list of step descriptors and is
// then invoked as a single unit: the initial value is handed to the first
// step, each step's result becomes the input of the next one, and the value
// returned by the last step is the result of the invocation. Steps run
// strictly in declaration order, on the caller's goroutine, with no
// branching, skipping or parallelism.
//
// A step names either a directly callable target or an operation exposed by
// the target under a configured name. Resolution happens lazily, when the
// step is reached during an invocation, so a target may be completed after
// the pipeline is constructed. Step names are display labels for
// introspection and debugging only and never influence execution.
//
// The pipeline stops at the first error. A fault raised by a step is
// returned to the caller untouched, with no retry, partial result or
// rollback of the steps that already ran.
//
// Observation is opt-in through pipeline options: the drawer subpackage
// renders the step sequence as an SVG graph and the measure subpackage
// records per step timings across invocations.
package pipeline
