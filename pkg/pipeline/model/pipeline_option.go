package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	// PrepareStep runs once per step, in declaration order, when the step
	// is attached to a pipeline. parent is the preceding step, or
	// StartStep for the first one.
	PrepareStep(parent, step *StepInfo) error

	// OnStepDone runs after a step returns successfully during an
	// invocation.
	OnStepDone(parent, step *StepInfo, elapsed time.Duration) error

	// AfterInvoke runs after a whole invocation returns successfully.
	AfterInvoke(total time.Duration) error

	// Finish runs when the pipeline is finished with, via Pipeline.Finish.
	Finish() error
}
