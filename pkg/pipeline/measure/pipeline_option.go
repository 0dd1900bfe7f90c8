package measure

import (
	"time"

	"github.com/askiada/go-compose/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStep.Name)
	pm.AddMetric(model.EndStep.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStep(parent, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) OnStepDone(parent, step *model.StepInfo, elapsed time.Duration) error {
	pm.GetMetric(step.Name).AddDuration(elapsed)

	return nil
}

func (pm *pipelineMeasure) AfterInvoke(total time.Duration) error {
	pm.AddInvocation(total)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure attaches m to a pipeline, recording how long each step
// takes and the total duration of every invocation.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
