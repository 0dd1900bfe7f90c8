package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/pipeline/measure"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	last      string
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}
	pd.last = model.StartStep.Name

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parent, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parent.Name, step.Name)
	if err != nil {
		return err
	}
	pd.last = step.Name

	return nil
}

func (pd *pipelineDrawer) OnStepDone(parent, step *model.StepInfo, elapsed time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) AfterInvoke(total time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.AddLink(pd.last, model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link last step to end")
	}

	if pd.m != nil {
		err := pd.SetLabel(model.EndStep.Name, time.Since(pd.startTime).String())
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer attaches d to a pipeline. The step sequence is drawn when
// the pipeline is finished; when m is not nil, step nodes carry the
// recorded timings.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure, time.Now(), model.StartStep.Name}
}
