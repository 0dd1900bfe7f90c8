package drawer

import (
	"github.com/askiada/go-compose/pkg/pipeline/measure"
)

// Drawer renders the step sequence of a pipeline.
type Drawer interface {
	// AddStep adds a step node. Adding the same name twice is not an
	// error, since step names are not required to be unique.
	AddStep(stepName string) error
	// AddLink adds a link between a step and its successor.
	AddLink(parentStepName, childStepName string) error
	// SetLabel attaches a label to a step node.
	SetLabel(stepName, label string) error
	// AddMeasure decorates the step nodes with the recorded timings.
	AddMeasure(measure measure.Measure) error
	// Draw writes the rendered pipeline out.
	Draw() error
}
