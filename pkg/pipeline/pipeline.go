package pipeline

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/pipeline/model"
)

// Pipeline is an ordered, immutable sequence of steps exposed as a single
// callable. It is constructed once and may be invoked any number of times;
// it holds no mutable state of its own, so concurrent invocations are safe
// whenever the step targets are.
type Pipeline struct {
	steps []Step
	infos []*model.StepInfo
	opts  []model.PipelineOption
}

// New creates a pipeline from steps, in declaration order. The step list
// may be empty, in which case invocation is the identity on its input.
// Descriptors are stored as-is: whether a target is actually callable is
// discovered when the step is reached during an invocation.
func New(steps []Step, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		steps: append([]Step(nil), steps...),
		opts:  opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	pipe.infos = make([]*model.StepInfo, 0, len(pipe.steps))

	parent := model.StartStep
	for idx, step := range pipe.steps {
		info, err := prepareStep(pipe.opts, parent, step, idx)
		if err != nil {
			return nil, err
		}
		pipe.infos = append(pipe.infos, info)
		parent = info
	}

	return pipe, nil
}

func prepareStep(opts []model.PipelineOption, parent *model.StepInfo, step Step, idx int) (*model.StepInfo, error) {
	info := &model.StepInfo{
		Kind:  model.StepKind,
		Name:  step.name,
		Index: idx,
	}
	for _, opt := range opts {
		err := opt.PrepareStep(parent, info)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to prepare step %q", step.name)
		}
	}

	return info, nil
}

// Invoke threads initial through every step in declaration order and
// returns the value produced by the last one. The extra arguments are
// forwarded to the first step only; every later step receives just the
// running value. A resolution error or a step fault stops the invocation at
// that step, and no later step runs. Step faults are returned to the caller
// untouched.
func (p *Pipeline) Invoke(initial any, extra ...any) (any, error) {
	current := initial
	parent := model.StartStep
	start := time.Now()

	for idx, step := range p.steps {
		fn, err := step.resolve()
		if err != nil {
			return nil, err
		}

		stepStart := time.Now()
		if idx == 0 {
			current, err = fn(current, extra...)
		} else {
			current, err = fn(current)
		}
		if err != nil {
			return nil, err
		}

		for _, opt := range p.opts {
			optErr := opt.OnStepDone(parent, p.infos[idx], time.Since(stepStart))
			if optErr != nil {
				return nil, errors.Wrapf(optErr, "unable to observe step %q", step.name)
			}
		}
		parent = p.infos[idx]
	}

	for _, opt := range p.opts {
		err := opt.AfterInvoke(time.Since(start))
		if err != nil {
			return nil, errors.Wrap(err, "unable to observe invocation")
		}
	}

	return current, nil
}

// With returns a new pipeline with the extra steps appended after the
// receiver's. The receiver is not modified. Options attached to the
// receiver are shared with the derived pipeline and see the appended steps.
func (p *Pipeline) With(steps ...Step) (*Pipeline, error) {
	next := &Pipeline{
		steps: append(append([]Step(nil), p.steps...), steps...),
		infos: append([]*model.StepInfo(nil), p.infos...),
		opts:  p.opts,
	}

	parent := model.StartStep
	if len(p.infos) > 0 {
		parent = p.infos[len(p.infos)-1]
	}
	for i, step := range steps {
		info, err := prepareStep(next.opts, parent, step, len(p.steps)+i)
		if err != nil {
			return nil, err
		}
		next.infos = append(next.infos, info)
		parent = info
	}

	return next, nil
}

// Names returns the step labels in declaration order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.name)
	}

	return names
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Finish runs the Finish hook of every attached option. Call after the last
// invocation to flush observers such as the drawer.
func (p *Pipeline) Finish() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
