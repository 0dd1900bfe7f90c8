package pipeline_test

import (
	"github.com/askiada/go-compose/pkg/pipeline"
)

// calculator exposes named operations for method steps.
type calculator struct {
	offset int
}

func (c *calculator) add(v any, _ ...any) (any, error) {
	return v.(int) + c.offset, nil
}

func (c *calculator) Resolve(op string) (pipeline.Func, bool) {
	switch op {
	case "add":
		return c.add, true
	default:
		return nil, false
	}
}

// doubler is invokable with the default call convention.
type doubler struct{}

func (doubler) Call(v any, _ ...any) (any, error) {
	return v.(int) * 2, nil
}

// dualDoubler exposes its own call operator both directly and as a named
// operation.
type dualDoubler struct {
	doubler
}

func (d dualDoubler) Resolve(op string) (pipeline.Func, bool) {
	if op == "call" {
		return d.Call, true
	}

	return nil, false
}

func increment(amount int) pipeline.Func {
	return func(v any, _ ...any) (any, error) {
		return v.(int) + amount, nil
	}
}

func multiplyBy(factor int) pipeline.Func {
	return func(v any, _ ...any) (any, error) {
		return v.(int) * factor, nil
	}
}

// multiply multiplies the running value by every extra argument.
func multiply(v any, extra ...any) (any, error) {
	product := v.(int)
	for _, factor := range extra {
		product *= factor.(int)
	}

	return product, nil
}
