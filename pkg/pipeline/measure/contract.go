package measure

import (
	"time"

	"github.com/google/uuid"
)

// Measure collects per step metrics and per invocation totals for a
// pipeline.
type Measure interface {
	// AddMetric registers a metric for a step name. Registering the same
	// name twice returns the existing metric, since step names are not
	// required to be unique.
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	// AddInvocation records the total duration of one completed
	// invocation.
	AddInvocation(total time.Duration)
	Invocations() []Invocation
}

// Metric accumulates the durations of one step across invocations.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	TotalDuration() time.Duration
	Count() int64
}

// Invocation is the record of one completed pipeline invocation.
type Invocation struct {
	ID    uuid.UUID
	Total time.Duration
}
