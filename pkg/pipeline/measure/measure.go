package measure

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type DefaultMeasure struct {
	mu          sync.Mutex
	steps       map[string]Metric
	invocations []Invocation
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		all[name] = mt
	}

	return all
}

func (m *DefaultMeasure) AddInvocation(total time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invocations = append(m.invocations, Invocation{
		ID:    uuid.New(),
		Total: total,
	})
}

func (m *DefaultMeasure) Invocations() []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Invocation(nil), m.invocations...)
}

var _ Measure = (*DefaultMeasure)(nil)
