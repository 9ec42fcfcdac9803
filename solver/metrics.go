package solver

import (
	"sync/atomic"
	"time"
)

type RunMetrics struct {
	StartTime     time.Time
	Duration      time.Duration
	Steps         int64
	Rewards       int64
	Explorations  int64
	Exploitations int64
	Regret        float64
}

// Collector gathers run statistics. It also satisfies strategy.Observer so
// the same value can be handed to a strategy to count its decisions.
type Collector interface {
	Start()
	AddStep(reward int)
	Explored(arm int)
	Exploited(arm int)
	Complete(regret float64) RunMetrics
}

type metricsCollector struct {
	startTime     time.Time
	steps         atomic.Int64
	rewards       atomic.Int64
	explorations  atomic.Int64
	exploitations atomic.Int64
}

func NewMetricsCollector() Collector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.steps.Store(0)
	m.rewards.Store(0)
	m.explorations.Store(0)
	m.exploitations.Store(0)
}

func (m *metricsCollector) AddStep(reward int) {
	m.steps.Add(1)
	m.rewards.Add(int64(reward))
}

func (m *metricsCollector) Explored(int) {
	m.explorations.Add(1)
}

func (m *metricsCollector) Exploited(int) {
	m.exploitations.Add(1)
}

func (m *metricsCollector) Complete(regret float64) RunMetrics {
	return RunMetrics{
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
		Steps:         m.steps.Load(),
		Rewards:       m.rewards.Load(),
		Explorations:  m.explorations.Load(),
		Exploitations: m.exploitations.Load(),
		Regret:        regret,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() Collector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                      {}
func (m *noMetricsCollector) AddStep(int)                 {}
func (m *noMetricsCollector) Explored(int)                {}
func (m *noMetricsCollector) Exploited(int)               {}
func (m *noMetricsCollector) Complete(float64) RunMetrics { return RunMetrics{} }
