package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int64
	Expansions   int64
	FullPlayouts int64
	TreeSize     int
	Interrupted  bool
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddExpansion()
	AddFullPlayout()
	Interrupt()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime    time.Time
	episodes     atomic.Int64
	expansions   atomic.Int64
	fullPlayouts atomic.Int64
	interrupted  atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new search.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.expansions.Store(0)
	m.fullPlayouts.Store(0)
	m.interrupted.Store(false)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) Interrupt() {
	m.interrupted.Store(true)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes.Load(),
		Expansions:   m.expansions.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
		Interrupted:  m.interrupted.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddEpisode()           {}
func (m *noMetricsCollector) AddExpansion()         {}
func (m *noMetricsCollector) AddFullPlayout()       {}
func (m *noMetricsCollector) Interrupt()            {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
