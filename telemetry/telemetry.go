// Package telemetry exports aggregate metrics of completed runs.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "graphviz"

// Run outcomes used as the "outcome" label.
const (
	OutcomeFound         = "found"
	OutcomeUnreachable   = "unreachable"
	OutcomeNegativeCycle = "negative_cycle"
)

// Run is the summary of one completed run.
type Run struct {
	Algo          string
	Steps         int
	NodesVisited  int
	EdgesRelaxed  int
	PathFound     bool
	NegativeCycle bool
	PathCost      float64
	WallTime      time.Duration
}

// Outcome classifies r for labelling.
func (r Run) Outcome() string {
	switch {
	case r.NegativeCycle:
		return OutcomeNegativeCycle
	case r.PathFound:
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// Collector receives completed runs.
type Collector interface {
	ObserveRun(r Run)
}

// NopCollector drops every run.
type NopCollector struct{}

// ObserveRun does nothing.
func (NopCollector) ObserveRun(Run) {}

// PrometheusCollector records runs as Prometheus metrics, labelled by
// algorithm key.
type PrometheusCollector struct {
	runs         *prometheus.CounterVec
	steps        *prometheus.HistogramVec
	nodesVisited *prometheus.HistogramVec
	edgesRelaxed *prometheus.HistogramVec
	duration     *prometheus.HistogramVec
	pathCost     *prometheus.GaugeVec

	mu      sync.RWMutex
	enabled bool
}

// NewPrometheusCollector registers the run metrics on reg (the default
// registerer when nil) under namespace (DefaultNamespace when empty).
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)
	sizes := prometheus.ExponentialBuckets(1, 4, 10) // 1 .. 262144

	return &PrometheusCollector{
		enabled: true,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed algorithm runs by outcome",
		}, []string{"algo", "outcome"}),
		steps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "steps_per_run",
			Help:      "Number of trace steps produced by one run",
			Buckets:   sizes,
		}, []string{"algo"}),
		nodesVisited: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nodes_visited",
			Help:      "Nodes visited by the end of a run",
			Buckets:   sizes,
		}, []string{"algo"}),
		edgesRelaxed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "edges_relaxed",
			Help:      "Edge relaxations performed by a run",
			Buckets:   sizes,
		}, []string{"algo"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time spent exhausting the generator",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algo"}),
		pathCost: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_path_cost",
			Help:      "Path cost of the most recent run that found a path",
		}, []string{"algo"}),
	}
}

// ObserveRun records r unless the collector is disabled.
func (c *PrometheusCollector) ObserveRun(r Run) {
	c.mu.RLock()
	enabled := c.enabled
	c.mu.RUnlock()
	if !enabled {
		return
	}

	c.runs.WithLabelValues(r.Algo, r.Outcome()).Inc()
	c.steps.WithLabelValues(r.Algo).Observe(float64(r.Steps))
	c.nodesVisited.WithLabelValues(r.Algo).Observe(float64(r.NodesVisited))
	c.edgesRelaxed.WithLabelValues(r.Algo).Observe(float64(r.EdgesRelaxed))
	c.duration.WithLabelValues(r.Algo).Observe(r.WallTime.Seconds())
	if r.PathFound && !r.NegativeCycle {
		c.pathCost.WithLabelValues(r.Algo).Set(r.PathCost)
	}
}

// Enable resumes recording.
func (c *PrometheusCollector) Enable() {
	c.mu.Lock()
	c.enabled = true
	c.mu.Unlock()
}

// Disable stops recording without unregistering the metrics.
func (c *PrometheusCollector) Disable() {
	c.mu.Lock()
	c.enabled = false
	c.mu.Unlock()
}

// Reset clears every series.
func (c *PrometheusCollector) Reset() {
	c.runs.Reset()
	c.steps.Reset()
	c.nodesVisited.Reset()
	c.edgesRelaxed.Reset()
	c.duration.Reset()
	c.pathCost.Reset()
}
