package metrics

import "fmt"

// ComputeFunc computes one metric value against a session.
type ComputeFunc func(*Session) Value

// Metric pairs a display name with a compute function. Metrics are
// identified by an explicit key assigned at registration, never by the
// identity of the compute function.
type Metric struct {
	key         string
	displayName string
	compute     ComputeFunc
}

// NewMetric builds a metric. The key must be unique within the
// catalog.
func NewMetric(key, displayName string, compute ComputeFunc) Metric {
	return Metric{key: key, displayName: displayName, compute: compute}
}

// Key returns the metric's unique identity.
func (m Metric) Key() string { return m.key }

// DisplayName returns the human-readable metric name.
func (m Metric) DisplayName() string { return m.displayName }

// Compute evaluates the metric against a session.
func (m Metric) Compute(s *Session) Value { return m.compute(s) }

// Equal reports whether two metrics are the same metric, by key.
func (m Metric) Equal(other Metric) bool { return m.key == other.key }

func (m Metric) String() string { return fmt.Sprintf("<Metric %q>", m.key) }

// MetricsGroup is a named, ordered collection of metrics. Construction
// is declarative: nothing is computed until ComputeResults runs.
type MetricsGroup struct {
	name        string
	displayName string
	metrics     []Metric
}

// NewMetricsGroup builds an empty group.
func NewMetricsGroup(name, displayName string) *MetricsGroup {
	return &MetricsGroup{name: name, displayName: displayName}
}

// Name returns the group's identifier.
func (g *MetricsGroup) Name() string { return g.name }

// DisplayName returns the group's human-readable label.
func (g *MetricsGroup) DisplayName() string { return g.displayName }

// Metrics returns the group's metrics in insertion order.
func (g *MetricsGroup) Metrics() []Metric { return g.metrics }

// Add appends a metric to the group.
func (g *MetricsGroup) Add(m Metric) {
	g.metrics = append(g.metrics, m)
}

// AddFunc builds and appends a metric in one step.
func (g *MetricsGroup) AddFunc(key, displayName string, compute ComputeFunc) {
	g.Add(NewMetric(key, displayName, compute))
}

// ComputeResults evaluates every metric of the group, in insertion
// order, against the same session.
func (g *MetricsGroup) ComputeResults(s *Session) []Value {
	results := make([]Value, 0, len(g.metrics))
	for _, m := range g.metrics {
		results = append(results, m.Compute(s))
	}
	return results
}

func (g *MetricsGroup) String() string { return fmt.Sprintf("<MetricsGroup %s>", g.name) }
