package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricIdentityByKey(t *testing.T) {
	a := NewMetric("bytes.truth", "Ground truth data bytes", func(*Session) Value { return Count(1) })
	b := NewMetric("bytes.truth", "A different display name", func(*Session) Value { return Count(2) })
	c := NewMetric("bytes.found", "Ground truth data bytes", func(*Session) Value { return Count(1) })

	assert.True(t, a.Equal(b), "metrics with the same key are the same metric")
	assert.False(t, a.Equal(c))
}

func TestMetricsGroupInsertionOrder(t *testing.T) {
	g := NewMetricsGroup("demo", "Demo group")
	g.AddFunc("demo.one", "One", func(*Session) Value { return Count(1) })
	g.AddFunc("demo.two", "Two", func(*Session) Value { return Count(2) })
	g.AddFunc("demo.three", "Three", func(*Session) Value { return Undefined() })

	keys := make([]string, 0, 3)
	for _, m := range g.Metrics() {
		keys = append(keys, m.Key())
	}
	assert.Equal(t, []string{"demo.one", "demo.two", "demo.three"}, keys)

	results := g.ComputeResults(newSession(bytesFixture()))
	require.Len(t, results, 3)
	one, _ := results[0].Float64()
	two, _ := results[1].Float64()
	assert.Equal(t, 1.0, one)
	assert.Equal(t, 2.0, two)
	assert.False(t, results[2].IsDefined())
}

func TestGroupConstructionIsLazy(t *testing.T) {
	computed := 0
	g := NewMetricsGroup("demo", "Demo group")
	g.AddFunc("demo.counter", "Counter", func(*Session) Value {
		computed++
		return Count(computed)
	})

	assert.Equal(t, 0, computed, "adding a metric must not compute it")
	g.ComputeResults(newSession(bytesFixture()))
	assert.Equal(t, 1, computed)
}
