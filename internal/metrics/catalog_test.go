package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGroupAndKeyUniqueness(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	groupNames := make(map[string]bool)
	metricKeys := make(map[string]bool)
	for _, g := range catalog {
		assert.False(t, groupNames[g.Name()], "duplicate group %s", g.Name())
		groupNames[g.Name()] = true
		require.NotEmpty(t, g.Metrics(), "group %s has no metrics", g.Name())
		for _, m := range g.Metrics() {
			assert.False(t, metricKeys[m.Key()], "duplicate metric key %s", m.Key())
			metricKeys[m.Key()] = true
		}
	}

	// The fixed sections of spec'd reporting output.
	for _, want := range []string{"bytes", "functions", "varnodes", "varnodes_decomposed", "array_comparisons"} {
		assert.True(t, groupNames[want], "missing group %s", want)
	}
	assert.True(t, groupNames["varnodes_metatype_INT"])
	assert.True(t, groupNames["varnodes_decomposed_metatype_POINTER"])
}

func TestCatalogPerTierMetricsCaptureTheirOwnLevel(t *testing.T) {
	s := newSession(richFixture())

	var varnodes *MetricsGroup
	for _, g := range Catalog() {
		if g.Name() == "varnodes" {
			varnodes = g
		}
	}
	require.NotNil(t, varnodes)

	// If every per-tier closure captured the same loop variable they
	// would all report the final tier's count. The fixture has exactly
	// one record per populated tier, so the counts must differ from a
	// constant sequence.
	counts := make(map[string]float64)
	for _, m := range varnodes.Metrics() {
		if !strings.Contains(m.Key(), ".matched_at.") {
			continue
		}
		v, ok := m.Compute(s).Float64()
		require.True(t, ok)
		counts[m.Key()] = v
	}
	assert.Equal(t, 1.0, counts["varnodes.matched_at.no_match"])
	assert.Equal(t, 1.0, counts["varnodes.matched_at.overlap"])
	assert.Equal(t, 0.0, counts["varnodes.matched_at.subset"])
	assert.Equal(t, 1.0, counts["varnodes.matched_at.aligned"])
	assert.Equal(t, 1.0, counts["varnodes.matched_at.match"])
}

func TestCatalogFlipFlipYieldsIdenticalResults(t *testing.T) {
	cmp := richFixture()
	s := newSession(cmp)
	doubleFlipped := newSession(cmp.Flip().Flip())

	for _, g := range Catalog() {
		want := g.ComputeResults(s)
		got := g.ComputeResults(doubleFlipped)
		assert.Equal(t, want, got, "group %s differs after double flip", g.Name())
	}
}

func TestCatalogFractionsWithinUnitInterval(t *testing.T) {
	s := newSession(richFixture())

	for _, g := range Catalog() {
		for _, m := range g.Metrics() {
			key := m.Key()
			if !strings.Contains(key, "fraction") && !strings.Contains(key, "ratio") && !strings.Contains(key, "score") {
				continue
			}
			if strings.Contains(key, "error") {
				continue // error ratios may exceed 1
			}
			v, ok := m.Compute(s).Float64()
			if !ok {
				continue
			}
			assert.GreaterOrEqual(t, v, 0.0, "%s", key)
			assert.LessOrEqual(t, v, 1.0, "%s", key)
		}
	}
}
