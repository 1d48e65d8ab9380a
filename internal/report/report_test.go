package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/metrics"
	"github.com/reveng-lab/decompeval/internal/model"
)

func emptySession() *metrics.Session {
	cmp := compare.NewProgramComparison(&model.Program{Name: "truth"}, &model.Program{Name: "decomp"}, nil, nil)
	return metrics.NewSession(cmp, metrics.Options{})
}

func demoCatalog() []*metrics.MetricsGroup {
	g := metrics.NewMetricsGroup("demo", "Demo group")
	g.AddFunc("demo.count", "A count", func(*metrics.Session) metrics.Value {
		return metrics.Count(3)
	})
	g.AddFunc("demo.undefined", "An undefined ratio", func(*metrics.Session) metrics.Value {
		return metrics.Undefined()
	})
	return []*metrics.MetricsGroup{g}
}

func TestBuildPreservesOrder(t *testing.T) {
	r := Build(metrics.Catalog(), emptySession())

	var names []string
	for _, g := range r.Groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, "bytes", names[0])
	assert.Equal(t, "functions", names[1])
	assert.Equal(t, "varnodes", names[2])
	assert.Equal(t, "array_comparisons", names[len(names)-1])

	for _, g := range r.Groups {
		assert.NotEmpty(t, g.Metrics, "group %s", g.Name)
	}
}

func TestWriteJSONRendersUndefinedAsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(demoCatalog(), emptySession())))

	var decoded struct {
		Groups []struct {
			Name    string `json:"name"`
			Metrics []struct {
				Key   string   `json:"key"`
				Value *float64 `json:"value"`
			} `json:"metrics"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Groups, 1)
	require.Len(t, decoded.Groups[0].Metrics, 2)

	count := decoded.Groups[0].Metrics[0]
	require.NotNil(t, count.Value)
	assert.Equal(t, 3.0, *count.Value)

	undefined := decoded.Groups[0].Metrics[1]
	assert.Nil(t, undefined.Value, "undefined metrics must serialize as null")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(demoCatalog(), emptySession())))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Demo group"))
	assert.True(t, strings.Contains(out, "A count"))
	assert.True(t, strings.Contains(out, "undefined"))
}
