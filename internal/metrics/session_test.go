package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

func TestComparableRecordsMemoized(t *testing.T) {
	s := newSession(richFixture())

	first := s.ComparableRecords(GranularityWhole)
	second := s.ComparableRecords(GranularityWhole)
	require.NotEmpty(t, first)
	assert.True(t, &first[0] == &second[0], "repeated selection must return the cached slice")

	// Different granularity is a different cache key.
	prim := s.ComparableRecords(GranularityDecomposed)
	assert.NotEqual(t, len(first), len(prim))
}

func TestFlippedSelectionsDoNotAliasCacheEntries(t *testing.T) {
	cmp := richFixture()
	s := newSession(cmp)

	truthSide := s.ComparableVarnodes(SideTruth, GranularityWhole)
	recovSide := s.ComparableVarnodes(SideRecovered, GranularityWhole)
	assert.NotEqual(t, truthSide, recovSide)

	// Flipping twice lands on the original cache key and selections.
	doubleFlipped := newSession(cmp.Flip().Flip())
	assert.Equal(t, truthSide, doubleFlipped.ComparableVarnodes(SideTruth, GranularityWhole))
}

func TestConcurrentSelectionIsSafe(t *testing.T) {
	s := newSession(richFixture())

	var wg sync.WaitGroup
	results := make([][]*compare.VarnodeCompareRecord, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.ComparableRecords(GranularityWhole)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Len(t, r, len(results[0]))
	}
}

func TestRequireMatchedFunctionOption(t *testing.T) {
	truth := &model.Program{Name: "truth"}
	tmain := addFunction(truth, "main", 0x1000)
	thelper := addFunction(truth, "helper", 0x1100)
	a := addLocal(tmain, "a", false, stackAddr(8), intType())
	addLocal(thelper, "h", false, stackAddr(8), intType())
	g := addGlobal(truth, absAddr(0x2000), intType())

	recov := &model.Program{Name: "decomp"}
	rmain := addFunction(recov, "main", 0x1000)
	ra := addLocal(rmain, "a", false, stackAddr(8), intType())

	cmp := compare.NewProgramComparison(truth, recov,
		[]compare.FunctionMatch{{Left: tmain, Right: rmain}},
		[]*compare.VarnodeCompare2{pair(a, ra, compare.VarnodeMatch)})

	// Default: the unmatched helper's varnode still counts.
	assert.Len(t, newSession(cmp).ComparableRecords(GranularityWhole), 3)

	// With the option on, only matched-function varnodes and globals
	// remain.
	restricted := NewSession(cmp, Options{RequireMatchedFunction: true})
	records := restricted.ComparableRecords(GranularityWhole)
	require.Len(t, records, 2)
	for _, r := range records {
		vn := r.Varnode()
		assert.True(t, vn == g || vn.Var.Function == tmain)
	}
}
