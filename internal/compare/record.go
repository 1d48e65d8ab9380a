package compare

import "github.com/reveng-lab/decompeval/internal/model"

// VarnodeCompareRecord associates one ground-truth varnode with the
// pairwise comparisons the engine found for it. A varnode with no
// comparisons carries the NO_MATCH sentinel level.
type VarnodeCompareRecord struct {
	varnode     *model.Varnode
	comparisons []*VarnodeCompare2
}

func newVarnodeCompareRecord(vn *model.Varnode, comparisons []*VarnodeCompare2) *VarnodeCompareRecord {
	return &VarnodeCompareRecord{varnode: vn, comparisons: comparisons}
}

// Varnode returns the record's ground-truth varnode.
func (r *VarnodeCompareRecord) Varnode() *model.Varnode { return r.varnode }

// Comparisons returns the pairwise comparisons subsumed by the record.
func (r *VarnodeCompareRecord) Comparisons() []*VarnodeCompare2 { return r.comparisons }

// CompareLevel returns the strongest match level among the record's
// comparisons, or NO_MATCH when there are none.
func (r *VarnodeCompareRecord) CompareLevel() VarnodeCompareLevel {
	level := VarnodeNoMatch
	for _, c := range r.comparisons {
		if c.CompareLevel() > level {
			level = c.CompareLevel()
		}
	}
	return level
}

// BytesOverlapped sums the byte overlap of the record's comparisons.
// When one ground-truth varnode matches several recovered varnodes the
// regions may double-count; consumers are expected to clamp.
func (r *VarnodeCompareRecord) BytesOverlapped() int {
	total := 0
	for _, c := range r.comparisons {
		total += c.BytesOverlapped()
	}
	return total
}

// FunctionCompareRecord associates a ground-truth function with its
// matched recovered function, if any.
type FunctionCompareRecord struct {
	function *model.Function
	matched  *model.Function
}

// Function returns the record's ground-truth function.
func (r *FunctionCompareRecord) Function() *model.Function { return r.function }

// Matched returns the recovered counterpart, or nil when missed.
func (r *FunctionCompareRecord) Matched() *model.Function { return r.matched }

// IsComparison reports whether the function was matched at all.
func (r *FunctionCompareRecord) IsComparison() bool { return r.matched != nil }
