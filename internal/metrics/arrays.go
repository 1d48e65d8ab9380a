package metrics

import (
	"math"

	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

// Array metrics are always computed at whole granularity: an array that
// was decomposed no longer exists as an array.

// ArrayRecordsTruth returns the comparable records whose ground-truth
// varnode is ARRAY-typed.
func ArrayRecordsTruth(s *Session) []*compare.VarnodeCompareRecord {
	return s.ComparableRecordsMetatype(GranularityWhole, model.MetaTypeArray)
}

// ArrayRecordsInferred returns the subset of ArrayRecordsTruth where
// the decompiler inferred some array for the varnode, whatever its
// shape: at least one of the record's comparisons has an ARRAY-typed
// recovered side.
func ArrayRecordsInferred(s *Session) []*compare.VarnodeCompareRecord {
	var out []*compare.VarnodeCompareRecord
	for _, r := range ArrayRecordsTruth(s) {
		for _, c := range r.Comparisons() {
			if c.Right().MetaType() == model.MetaTypeArray {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ArrayInferredFraction is the fraction of ground-truth array varnodes
// for which the decompiler inferred an array, undefined when the truth
// set is empty.
func ArrayInferredFraction(s *Session) Value {
	return Ratio(float64(len(ArrayRecordsInferred(s))), float64(len(ArrayRecordsTruth(s))))
}

// ArrayComparisons returns the pairwise comparisons with ARRAY-typed
// varnodes on both sides.
func ArrayComparisons(s *Session) []*compare.VarnodeCompare2 {
	return s.ArrayComparisons()
}

// MeanOverArrayComparisons averages f across the array comparison set.
// Comparisons where f is undefined are left out of the mean; the mean
// itself is undefined when no comparison yields a defined value.
func MeanOverArrayComparisons(s *Session, f func(*compare.VarnodeCompare2) Value) Value {
	cmps := s.ArrayComparisons()
	vs := make([]Value, 0, len(cmps))
	for _, c := range cmps {
		vs = append(vs, f(c))
	}
	return Mean(vs)
}

// ArrayElementsError is the absolute element-count difference of one
// array comparison.
func ArrayElementsError(c *compare.VarnodeCompare2) Value {
	diff := c.Left().Type.NumElements - c.Right().Type.NumElements
	return Number(math.Abs(float64(diff)))
}

// ArrayElementsErrorRatio is the element-count error relative to the
// ground-truth element count, undefined when that count is zero.
func ArrayElementsErrorRatio(c *compare.VarnodeCompare2) Value {
	err, _ := ArrayElementsError(c).Float64()
	return Ratio(err, float64(c.Left().Type.NumElements))
}

// ArraySizeError is the absolute byte-size difference of one array
// comparison.
func ArraySizeError(c *compare.VarnodeCompare2) Value {
	return Number(math.Abs(float64(c.Left().Size - c.Right().Size)))
}

// ArraySizeErrorRatio is the byte-size error relative to the
// ground-truth size, undefined when that size is zero.
func ArraySizeErrorRatio(c *compare.VarnodeCompare2) Value {
	err, _ := ArraySizeError(c).Float64()
	return Ratio(err, float64(c.Left().Size))
}

// ArrayDimensionMatchRatio is the fraction of array comparisons whose
// two sides agree on dimensionality, undefined when the set is empty.
func ArrayDimensionMatchRatio(s *Session) Value {
	cmps := s.ArrayComparisons()
	if len(cmps) == 0 {
		return Undefined()
	}
	matches := 0
	for _, c := range cmps {
		if c.Left().Type.NumDimensions() == c.Right().Type.NumDimensions() {
			matches++
		}
	}
	return Number(float64(matches) / float64(len(cmps)))
}

// subtypeComparison pairs the element types of the two sides of an
// array comparison as a degenerate zero-offset datatype comparison.
func subtypeComparison(c *compare.VarnodeCompare2) *compare.DataTypeCompare2 {
	return compare.NewDataTypeCompare2(c.Left().Type.Base, c.Right().Type.Base, 0)
}

// ArraySubtypeMatchRatio is the fraction of array comparisons whose
// element types compare at or above the given level, undefined when
// the set is empty.
func ArraySubtypeMatchRatio(s *Session, level compare.DataTypeCompareLevel) Value {
	cmps := s.ArrayComparisons()
	if len(cmps) == 0 {
		return Undefined()
	}
	matches := 0
	for _, c := range cmps {
		if subtypeComparison(c).CompareLevel() >= level {
			matches++
		}
	}
	return Number(float64(matches) / float64(len(cmps)))
}

// ArraySubtypeAvgCompareLevel averages the element-type compare level
// across the array comparison set, undefined when the set is empty.
func ArraySubtypeAvgCompareLevel(s *Session) Value {
	cmps := s.ArrayComparisons()
	if len(cmps) == 0 {
		return Undefined()
	}
	sum := 0
	for _, c := range cmps {
		sum += int(subtypeComparison(c).CompareLevel())
	}
	return Number(float64(sum) / float64(len(cmps)))
}

// ArraySubtypeAvgCompareScore normalizes the average element-type
// compare level via the datatype taxonomy.
func ArraySubtypeAvgCompareScore(s *Session) Value {
	return DataTypeCompareScore(ArraySubtypeAvgCompareLevel(s))
}
