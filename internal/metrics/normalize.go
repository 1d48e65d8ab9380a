package metrics

import "github.com/reveng-lab/decompeval/internal/compare"

// normalizeOrdinal maps a value from the closed range [min, max]
// linearly onto [0,1]. Undefined input propagates.
func normalizeOrdinal(v Value, min, max int) Value {
	x, ok := v.Float64()
	if !ok {
		return Undefined()
	}
	return Number((x - float64(min)) / float64(max-min))
}

// VarnodeCompareScore normalizes a (possibly fractional) varnode
// compare level onto [0,1]: NO_MATCH maps to 0, a full match to 1.
func VarnodeCompareScore(level Value) Value {
	scale := compare.VarnodeCompareLevels()
	return normalizeOrdinal(level, int(scale[0]), int(scale[len(scale)-1]))
}

// DataTypeCompareScore normalizes a datatype compare level onto [0,1].
func DataTypeCompareScore(level Value) Value {
	scale := compare.DataTypeCompareLevels()
	return normalizeOrdinal(level, int(scale[0]), int(scale[len(scale)-1]))
}
