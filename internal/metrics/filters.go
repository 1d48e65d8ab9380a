package metrics

import (
	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

// VariableBaseFilter is the base eligibility predicate for variables:
// not a parameter and backed by exactly one storage location.
func VariableBaseFilter(v *model.Variable) bool {
	return !v.IsParam() && v.IsSingleLoc()
}

// VarnodeBaseFilter is the base eligibility predicate for varnodes: the
// storage lives in the global or stack region (register-only storage is
// excluded) and the owning variable, if any, is itself eligible.
func VarnodeBaseFilter(vn *model.Varnode) bool {
	switch vn.Addr.Kind {
	case model.AddressAbsolute, model.AddressStack:
	default:
		return false
	}
	if vn.Var != nil {
		return VariableBaseFilter(vn.Var)
	}
	return true
}

// VarnodeCompareRecordBaseFilter accepts records whose ground-truth
// varnode passes the varnode base filter.
func VarnodeCompareRecordBaseFilter(r *compare.VarnodeCompareRecord) bool {
	return VarnodeBaseFilter(r.Varnode())
}

// FunctionCompareRecordComparedFilter accepts records representing a
// matched (non-missed) function.
func FunctionCompareRecordComparedFilter(r *compare.FunctionCompareRecord) bool {
	return r.IsComparison()
}
