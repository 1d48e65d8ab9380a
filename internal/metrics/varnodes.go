package metrics

import (
	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

// VarnodesTruth returns the eligible ground-truth varnodes at the
// given granularity.
func VarnodesTruth(s *Session, g Granularity) []*model.Varnode {
	return s.ComparableVarnodes(SideTruth, g)
}

// VarnodesDecomp returns the eligible recovered varnodes.
func VarnodesDecomp(s *Session, g Granularity) []*model.Varnode {
	return s.ComparableVarnodes(SideRecovered, g)
}

// VarnodesTruthMetatype narrows VarnodesTruth to one metatype.
func VarnodesTruthMetatype(s *Session, g Granularity, mt model.MetaType) []*model.Varnode {
	return s.ComparableVarnodesMetatype(SideTruth, g, mt)
}

// VarnodesDecompMetatype narrows VarnodesDecomp to one metatype.
func VarnodesDecompMetatype(s *Session, g Granularity, mt model.MetaType) []*model.Varnode {
	return s.ComparableVarnodesMetatype(SideRecovered, g, mt)
}

func recordsAtLevel(records []*compare.VarnodeCompareRecord, level compare.VarnodeCompareLevel) []*compare.VarnodeCompareRecord {
	var out []*compare.VarnodeCompareRecord
	for _, r := range records {
		if r.CompareLevel() == level {
			out = append(out, r)
		}
	}
	return out
}

// RecordsMatchedAtLevel returns the comparable records whose level is
// exactly the given tier.
func RecordsMatchedAtLevel(s *Session, g Granularity, level compare.VarnodeCompareLevel) []*compare.VarnodeCompareRecord {
	return recordsAtLevel(s.ComparableRecords(g), level)
}

// RecordsMatchedAtLevelMetatype is RecordsMatchedAtLevel narrowed to
// records whose ground-truth varnode has one metatype.
func RecordsMatchedAtLevelMetatype(s *Session, g Granularity, level compare.VarnodeCompareLevel, mt model.MetaType) []*compare.VarnodeCompareRecord {
	return recordsAtLevel(s.ComparableRecordsMetatype(g, mt), level)
}

// RecordsMatchedAtOrAboveLevel returns the comparable records whose
// level is at least the given tier.
func RecordsMatchedAtOrAboveLevel(s *Session, g Granularity, level compare.VarnodeCompareLevel) []*compare.VarnodeCompareRecord {
	var out []*compare.VarnodeCompareRecord
	for _, r := range s.ComparableRecords(g) {
		if r.CompareLevel() >= level {
			out = append(out, r)
		}
	}
	return out
}

// VarnodesMissed returns the ground-truth varnodes no recovered
// varnode was compared against.
func VarnodesMissed(s *Session, g Granularity) []*model.Varnode {
	return recordVarnodes(RecordsMatchedAtLevel(s, g, compare.VarnodeNoMatch))
}

// VarnodesMissedMetatype narrows VarnodesMissed to one metatype.
func VarnodesMissedMetatype(s *Session, g Granularity, mt model.MetaType) []*model.Varnode {
	return recordVarnodes(RecordsMatchedAtLevelMetatype(s, g, compare.VarnodeNoMatch, mt))
}

// VarnodesExtraneous returns the recovered varnodes with no
// ground-truth counterpart: the missed varnodes of the flipped
// comparison.
func VarnodesExtraneous(s *Session, g Granularity) []*model.Varnode {
	return VarnodesMissed(s.flip(), g)
}

func recordVarnodes(records []*compare.VarnodeCompareRecord) []*model.Varnode {
	out := make([]*model.Varnode, 0, len(records))
	for _, r := range records {
		out = append(out, r.Varnode())
	}
	return out
}

func avgCompareLevel(records []*compare.VarnodeCompareRecord) Value {
	if len(records) == 0 {
		return Undefined()
	}
	sum := 0
	for _, r := range records {
		sum += int(r.CompareLevel())
	}
	return Number(float64(sum) / float64(len(records)))
}

// VarnodesAvgCompareLevel averages the integer encoding of the compare
// level across all comparable records, undefined when there are none.
func VarnodesAvgCompareLevel(s *Session, g Granularity) Value {
	return avgCompareLevel(s.ComparableRecords(g))
}

// VarnodesAvgCompareScore is the average compare level normalized onto
// [0,1].
func VarnodesAvgCompareScore(s *Session, g Granularity) Value {
	return VarnodeCompareScore(VarnodesAvgCompareLevel(s, g))
}

// VarnodesAvgCompareLevelMetatype averages record levels for one
// metatype.
func VarnodesAvgCompareLevelMetatype(s *Session, g Granularity, mt model.MetaType) Value {
	return avgCompareLevel(s.ComparableRecordsMetatype(g, mt))
}

// VarnodesAvgCompareScoreMetatype normalizes the per-metatype average
// level onto [0,1].
func VarnodesAvgCompareScoreMetatype(s *Session, g Granularity, mt model.MetaType) Value {
	return VarnodeCompareScore(VarnodesAvgCompareLevelMetatype(s, g, mt))
}
