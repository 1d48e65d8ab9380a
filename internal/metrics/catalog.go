package metrics

import (
	"fmt"
	"strings"

	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

// catalogMetatypes are the metatypes that get their own
// whole-granularity group.
var catalogMetatypes = []model.MetaType{
	model.MetaTypeInt,
	model.MetaTypeFloat,
	model.MetaTypePointer,
	model.MetaTypeArray,
	model.MetaTypeStruct,
	model.MetaTypeUnion,
}

// decomposedMetatypes are the metatypes worth reporting at decomposed
// granularity; composites no longer exist once flattened.
var decomposedMetatypes = []model.MetaType{
	model.MetaTypeInt,
	model.MetaTypeFloat,
	model.MetaTypePointer,
}

// Catalog builds the full, fixed metric catalogue: bytes, functions,
// whole varnodes, per-metatype varnodes, decomposed varnodes,
// per-metatype decomposed varnodes and arrays. Per-tier and
// per-metatype metrics are built through factories so every closure
// binds its own copy of the parameter.
func Catalog() []*MetricsGroup {
	var groups []*MetricsGroup

	bytes := NewMetricsGroup("bytes", "Data bytes recovery")
	bytes.AddFunc("bytes.truth", "Ground truth data bytes", func(s *Session) Value {
		return Count(BytesTruth(s))
	})
	bytes.AddFunc("bytes.found", "Bytes found", func(s *Session) Value {
		return Count(BytesFound(s))
	})
	bytes.AddFunc("bytes.missed", "Bytes missed", func(s *Session) Value {
		return Count(BytesMissed(s))
	})
	bytes.AddFunc("bytes.extraneous", "Bytes extraneous", func(s *Session) Value {
		return Count(BytesExtraneous(s))
	})
	bytes.AddFunc("bytes.recovery_fraction", "Bytes recovery fraction", BytesRecoveryFraction)
	groups = append(groups, bytes)

	functions := NewMetricsGroup("functions", "Function recovery")
	functions.AddFunc("functions.truth", "Ground truth functions", func(s *Session) Value {
		return Count(len(FunctionsTruth(s)))
	})
	functions.AddFunc("functions.found", "Functions found", func(s *Session) Value {
		return Count(len(FunctionsFound(s)))
	})
	functions.AddFunc("functions.missed", "Functions missed", func(s *Session) Value {
		return Count(len(FunctionsMissed(s)))
	})
	functions.AddFunc("functions.extraneous", "Functions extraneous", func(s *Session) Value {
		return Count(len(FunctionsExtraneous(s)))
	})
	functions.AddFunc("functions.recovery_fraction", "Functions recovery fraction", FunctionsRecoveryFraction)
	groups = append(groups, functions)

	groups = append(groups, varnodeGroup("varnodes", "Varnode recovery", GranularityWhole))
	for _, mt := range catalogMetatypes {
		groups = append(groups, varnodeMetatypeGroup(GranularityWhole, mt))
	}

	groups = append(groups, varnodeGroup("varnodes_decomposed", "Decomposed varnode recovery", GranularityDecomposed))
	for _, mt := range decomposedMetatypes {
		groups = append(groups, varnodeMetatypeGroup(GranularityDecomposed, mt))
	}

	groups = append(groups, arrayGroup())
	return groups
}

func granularityKey(g Granularity) string {
	if g == GranularityDecomposed {
		return "varnodes_decomposed"
	}
	return "varnodes"
}

func varnodeGroup(name, displayName string, g Granularity) *MetricsGroup {
	group := NewMetricsGroup(name, displayName)
	group.AddFunc(name+".truth", "Ground truth varnodes", varnodeTruthCount(g))
	for _, level := range compare.VarnodeCompareLevels() {
		group.AddFunc(
			fmt.Sprintf("%s.matched_at.%s", name, strings.ToLower(level.String())),
			fmt.Sprintf("Varnodes matched @ level %s", level),
			matchedAtLevelCount(g, level),
		)
	}
	group.AddFunc(name+".avg_compare_score", "Varnode average comparison score", avgCompareScore(g))
	return group
}

func varnodeMetatypeGroup(g Granularity, mt model.MetaType) *MetricsGroup {
	name := fmt.Sprintf("%s_metatype_%s", granularityKey(g), mt)
	displayName := fmt.Sprintf("Varnode recovery (metatype = %s)", mt)
	if g == GranularityDecomposed {
		displayName = fmt.Sprintf("Decomposed varnode recovery (metatype = %s)", mt)
	}

	group := NewMetricsGroup(name, displayName)
	group.AddFunc(name+".truth", "Ground truth varnodes", varnodeTruthMetatypeCount(g, mt))
	for _, level := range compare.VarnodeCompareLevels() {
		group.AddFunc(
			fmt.Sprintf("%s.matched_at.%s", name, strings.ToLower(level.String())),
			fmt.Sprintf("Varnodes matched @ level %s", level),
			matchedAtLevelMetatypeCount(g, level, mt),
		)
	}
	group.AddFunc(name+".avg_compare_score", "Varnode average comparison score", avgCompareScoreMetatype(g, mt))
	return group
}

// The factories below exist so that per-tier and per-metatype metrics
// each capture their own parameter values.

func varnodeTruthCount(g Granularity) ComputeFunc {
	return func(s *Session) Value { return Count(len(VarnodesTruth(s, g))) }
}

func varnodeTruthMetatypeCount(g Granularity, mt model.MetaType) ComputeFunc {
	return func(s *Session) Value { return Count(len(VarnodesTruthMetatype(s, g, mt))) }
}

func matchedAtLevelCount(g Granularity, level compare.VarnodeCompareLevel) ComputeFunc {
	return func(s *Session) Value { return Count(len(RecordsMatchedAtLevel(s, g, level))) }
}

func matchedAtLevelMetatypeCount(g Granularity, level compare.VarnodeCompareLevel, mt model.MetaType) ComputeFunc {
	return func(s *Session) Value { return Count(len(RecordsMatchedAtLevelMetatype(s, g, level, mt))) }
}

func avgCompareScore(g Granularity) ComputeFunc {
	return func(s *Session) Value { return VarnodesAvgCompareScore(s, g) }
}

func avgCompareScoreMetatype(g Granularity, mt model.MetaType) ComputeFunc {
	return func(s *Session) Value { return VarnodesAvgCompareScoreMetatype(s, g, mt) }
}

func arrayGroup() *MetricsGroup {
	group := NewMetricsGroup("array_comparisons", "Array recovery")
	group.AddFunc("arrays.truth", "Ground truth array varnodes", func(s *Session) Value {
		return Count(len(ArrayRecordsTruth(s)))
	})
	group.AddFunc("arrays.comparisons", "Array comparisons", func(s *Session) Value {
		return Count(len(ArrayComparisons(s)))
	})
	group.AddFunc("arrays.inferred", "Array varnodes inferred as array", func(s *Session) Value {
		return Count(len(ArrayRecordsInferred(s)))
	})
	group.AddFunc("arrays.inferred_fraction", "Array varnodes inferred as array fraction", ArrayInferredFraction)
	group.AddFunc("arrays.elements_avg_error", "Array length (elements) average error", func(s *Session) Value {
		return MeanOverArrayComparisons(s, ArrayElementsError)
	})
	group.AddFunc("arrays.elements_avg_error_ratio", "Array length (elements) average error ratio", func(s *Session) Value {
		return MeanOverArrayComparisons(s, ArrayElementsErrorRatio)
	})
	group.AddFunc("arrays.size_avg_error", "Array size (bytes) average error", func(s *Session) Value {
		return MeanOverArrayComparisons(s, ArraySizeError)
	})
	group.AddFunc("arrays.size_avg_error_ratio", "Array size (bytes) average error ratio", func(s *Session) Value {
		return MeanOverArrayComparisons(s, ArraySizeErrorRatio)
	})
	group.AddFunc("arrays.dimension_match_ratio", "Array dimension match score", ArrayDimensionMatchRatio)
	group.AddFunc("arrays.subtype_match_ratio", "Array element type match fraction", func(s *Session) Value {
		return ArraySubtypeMatchRatio(s, compare.DataTypeMatch)
	})
	group.AddFunc("arrays.subtype_avg_compare_score", "Array average element type comparison score", ArraySubtypeAvgCompareScore)
	return group
}
