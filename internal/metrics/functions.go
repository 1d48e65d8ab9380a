package metrics

import "github.com/reveng-lab/decompeval/internal/model"

// FunctionsTruth returns all ground-truth functions, unfiltered.
func FunctionsTruth(s *Session) []*model.Function {
	return s.Comparison().Left().Functions
}

// FunctionsDecomp returns all recovered functions, unfiltered.
func FunctionsDecomp(s *Session) []*model.Function {
	return s.Comparison().Right().Functions
}

// FunctionsFound returns the ground-truth functions the decompiler
// matched.
func FunctionsFound(s *Session) []*model.Function {
	return selectFunctions(s, true)
}

// FunctionsMissed returns the ground-truth functions with no recovered
// counterpart.
func FunctionsMissed(s *Session) []*model.Function {
	return selectFunctions(s, false)
}

func selectFunctions(s *Session, matched bool) []*model.Function {
	var out []*model.Function
	for _, r := range s.Comparison().SelectFunctionCompareRecords() {
		if r.IsComparison() == matched {
			out = append(out, r.Function())
		}
	}
	return out
}

// FunctionsExtraneous returns the recovered functions with no
// ground-truth counterpart: the missed functions of the flipped
// comparison.
func FunctionsExtraneous(s *Session) []*model.Function {
	return FunctionsMissed(s.flip())
}

// FunctionsRecoveryFraction is found over truth, undefined when the
// ground truth has no functions.
func FunctionsRecoveryFraction(s *Session) Value {
	return Ratio(float64(len(FunctionsFound(s))), float64(len(FunctionsTruth(s))))
}
