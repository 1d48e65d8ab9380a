package metrics

import (
	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

// Side selects which program of a comparison plays the ground-truth
// role in a selection.
type Side int

const (
	// SideTruth is the ground-truth (left) program.
	SideTruth Side = iota
	// SideRecovered is the decompiler-recovered (right) program.
	SideRecovered
)

// Granularity selects whole varnodes or their scalar decomposition.
type Granularity int

const (
	GranularityWhole Granularity = iota
	GranularityDecomposed
)

// Options configures a metrics session.
type Options struct {
	// RequireMatchedFunction additionally restricts comparable records
	// to varnodes that are globals or live in a matched function. Off
	// by default.
	RequireMatchedFunction bool

	// CacheSize bounds the selection cache; zero means
	// DefaultCacheSize.
	CacheSize int
}

// Session owns one metrics-computation pass over a comparison: the
// comparison object, the selection options and the memoization cache.
// The cache lives exactly as long as the session instead of the
// process, and is shared with the flipped view so that "extraneous"
// metrics reuse the flipped selections.
type Session struct {
	cmp   *compare.ProgramComparison
	opts  Options
	cache *Cache
}

// NewSession starts a metrics session over cmp.
func NewSession(cmp *compare.ProgramComparison, opts Options) *Session {
	return &Session{cmp: cmp, opts: opts, cache: NewCache(opts.CacheSize)}
}

// Comparison returns the session's comparison object.
func (s *Session) Comparison() *compare.ProgramComparison { return s.cmp }

// flip returns a session over the flipped comparison sharing this
// session's options and cache.
func (s *Session) flip() *Session {
	return &Session{cmp: s.cmp.Flip(), opts: s.opts, cache: s.cache}
}

func (s *Session) program(side Side) *model.Program {
	if side == SideRecovered {
		return s.cmp.Right()
	}
	return s.cmp.Left()
}

// BaseVarnodes returns all varnodes of the given side and granularity
// passing the base eligibility filters, straight from the program
// model.
func (s *Session) BaseVarnodes(side Side, g Granularity) []*model.Varnode {
	p := s.program(side)
	if g == GranularityDecomposed {
		return p.SelectPrimitiveVarnodes(VariableBaseFilter, VarnodeBaseFilter)
	}
	return p.SelectVarnodes(VariableBaseFilter, VarnodeBaseFilter)
}

// ComparableRecords returns the varnode compare records whose
// ground-truth varnode is eligible, memoized per (comparison,
// orientation, granularity).
func (s *Session) ComparableRecords(g Granularity) []*compare.VarnodeCompareRecord {
	key := recordKey{cmp: s.cmp.Key(), granularity: g}
	return s.cache.comparableRecords(key, func() []*compare.VarnodeCompareRecord {
		cond := s.recordFilter()
		if g == GranularityDecomposed {
			return s.cmp.SelectPrimitiveVarnodeCompareRecords(cond)
		}
		return s.cmp.SelectVarnodeCompareRecords(cond)
	})
}

// recordFilter composes the base record filter with the optional
// matched-function restriction.
func (s *Session) recordFilter() func(*compare.VarnodeCompareRecord) bool {
	if !s.opts.RequireMatchedFunction {
		return VarnodeCompareRecordBaseFilter
	}
	matched := make(map[*model.Function]bool)
	for _, r := range s.cmp.SelectFunctionCompareRecords() {
		if FunctionCompareRecordComparedFilter(r) {
			matched[r.Function()] = true
		}
	}
	return func(r *compare.VarnodeCompareRecord) bool {
		if !VarnodeCompareRecordBaseFilter(r) {
			return false
		}
		v := r.Varnode().Var
		if v == nil {
			return true // globals are always in scope
		}
		return matched[v.Function]
	}
}

// ComparableVarnodes returns the eligible varnodes of one side at the
// requested granularity. The recovered side is defined by symmetry:
// flip the comparison and take the ground-truth varnodes of the
// flipped view.
func (s *Session) ComparableVarnodes(side Side, g Granularity) []*model.Varnode {
	sess := s
	if side == SideRecovered {
		sess = s.flip()
	}
	records := sess.ComparableRecords(g)
	varnodes := make([]*model.Varnode, 0, len(records))
	for _, r := range records {
		varnodes = append(varnodes, r.Varnode())
	}
	return varnodes
}

// ComparableVarnodesMetatype narrows ComparableVarnodes to varnodes of
// one metatype.
func (s *Session) ComparableVarnodesMetatype(side Side, g Granularity, mt model.MetaType) []*model.Varnode {
	var out []*model.Varnode
	for _, vn := range s.ComparableVarnodes(side, g) {
		if vn.MetaType() == mt {
			out = append(out, vn)
		}
	}
	return out
}

// ComparableRecordsMetatype narrows ComparableRecords to records whose
// ground-truth varnode has one metatype.
func (s *Session) ComparableRecordsMetatype(g Granularity, mt model.MetaType) []*compare.VarnodeCompareRecord {
	var out []*compare.VarnodeCompareRecord
	for _, r := range s.ComparableRecords(g) {
		if r.Varnode().MetaType() == mt {
			out = append(out, r)
		}
	}
	return out
}

// ArrayComparisons returns the pairwise comparisons whose two sides are
// both ARRAY-typed, drawn from eligible records. Memoized under the
// same key contract as ComparableRecords.
func (s *Session) ArrayComparisons() []*compare.VarnodeCompare2 {
	return s.cache.arrayComparisons(s.cmp.Key(), func() []*compare.VarnodeCompare2 {
		return s.cmp.SelectVarnodeComparisons(s.recordFilter(), func(c *compare.VarnodeCompare2) bool {
			return c.Left().MetaType() == model.MetaTypeArray && c.Right().MetaType() == model.MetaTypeArray
		})
	})
}
