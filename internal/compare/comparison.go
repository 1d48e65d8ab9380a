package compare

import (
	"github.com/google/uuid"

	"github.com/reveng-lab/decompeval/internal/model"
)

// FunctionMatch pairs a ground-truth function with the recovered
// function the comparison engine matched it to.
type FunctionMatch struct {
	Left  *model.Function
	Right *model.Function
}

// Key identifies a comparison object for memoization purposes. Flipping
// a comparison keeps the ID and toggles the orientation bit, so a
// double flip maps back to the original key.
type Key struct {
	ID      uuid.UUID
	Flipped bool
}

// orientation holds everything derived with one program in the
// ground-truth position.
type orientation struct {
	program         *model.Program
	fnRecords       []*FunctionCompareRecord
	vnRecords       []*VarnodeCompareRecord
	primRecords     []*VarnodeCompareRecord
	comparisons     []*VarnodeCompare2
	primComparisons []*VarnodeCompare2
}

// ProgramComparison is an ordered pair of program models (left = ground
// truth, right = recovered) plus the comparison records derived from
// the engine's pairwise varnode matches. It is immutable after
// construction; Flip returns a reoriented view sharing the underlying
// data.
type ProgramComparison struct {
	id      uuid.UUID
	flipped bool
	truth   *orientation
	recov   *orientation
}

// NewProgramComparison builds a comparison from two program models, the
// matched function pairs and the pairwise varnode comparisons found by
// the upstream engine. Records for both orientations are derived here:
// every varnode of a side gets a record grouping the comparisons in
// which it is the ground-truth party, and varnodes with no comparison
// get a NO_MATCH record. Decomposed-granularity comparisons are derived
// from the whole pairs by intersecting the scalar leaves of each side.
func NewProgramComparison(left, right *model.Program, fnMatches []FunctionMatch, comparisons []*VarnodeCompare2) *ProgramComparison {
	flippedCmps := make([]*VarnodeCompare2, len(comparisons))
	for i, c := range comparisons {
		flippedCmps[i] = c.Flip()
	}

	primCmps := derivePrimitiveComparisons(comparisons)
	flippedPrimCmps := make([]*VarnodeCompare2, len(primCmps))
	for i, c := range primCmps {
		flippedPrimCmps[i] = c.Flip()
	}

	truth := &orientation{
		program:         left,
		fnRecords:       buildFunctionRecords(left, fnMatches, false),
		vnRecords:       buildVarnodeRecords(left.Varnodes(), comparisons),
		primRecords:     buildVarnodeRecords(decomposeAll(left.Varnodes()), primCmps),
		comparisons:     comparisons,
		primComparisons: primCmps,
	}
	recov := &orientation{
		program:         right,
		fnRecords:       buildFunctionRecords(right, fnMatches, true),
		vnRecords:       buildVarnodeRecords(right.Varnodes(), flippedCmps),
		primRecords:     buildVarnodeRecords(decomposeAll(right.Varnodes()), flippedPrimCmps),
		comparisons:     flippedCmps,
		primComparisons: flippedPrimCmps,
	}

	return &ProgramComparison{id: uuid.New(), truth: truth, recov: recov}
}

func decomposeAll(varnodes []*model.Varnode) []*model.Varnode {
	var out []*model.Varnode
	for _, vn := range varnodes {
		out = append(out, vn.Decompose()...)
	}
	return out
}

// derivePrimitiveComparisons refines whole varnode pairs into pairs of
// their scalar leaves, keeping every leaf pair whose storage intersects
// and classifying it from its layout.
func derivePrimitiveComparisons(whole []*VarnodeCompare2) []*VarnodeCompare2 {
	var out []*VarnodeCompare2
	for _, c := range whole {
		for _, ll := range c.Left().Decompose() {
			for _, rl := range c.Right().Decompose() {
				if ll.OverlapBytes(rl) == 0 {
					continue
				}
				out = append(out, NewVarnodeCompare2(ll, rl, ClassifyVarnodePair(ll, rl)))
			}
		}
	}
	return out
}

func buildFunctionRecords(program *model.Program, matches []FunctionMatch, reversed bool) []*FunctionCompareRecord {
	matched := make(map[*model.Function]*model.Function, len(matches))
	for _, m := range matches {
		if reversed {
			matched[m.Right] = m.Left
		} else {
			matched[m.Left] = m.Right
		}
	}
	records := make([]*FunctionCompareRecord, 0, len(program.Functions))
	for _, fn := range program.Functions {
		records = append(records, &FunctionCompareRecord{function: fn, matched: matched[fn]})
	}
	return records
}

func buildVarnodeRecords(varnodes []*model.Varnode, comparisons []*VarnodeCompare2) []*VarnodeCompareRecord {
	byVarnode := make(map[*model.Varnode][]*VarnodeCompare2)
	for _, c := range comparisons {
		byVarnode[c.Left()] = append(byVarnode[c.Left()], c)
	}
	records := make([]*VarnodeCompareRecord, 0, len(varnodes))
	for _, vn := range varnodes {
		records = append(records, newVarnodeCompareRecord(vn, byVarnode[vn]))
	}
	return records
}

// Left returns the ground-truth program of the current orientation.
func (c *ProgramComparison) Left() *model.Program { return c.truth.program }

// Right returns the recovered program of the current orientation.
func (c *ProgramComparison) Right() *model.Program { return c.recov.program }

// Key returns the memoization identity of the comparison.
func (c *ProgramComparison) Key() Key { return Key{ID: c.id, Flipped: c.flipped} }

// Flip returns the comparison with ground-truth and recovered roles
// swapped. Flipping twice yields an object observationally equal to the
// original, including its memoization key.
func (c *ProgramComparison) Flip() *ProgramComparison {
	return &ProgramComparison{id: c.id, flipped: !c.flipped, truth: c.recov, recov: c.truth}
}

// SelectFunctionCompareRecords returns the records for every
// ground-truth function of the current orientation.
func (c *ProgramComparison) SelectFunctionCompareRecords() []*FunctionCompareRecord {
	return c.truth.fnRecords
}

// SelectVarnodeCompareRecords returns the whole-granularity records
// passing cond. A nil cond accepts everything.
func (c *ProgramComparison) SelectVarnodeCompareRecords(cond func(*VarnodeCompareRecord) bool) []*VarnodeCompareRecord {
	return filterRecords(c.truth.vnRecords, cond)
}

// SelectPrimitiveVarnodeCompareRecords returns the decomposed
// (scalar-leaf) records passing cond.
func (c *ProgramComparison) SelectPrimitiveVarnodeCompareRecords(cond func(*VarnodeCompareRecord) bool) []*VarnodeCompareRecord {
	return filterRecords(c.truth.primRecords, cond)
}

func filterRecords(records []*VarnodeCompareRecord, cond func(*VarnodeCompareRecord) bool) []*VarnodeCompareRecord {
	if cond == nil {
		return records
	}
	var out []*VarnodeCompareRecord
	for _, r := range records {
		if cond(r) {
			out = append(out, r)
		}
	}
	return out
}

// SelectVarnodeComparisons returns the pairwise comparisons of every
// whole-granularity record passing recordCond, filtered by cmpCond.
// Nil conditions accept everything.
func (c *ProgramComparison) SelectVarnodeComparisons(recordCond func(*VarnodeCompareRecord) bool, cmpCond func(*VarnodeCompare2) bool) []*VarnodeCompare2 {
	var out []*VarnodeCompare2
	for _, r := range filterRecords(c.truth.vnRecords, recordCond) {
		for _, c2 := range r.Comparisons() {
			if cmpCond != nil && !cmpCond(c2) {
				continue
			}
			out = append(out, c2)
		}
	}
	return out
}
