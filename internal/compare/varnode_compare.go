package compare

import "github.com/reveng-lab/decompeval/internal/model"

// VarnodeCompare2 is one concrete ground-truth/recovered varnode pair
// discovered by the comparison engine.
type VarnodeCompare2 struct {
	left  *model.Varnode
	right *model.Varnode
	level VarnodeCompareLevel
}

// NewVarnodeCompare2 pairs a ground-truth varnode with a recovered one
// at the given match level.
func NewVarnodeCompare2(left, right *model.Varnode, level VarnodeCompareLevel) *VarnodeCompare2 {
	return &VarnodeCompare2{left: left, right: right, level: level}
}

func (c *VarnodeCompare2) Left() *model.Varnode  { return c.left }
func (c *VarnodeCompare2) Right() *model.Varnode { return c.right }

// CompareLevel returns the ordinal match quality of the pair.
func (c *VarnodeCompare2) CompareLevel() VarnodeCompareLevel { return c.level }

// BytesOverlapped returns how many storage bytes the two varnodes share.
func (c *VarnodeCompare2) BytesOverlapped() int {
	return c.left.OverlapBytes(c.right)
}

// Flip returns the pair with ground-truth and recovered roles swapped.
func (c *VarnodeCompare2) Flip() *VarnodeCompare2 {
	return &VarnodeCompare2{left: c.right, right: c.left, level: c.level}
}

// ClassifyVarnodePair derives a compare level from the storage layout
// of a pair: exact address+size agreement with equal metatypes is a
// full match, address+size agreement alone is aligned, containment is
// a subset, any other intersection an overlap.
func ClassifyVarnodePair(left, right *model.Varnode) VarnodeCompareLevel {
	if left.OverlapBytes(right) == 0 {
		return VarnodeNoMatch
	}
	if left.Addr == right.Addr && left.Size == right.Size {
		if left.MetaType() == right.MetaType() {
			return VarnodeMatch
		}
		return VarnodeAligned
	}
	if contains(left, right) || contains(right, left) {
		return VarnodeSubset
	}
	return VarnodeOverlap
}

func contains(outer, inner *model.Varnode) bool {
	return outer.Addr.Offset <= inner.Addr.Offset && inner.End() <= outer.End()
}
