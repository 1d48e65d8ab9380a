package model

import (
	"fmt"
	"sync"
)

// Varnode is a concrete storage slice: an address, a byte size and the
// datatype the bytes are interpreted as. A varnode either backs (part
// of) a local variable or stands alone as a global.
type Varnode struct {
	Addr Address
	Size int
	Type *DataType
	Var  *Variable // nil for globals

	decomposeOnce sync.Once
	decomposed    []*Varnode
}

// NewVarnode builds a varnode for a whole variable or global.
func NewVarnode(addr Address, dt *DataType, v *Variable) *Varnode {
	size := 0
	if dt != nil {
		size = dt.Size
	}
	return &Varnode{Addr: addr, Size: size, Type: dt, Var: v}
}

// MetaType returns the metatype of the varnode's datatype.
func (vn *Varnode) MetaType() MetaType {
	if vn.Type == nil {
		return MetaTypeUndefined
	}
	return vn.Type.Meta
}

// End returns the first byte offset past the varnode's storage.
func (vn *Varnode) End() int64 {
	return vn.Addr.Offset + int64(vn.Size)
}

// OverlapBytes returns how many bytes of storage vn and other share, or
// 0 when they live in different regions.
func (vn *Varnode) OverlapBytes(other *Varnode) int {
	if other == nil || vn.Addr.Kind != other.Addr.Kind {
		return 0
	}
	lo := max(vn.Addr.Offset, other.Addr.Offset)
	hi := min(vn.End(), other.End())
	if hi <= lo {
		return 0
	}
	return int(hi - lo)
}

// Decompose flattens the varnode into scalar leaf varnodes by expanding
// its datatype. A scalar varnode decomposes to itself. The result is
// computed once and reused so that leaf identity is stable across
// repeated selections.
func (vn *Varnode) Decompose() []*Varnode {
	vn.decomposeOnce.Do(func() {
		leaves := vn.Type.Leaves()
		if len(leaves) == 1 && leaves[0].Type == vn.Type {
			vn.decomposed = []*Varnode{vn}
			return
		}
		out := make([]*Varnode, 0, len(leaves))
		for _, leaf := range leaves {
			out = append(out, &Varnode{
				Addr: vn.Addr.Shift(leaf.Offset),
				Size: leaf.Type.Size,
				Type: leaf.Type,
				Var:  vn.Var,
			})
		}
		vn.decomposed = out
	})
	return vn.decomposed
}

func (vn *Varnode) String() string {
	return fmt.Sprintf("<Varnode %s size=%d %s>", vn.Addr, vn.Size, vn.MetaType())
}
