package compare

import "github.com/reveng-lab/decompeval/internal/model"

// DataTypeCompare2 is one ground-truth/recovered datatype pair. The
// compare level is computed at construction from the structural
// agreement of the two types.
type DataTypeCompare2 struct {
	left   *model.DataType
	right  *model.DataType
	offset int64
	level  DataTypeCompareLevel
}

// NewDataTypeCompare2 pairs a ground-truth datatype with a recovered
// one at the given byte offset and classifies the match.
func NewDataTypeCompare2(left, right *model.DataType, offset int64) *DataTypeCompare2 {
	return &DataTypeCompare2{
		left:   left,
		right:  right,
		offset: offset,
		level:  classifyDataTypes(left, right),
	}
}

func classifyDataTypes(left, right *model.DataType) DataTypeCompareLevel {
	if left == nil || right == nil {
		return DataTypeNoMatch
	}
	if left.Meta != right.Meta {
		return DataTypeNoMatch
	}
	if left.Size != right.Size {
		return DataTypeSubset
	}
	return DataTypeMatch
}

func (c *DataTypeCompare2) Left() *model.DataType  { return c.left }
func (c *DataTypeCompare2) Right() *model.DataType { return c.right }
func (c *DataTypeCompare2) Offset() int64          { return c.offset }

// CompareLevel returns the ordinal match quality of the pair.
func (c *DataTypeCompare2) CompareLevel() DataTypeCompareLevel { return c.level }
