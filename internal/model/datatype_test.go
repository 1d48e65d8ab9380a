package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkInt() *DataType   { return &DataType{Name: "int", Meta: MetaTypeInt, Size: 4} }
func mkFloat() *DataType { return &DataType{Name: "float", Meta: MetaTypeFloat, Size: 4} }

func mkArray(n int, base *DataType) *DataType {
	return &DataType{Name: "arr", Meta: MetaTypeArray, Size: n * base.Size, NumElements: n, Base: base}
}

func TestNumDimensions(t *testing.T) {
	assert.Equal(t, 0, mkInt().NumDimensions())
	assert.Equal(t, 1, mkArray(10, mkInt()).NumDimensions())
	assert.Equal(t, 2, mkArray(2, mkArray(3, mkInt())).NumDimensions())
	var nilType *DataType
	assert.Equal(t, 0, nilType.NumDimensions())
}

func TestScalarLeavesAreSelf(t *testing.T) {
	i := mkInt()
	leaves := i.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, int64(0), leaves[0].Offset)
	assert.Equal(t, i, leaves[0].Type)
}

func TestArrayLeaves(t *testing.T) {
	leaves := mkArray(3, mkInt()).Leaves()
	require.Len(t, leaves, 3)
	for i, leaf := range leaves {
		assert.Equal(t, int64(i*4), leaf.Offset)
		assert.Equal(t, MetaTypeInt, leaf.Type.Meta)
	}
}

func TestStructLeaves(t *testing.T) {
	st := &DataType{
		Name: "pair",
		Meta: MetaTypeStruct,
		Size: 8,
		Fields: []StructField{
			{Offset: 0, Type: mkInt()},
			{Offset: 4, Type: mkFloat()},
		},
	}
	leaves := st.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, int64(0), leaves[0].Offset)
	assert.Equal(t, MetaTypeInt, leaves[0].Type.Meta)
	assert.Equal(t, int64(4), leaves[1].Offset)
	assert.Equal(t, MetaTypeFloat, leaves[1].Type.Meta)
}

func TestNestedCompositeLeaves(t *testing.T) {
	st := &DataType{
		Name: "entry",
		Meta: MetaTypeStruct,
		Size: 12,
		Fields: []StructField{
			{Offset: 0, Type: mkInt()},
			{Offset: 4, Type: mkArray(2, mkFloat())},
		},
	}
	leaves := mkArray(2, st).Leaves()
	require.Len(t, leaves, 6)
	// Second element's array leaves land at the struct stride.
	assert.Equal(t, int64(12), leaves[3].Offset)
	assert.Equal(t, int64(16), leaves[4].Offset)
	assert.Equal(t, int64(20), leaves[5].Offset)
}

func TestUnionIsNotDecomposed(t *testing.T) {
	u := &DataType{Name: "u", Meta: MetaTypeUnion, Size: 8}
	leaves := u.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, u, leaves[0].Type)
}

func TestMetaTypeRoundTrip(t *testing.T) {
	for _, mt := range []MetaType{MetaTypeInt, MetaTypeFloat, MetaTypePointer, MetaTypeArray, MetaTypeStruct, MetaTypeUnion, MetaTypeUndefined} {
		parsed, err := MetaTypeFromString(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}
	_, err := MetaTypeFromString("COMPLEX")
	assert.Error(t, err)
}
