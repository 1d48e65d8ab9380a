package model

import "fmt"

// MetaType is the coarse kind tag of a datatype.
type MetaType int

const (
	MetaTypeInt MetaType = iota
	MetaTypeFloat
	MetaTypePointer
	MetaTypeArray
	MetaTypeStruct
	MetaTypeUnion
	MetaTypeUndefined
)

func (m MetaType) String() string {
	switch m {
	case MetaTypeInt:
		return "INT"
	case MetaTypeFloat:
		return "FLOAT"
	case MetaTypePointer:
		return "POINTER"
	case MetaTypeArray:
		return "ARRAY"
	case MetaTypeStruct:
		return "STRUCT"
	case MetaTypeUnion:
		return "UNION"
	}
	return "UNDEFINED"
}

// MetaTypeFromString parses the snapshot encoding of a metatype.
func MetaTypeFromString(s string) (MetaType, error) {
	switch s {
	case "INT":
		return MetaTypeInt, nil
	case "FLOAT":
		return MetaTypeFloat, nil
	case "POINTER":
		return MetaTypePointer, nil
	case "ARRAY":
		return MetaTypeArray, nil
	case "STRUCT":
		return MetaTypeStruct, nil
	case "UNION":
		return MetaTypeUnion, nil
	case "UNDEFINED":
		return MetaTypeUndefined, nil
	}
	return MetaTypeUndefined, fmt.Errorf("invalid metatype %q", s)
}

// StructField is one member of a STRUCT datatype at a fixed byte offset.
type StructField struct {
	Offset int64
	Type   *DataType
}

// DataType describes the type of a storage location. Arrays carry their
// element count and base type; structs carry their ordered field list.
type DataType struct {
	Name        string
	Meta        MetaType
	Size        int
	NumElements int           // ARRAY only
	Base        *DataType     // ARRAY only: element type
	Fields      []StructField // STRUCT only
}

// NumDimensions returns the array dimensionality: 1 for a flat array,
// 1 + base dimensions for nested arrays, 0 for non-array types.
func (t *DataType) NumDimensions() int {
	if t == nil || t.Meta != MetaTypeArray {
		return 0
	}
	if t.Base != nil && t.Base.Meta == MetaTypeArray {
		return 1 + t.Base.NumDimensions()
	}
	return 1
}

// Leaf is a scalar component of a datatype at a byte offset from the
// containing type's start.
type Leaf struct {
	Offset int64
	Type   *DataType
}

// Leaves flattens the datatype into its scalar components. Scalars
// yield themselves at offset 0. Arrays expand every element at its
// stride, structs expand every field at its offset. Unions are not
// decomposed further since their members alias the same storage.
func (t *DataType) Leaves() []Leaf {
	if t == nil {
		return nil
	}
	switch t.Meta {
	case MetaTypeArray:
		if t.Base == nil || t.NumElements <= 0 {
			return []Leaf{{Offset: 0, Type: t}}
		}
		stride := int64(t.Base.Size)
		var leaves []Leaf
		for i := 0; i < t.NumElements; i++ {
			for _, sub := range t.Base.Leaves() {
				leaves = append(leaves, Leaf{Offset: int64(i)*stride + sub.Offset, Type: sub.Type})
			}
		}
		return leaves
	case MetaTypeStruct:
		var leaves []Leaf
		for _, f := range t.Fields {
			for _, sub := range f.Type.Leaves() {
				leaves = append(leaves, Leaf{Offset: f.Offset + sub.Offset, Type: sub.Type})
			}
		}
		return leaves
	}
	return []Leaf{{Offset: 0, Type: t}}
}
