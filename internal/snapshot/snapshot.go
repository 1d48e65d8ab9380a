// Package snapshot loads a serialized program comparison: the two
// program models plus the function matches and pairwise varnode
// comparisons the upstream engine discovered. Varnodes carry explicit
// ids so the comparison list can reference them.
package snapshot

// File is the root of a comparison snapshot document.
type File struct {
	Left               ProgramJSON          `json:"left"`
	Right              ProgramJSON          `json:"right"`
	FunctionMatches    []FunctionMatchJSON  `json:"function_matches"`
	VarnodeComparisons []VarnodeCompareJSON `json:"varnode_comparisons"`
}

// ProgramJSON is one program model.
type ProgramJSON struct {
	Name      string         `json:"name"`
	Functions []FunctionJSON `json:"functions"`
	Globals   []VarnodeJSON  `json:"globals"`
}

// FunctionJSON is one function with its variables.
type FunctionJSON struct {
	Name      string         `json:"name"`
	Entry     AddressJSON    `json:"entry"`
	Variables []VariableJSON `json:"variables"`
}

// VariableJSON is one named storage location.
type VariableJSON struct {
	Name     string        `json:"name"`
	Param    bool          `json:"param"`
	Varnodes []VarnodeJSON `json:"varnodes"`
}

// VarnodeJSON is one storage slice. The id must be unique within its
// program and is how comparisons reference the varnode.
type VarnodeJSON struct {
	ID      string       `json:"id"`
	Address AddressJSON  `json:"address"`
	Type    DataTypeJSON `json:"type"`
}

// AddressJSON is a storage location.
type AddressJSON struct {
	Kind   string `json:"kind"`
	Offset int64  `json:"offset"`
}

// DataTypeJSON is a recursive datatype description.
type DataTypeJSON struct {
	Name        string            `json:"name,omitempty"`
	MetaType    string            `json:"metatype"`
	Size        int               `json:"size"`
	NumElements int               `json:"num_elements,omitempty"`
	Base        *DataTypeJSON     `json:"base,omitempty"`
	Fields      []StructFieldJSON `json:"fields,omitempty"`
}

// StructFieldJSON is one struct member at a byte offset.
type StructFieldJSON struct {
	Offset int64        `json:"offset"`
	Type   DataTypeJSON `json:"type"`
}

// FunctionMatchJSON pairs a left function name with a right one.
type FunctionMatchJSON struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// VarnodeCompareJSON is one pairwise comparison by varnode id, with
// the engine-assigned match level.
type VarnodeCompareJSON struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Level string `json:"level"`
}
