package model

// Variable is a named storage location inside a function. A variable
// may be split over several varnodes by the producing toolchain.
type Variable struct {
	Name     string
	Param    bool
	Function *Function
	Varnodes []*Varnode
}

// IsParam reports whether the variable is a formal parameter.
func (v *Variable) IsParam() bool { return v.Param }

// IsSingleLoc reports whether the variable occupies exactly one
// storage location.
func (v *Variable) IsSingleLoc() bool { return len(v.Varnodes) == 1 }

// Function is one function of a program model.
type Function struct {
	Name      string
	Entry     Address
	Variables []*Variable
}

// VariableFilter and VarnodeFilter are the predicate types used by
// varnode selection.
type (
	VariableFilter func(*Variable) bool
	VarnodeFilter  func(*Varnode) bool
)

// Program is one side of a comparison: a set of functions plus global
// varnodes.
type Program struct {
	Name      string
	Functions []*Function
	Globals   []*Varnode
}

// Varnodes returns every varnode of the program: globals first, then
// each function's variables in declaration order.
func (p *Program) Varnodes() []*Varnode {
	var out []*Varnode
	out = append(out, p.Globals...)
	for _, fn := range p.Functions {
		for _, v := range fn.Variables {
			out = append(out, v.Varnodes...)
		}
	}
	return out
}

// SelectVarnodes returns the program's varnodes whose owning variable
// passes varFilter (globals have no owning variable and skip that
// check) and which themselves pass vnFilter. Nil filters accept
// everything.
func (p *Program) SelectVarnodes(varFilter VariableFilter, vnFilter VarnodeFilter) []*Varnode {
	var out []*Varnode
	for _, vn := range p.Varnodes() {
		if vn.Var != nil && varFilter != nil && !varFilter(vn.Var) {
			continue
		}
		if vnFilter != nil && !vnFilter(vn) {
			continue
		}
		out = append(out, vn)
	}
	return out
}

// SelectPrimitiveVarnodes is SelectVarnodes at decomposed granularity:
// each varnode passing the variable filter is flattened to its scalar
// leaves and the varnode filter is applied to the leaves.
func (p *Program) SelectPrimitiveVarnodes(varFilter VariableFilter, vnFilter VarnodeFilter) []*Varnode {
	var out []*Varnode
	for _, vn := range p.Varnodes() {
		if vn.Var != nil && varFilter != nil && !varFilter(vn.Var) {
			continue
		}
		for _, leaf := range vn.Decompose() {
			if vnFilter != nil && !vnFilter(leaf) {
				continue
			}
			out = append(out, leaf)
		}
	}
	return out
}
